package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/folio/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/folio/internal/adapter/driving/http"
	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/config"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Print recent contact form messages as JSON",
	Long: `Reads the contact inbox from the SQLite database (FOLIO_DB_PATH, or --db)
and prints the most recent messages, newest first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = config.DBPath()
		}
		if limit <= 0 {
			return fmt.Errorf("--limit must be positive, got %d", limit)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		db, err := sqliteadapter.NewDB(ctx, dbPath)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()

		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}

		contactSvc := application.NewContactService(sqliteadapter.NewContactRepo(db), slog.Default())
		msgs, err := contactSvc.Recent(ctx, limit)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(httphandler.NewContactMessagesResponse(msgs), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contact messages: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)
	contactsCmd.Flags().IntP("limit", "n", 20, "Maximum number of messages to print")
	contactsCmd.Flags().String("db", "", "SQLite database path (defaults to FOLIO_DB_PATH)")
}
