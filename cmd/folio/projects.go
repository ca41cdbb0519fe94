package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	httphandler "github.com/ericfisherdev/folio/internal/adapter/driving/http"
	"github.com/ericfisherdev/folio/internal/config"
	"github.com/ericfisherdev/folio/internal/domain/model"
)

const projectsTimeout = 30 * time.Second

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Print the project feed as JSON",
	Long: `Fetches the account's public, non-fork repositories once, applies the
search, language and sort options, and prints the result in the same JSON shape
as GET /api/v1/projects.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		account, _ := cmd.Flags().GetString("account")
		search, _ := cmd.Flags().GetString("search")
		language, _ := cmd.Flags().GetString("language")
		sort, _ := cmd.Flags().GetString("sort")

		cfg, err := config.LoadFor(account)
		if err != nil {
			return err
		}

		feedSvc, err := newFeedService(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, projectsTimeout)
		defer cancel()

		session := feedSvc.Open(ctx)
		defer session.Close()
		if err := session.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for repository feed: %w", err)
		}
		session.SetQuery(model.NewFeedQuery(search, language, sort))

		out, err := json.MarshalIndent(httphandler.NewProjectsResponse(session, time.Now()), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal projects: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().StringP("account", "a", "", "GitHub account (defaults to FOLIO_GITHUB_ACCOUNT)")
	projectsCmd.Flags().StringP("search", "s", "", "Case-insensitive substring of name or description")
	projectsCmd.Flags().StringP("language", "l", model.LanguageAll, "Exact primary language, or \"all\"")
	projectsCmd.Flags().String("sort", string(model.SortUpdated), "Sort key: updated, stars or name")
}
