package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/folio/internal/adapter/driven/github"
	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A personal portfolio site backed by your public GitHub repositories.",
	Long: `folio serves a portfolio site whose project list is pulled from the GitHub
REST API: public, non-fork repositories of one account, searchable, filterable
by language and sortable by update time, stars or name.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newFeedService wires the GitHub adapter into a FeedService.
func newFeedService(cfg *config.Config) (*application.FeedService, error) {
	client, err := githubadapter.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	if !cfg.HasGitHubToken() {
		slog.Warn("no github token configured, using the anonymous rate limit")
	}

	return application.NewFeedService(client, cfg.GitHubAccount, slog.Default()), nil
}
