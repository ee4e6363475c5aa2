package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgreer/studyprep/internal/llm"
	"github.com/mgreer/studyprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyprep",
	Short: "Quiz preparation from your own study materials",
	Long:  "Studyprep turns chapters and uploaded study materials into graded practice sessions, aligned with state curriculum standards.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPREP_DB env var)")

	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the sqlite store for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newProvider builds the configured LLM provider with request logging
// into the store. The resolved config is returned alongside so callers
// can pick up retry settings.
func newProvider(ctx context.Context, log llm.RequestLog) (llm.Provider, llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, cfg, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}
	p, err := llm.NewProvider(ctx, cfg, log)
	return p, cfg, err
}
