package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lingoapp/lingo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Language learning in your terminal",
	Long:  "Lingo — a terminal app for learning a language through quizzes, with progress tracking and study statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env is optional; real env vars win.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGO_DB env var)")
	rootCmd.PersistentFlags().String("level", "", "Proficiency level: beginner, elementary, intermediate, advanced")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
