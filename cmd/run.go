package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingoapp/lingo/internal/app"
	"github.com/lingoapp/lingo/internal/content"
	"github.com/lingoapp/lingo/internal/tui"
)

// runApp builds the application state and launches the TUI.
func runApp(cmd *cobra.Command) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return tui.Run(a)
}

// buildApp resolves flags into an App shared by the TUI and the
// non-interactive subcommands.
func buildApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	level := content.Level("")
	if l, _ := cmd.Flags().GetString("level"); l != "" {
		level = content.Level(l)
	}

	return app.New(app.Options{
		DBPath: dbPath,
		Level:  level,
	})
}
