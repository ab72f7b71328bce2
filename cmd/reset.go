package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingoapp/lingo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes statistics, progress and review questions; re-run with --yes to confirm")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		if err := st.Reset(); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		fmt.Println("Local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation")
}
