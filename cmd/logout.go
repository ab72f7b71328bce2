package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Upload your progress to the server and sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := a.SignOut(cmd.Context()); err != nil {
			return fmt.Errorf("sign out: %w", err)
		}

		fmt.Println("Progress uploaded. Signed out.")
		return nil
	},
}
