package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and pull your progress from the server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		reader := bufio.NewReader(os.Stdin)

		var email string
		if len(args) > 0 {
			email = args[0]
		} else {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password := strings.TrimRight(line, "\r\n")

		if err := a.SignIn(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}

		fmt.Printf("Signed in. %d minutes and %d completed topics restored.\n",
			a.Stats.TotalMinutes(), len(a.Tracker.CompletedTopicIDs()))
		return nil
	},
}
