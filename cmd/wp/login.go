// ABOUTME: CLI command for logging in to the WorkoutPlan service.
// ABOUTME: Installs the returned token as the active session.
package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and start a session",
	Long: `Log in to the WorkoutPlan service.

Prompts for your password unless --password is given. On success the access
token and email are stored locally and used for every following command until
you log out or the session expires.

Examples:
  wp login you@example.com
  wp login trainer@gym.io --password s3cret`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		password := loginPassword
		if password == "" {
			var err error
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
		}

		sess, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			return friendly(err)
		}

		color.Green("✓ Logged in as %s", sess.Email)
		fmt.Printf("  role: %s\n", sess.Role)
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted if omitted)")
	rootCmd.AddCommand(loginCmd)
}
