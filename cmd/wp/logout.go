// ABOUTME: CLI command for ending the current session.
// ABOUTME: Clears the persisted token and email in full.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the session",
	Long: `End the current session.

Removes the stored access token and email. Safe to run when already
logged out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wasLoggedIn := sessions.Current() != nil
		if err := sessions.Clear(); err != nil {
			return err
		}
		if wasLoggedIn {
			color.Green("✓ Logged out")
		} else {
			fmt.Println("Not logged in.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
