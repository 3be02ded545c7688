// ABOUTME: CLI command showing the current session identity.
// ABOUTME: Combines local session state with the server profile.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}

		me, err := client.Me(cmd.Context())
		if err != nil {
			return friendly(err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s <%s>\n", me.Name, me.Email)
		fmt.Printf("  role: %s\n", sess.Role)
		fmt.Printf("  %s\n", faint.Sprintf("user id %d", me.UserID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
