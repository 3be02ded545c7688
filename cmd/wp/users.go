// ABOUTME: CLI command listing user accounts, for trainers.
// ABOUTME: Backs the assignee selection when creating plans for others.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/access"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List user accounts (trainers only)",
	Long: `List all user accounts. Trainers use this to find the user id for
'wp plans create --for-user'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if !access.CanAssignToOthers(sess.Role) {
			return fmt.Errorf("only trainers can list users")
		}

		users, err := client.Users(cmd.Context())
		if err != nil {
			return friendly(err)
		}

		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range users {
			fmt.Printf("%s %s <%s>\n", faint.Sprintf("#%d", u.UserID), u.Name, u.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
