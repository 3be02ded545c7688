// ABOUTME: CLI command for creating a WorkoutPlan account.
// ABOUTME: Registers and directs the user to log in.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/models"
)

var (
	registerName     string
	registerRole     string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create a new account",
	Long: `Create a new WorkoutPlan account.

Accounts default to the "user" role; pass --role trainer to register a
trainer account. Registration does not log you in.

Examples:
  wp register you@example.com --name "Alex Doe"
  wp register coach@gym.io --name "Coach" --role trainer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		if !models.IsValidRole(registerRole) {
			return fmt.Errorf("invalid role: %s (must be user or trainer)", registerRole)
		}
		if registerName == "" {
			return fmt.Errorf("a display name is required (use --name)")
		}

		password := registerPassword
		if password == "" {
			var err error
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
		}

		if err := client.Register(cmd.Context(), registerName, email, password, models.Role(registerRole)); err != nil {
			return friendly(err)
		}

		color.Green("✓ Account created for %s", email)
		fmt.Println("  Log in with: wp login", email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerRole, "role", string(models.RoleUser), "account role (user or trainer)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "password (prompted if omitted)")
	rootCmd.AddCommand(registerCmd)
}
