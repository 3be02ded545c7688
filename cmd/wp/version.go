// ABOUTME: CLI command printing the client version.
// ABOUTME: Runs without config or session setup.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wp %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
