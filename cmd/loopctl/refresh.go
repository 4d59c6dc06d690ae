package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch the current user for the stored token",
	Long: `Asks the server who the stored token belongs to and updates the
local session. A rejected token drops the session back to anonymous.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller.Bootstrap(cmd.Context())
		controller.RefreshUser(cmd.Context())

		user := controller.CurrentUser()
		if user == nil {
			fmt.Println("session: anonymous")
			return nil
		}
		fmt.Printf("session: %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
