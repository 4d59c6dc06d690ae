package main

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the persisted session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller.Logout()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
