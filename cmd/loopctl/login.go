package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Login(cmd.Context(), flagEmail, flagPassword); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		user := controller.CurrentUser()
		fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&flagEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "Account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
