package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loopservices/talent-platform/pkg/session"
)

var (
	flagSignupEmail    string
	flagSignupPassword string
	flagSignupRole     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		role := session.Role(flagSignupRole)
		if err := controller.Signup(cmd.Context(), flagSignupEmail, flagSignupPassword, role); err != nil {
			return fmt.Errorf("signup: %w", err)
		}
		user := controller.CurrentUser()
		fmt.Printf("Account created: %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVarP(&flagSignupEmail, "email", "e", "", "Account email")
	signupCmd.Flags().StringVarP(&flagSignupPassword, "password", "p", "", "Account password")
	signupCmd.Flags().StringVarP(&flagSignupRole, "role", "r", "", "Account role: CLIENT, TALENT, or APPLICANT (default CLIENT)")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(signupCmd)
}
