package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller.Bootstrap(cmd.Context())

		user := controller.CurrentUser()
		if user == nil {
			return fmt.Errorf("not authenticated, run \"loopctl login\" first")
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(user)
		}

		fmt.Printf("%s (%s)\n", user.Email, user.Role)
		if user.ApplicantProfile != nil {
			fmt.Printf("application status: %s\n", user.ApplicantProfile.Status)
		}
		if user.TalentProfile != nil && user.TalentProfile.Headline != "" {
			fmt.Printf("headline: %s\n", user.TalentProfile.Headline)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
