package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loopservices/talent-platform/pkg/session"
)

var statusCmd = &cobra.Command{
	Use:   "status [route]",
	Short: "Show the session phase and where a route would take you",
	Long: `Shows the session lifecycle phase and, given a route, what the
authorization gate would do with it. Known protected routes: /dashboard,
/projects, /talent, /profile, /admin (admin only).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		controller.Bootstrap(cmd.Context())
		st := controller.State()

		fmt.Printf("session: %s\n", st.Phase())
		if st.User != nil {
			fmt.Printf("landing: %s\n", pageName(session.DashboardFor(st.User.Role)))
		}

		if len(args) == 1 {
			decision := session.Decide(st, routeSpecFor(args[0]))
			if decision.Redirected() {
				fmt.Printf("%s -> redirect to %s\n", args[0], decision.Target)
			} else {
				fmt.Printf("%s -> renders\n", args[0])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// routeSpecFor mirrors the web client's route table.
func routeSpecFor(path string) session.RouteSpec {
	switch path {
	case "/", session.LoginRoute, session.SignupRoute:
		return session.RouteSpec{Path: path}
	case "/admin":
		return session.RouteSpec{Path: path, RequiresAuth: true, RequiredRole: session.RoleAdmin}
	default:
		return session.RouteSpec{Path: path, RequiresAuth: true}
	}
}

func pageName(p session.Page) string {
	switch p {
	case session.ClientDashboard:
		return "client dashboard"
	case session.TalentDashboard:
		return "talent dashboard"
	case session.ApplicantDashboard:
		return "applicant dashboard"
	case session.AdminConsole:
		return "admin console"
	default:
		return "generic dashboard"
	}
}
