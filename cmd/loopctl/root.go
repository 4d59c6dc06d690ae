package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loopservices/talent-platform/pkg/session"
)

var (
	flagServerURL string
	flagJSON      bool

	controller *session.Controller
)

var rootCmd = &cobra.Command{
	Use:   "loopctl",
	Short: "Drive your Loop Services session from the terminal",
	Long: `loopctl logs in to a Loop Services backend and keeps the session
token in your user config directory, the way the web client keeps it in
browser storage.

Get started:
  loopctl signup --email you@example.com --password secret --role APPLICANT
  loopctl login  --email you@example.com --password secret
  loopctl whoami
  loopctl logout`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		tokenPath, err := session.DefaultTokenPath("loopctl")
		if err != nil {
			return fmt.Errorf("resolving token path: %w", err)
		}
		store, err := session.NewFileTokenStore(tokenPath)
		if err != nil {
			return fmt.Errorf("opening token store: %w", err)
		}
		api := session.NewHTTPClient(flagServerURL, nil)
		controller = session.NewController(api, store, terminalNotifier{})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "http://localhost:8080", "Base URL of the Loop Services backend")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// terminalNotifier renders the controller's notifications the way the web
// client renders toasts.
type terminalNotifier struct{}

func (terminalNotifier) Success(msg string) { fmt.Println(msg) }
func (terminalNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, msg) }
