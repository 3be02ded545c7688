// ABOUTME: Root Cobra command for the wp CLI.
// ABOUTME: Wires config, session store, and API client via PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/workoutplan/cli/internal/api"
	"github.com/workoutplan/cli/internal/config"
	"github.com/workoutplan/cli/internal/session"
)

var (
	cfg      *config.Config
	sessions *session.Store
	client   *api.Client

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wp",
	Short: "WorkoutPlan fitness client",
	Long: `wp is a command-line client for the WorkoutPlan fitness service.

It lets you browse the exercise catalog, assemble workout plans, and log
completed workouts against your WorkoutPlan account.

QUICK START:

  $ wp register you@example.com --name "You"   # Create an account
  $ wp login you@example.com                   # Start a session
  $ wp home                                    # Today's plans and reminders
  $ wp plans list                              # Browse workout plans
  $ wp logs add --exercise 3 --sets 4          # Log a workout

ROLES:

  Regular users manage their own plans and logs and browse the shared
  exercise catalog. Trainers additionally manage the catalog, see every
  user's plans and logs, and can create plans on another user's behalf.

SESSION:

  Your access token and email are kept in a local store at
  <data_dir>/session and cleared on logout. When the server rejects the
  token, the session is cleared and you are asked to log in again.

CONFIGURATION:

  Config file: ~/.config/workoutplan/config.json
  Environment: WP_API_URL (default http://localhost:8000), WP_DATA_DIR`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := os.MkdirAll(cfg.SessionDir(), 0750); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
		sessions, err = session.Open(cfg.SessionDir())
		if err != nil {
			return err
		}

		client = api.New(cfg.APIURL, sessions)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if sessions != nil {
			return sessions.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireSession gates authenticated commands: no network call is attempted
// without a token, callers get a login hint instead.
func requireSession() (*session.Session, error) {
	sess := sessions.Current()
	if sess == nil {
		if sessions.WasExpired() {
			return nil, errors.New("your session has expired - log in again with 'wp login <email>'")
		}
		return nil, errors.New("not logged in - run 'wp login <email>' first")
	}
	return sess, nil
}

// friendly rewrites classified API errors into user-facing messages.
// Application errors keep the server's detail text verbatim.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrNoSession) {
		return errors.New("not logged in - run 'wp login <email>' first")
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return errors.New("your session has expired - log in again with 'wp login <email>'")
	}
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Errorf("unable to connect to the server at %s - is it running?", cfg.APIURL)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug request logging")
}
