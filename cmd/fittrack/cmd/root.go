// Package cmd provides the CLI commands for the fittrack client.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/fittrack/internal/api"
	"github.com/spec-kit/fittrack/internal/config"
	"github.com/spec-kit/fittrack/internal/events"
	"github.com/spec-kit/fittrack/internal/observability"
	"github.com/spec-kit/fittrack/internal/persistence"
	"github.com/spec-kit/fittrack/internal/session"
)

// app bundles the wired client stack shared by all commands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *api.Client
	auth    *api.AuthClient
	session *session.Store
}

var cli *app

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack - fitness tracker client",
	Long: `fittrack is a command-line client for the fitness tracker API.

It keeps a logged-in session on disk, logs meals, workouts and body
measurements, and manages workout plans.

Configuration:
  Environment variables (optionally from a .env file) configure the client.
  Example: FITTRACK_API_URL=http://127.0.0.1:8080/api

Commands:
  login       Log in and persist the session
  register    Create an account and log in
  logout      Clear the persisted session
  whoami      Show the current session
  meal        Log and list meals
  workout     Log and list workouts
  plan        Manage workout plans
  profile     Show and update the profile
  measure     Record and list body measurements`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewCLILogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	stateDir, err := cfg.Client.ResolveStateDir()
	if err != nil {
		return err
	}
	record, err := persistence.NewFileStore(filepath.Join(stateDir, "session.json"))
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	dispatcher := events.NewDispatcher()
	dispatcher.Subscribe(events.SessionExpired, func(events.Event) {
		fmt.Fprintln(os.Stderr, "session expired, please log in again")
	})

	client, err := api.NewClient(cfg.Client, logger)
	if err != nil {
		return err
	}
	authClient := api.NewAuthClient(client)

	sess := session.NewStore(session.Deps{
		Record:    record,
		Auth:      authClient,
		Navigator: session.NewLogNavigator(logger),
		Events:    dispatcher,
		Logger:    logger,
	})
	client.BindSession(sess)
	sess.Hydrate()

	cli = &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		auth:    authClient,
		session: sess,
	}
	return nil
}

// requireSession fails fast for commands that need authentication, saving
// a round trip that would end in a forced logout anyway.
func requireSession() error {
	if !cli.session.IsAuthenticated() {
		return fmt.Errorf("not logged in, run: fittrack login")
	}
	return nil
}
