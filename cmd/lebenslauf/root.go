package main

import (
	"context"
	"os"
	"os/signal"

	"anoa.com/lebenslauf/internal/config"
	"anoa.com/lebenslauf/internal/server"
	"anoa.com/lebenslauf/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "lebenslauf",
	Short: "Operate the Lebenslauf CV store",
	Long: `lebenslauf seeds the CV database, renders exports for a profile and
maintains the project search index without going through the HTTP API.

Configuration is read from the same environment variables and .env file
as the server.`,
	SilenceUsage: true,
}

// Execute runs the root command. Ctrl-C cancels the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// app is the wired application for one command run.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	deps     server.Deps
	services *server.Services
}

func (a *app) Close() {
	a.deps.Close()
	_ = a.log.Sync()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	env := "production"
	if verbose {
		env = "development"
	}
	log, err := logger.New(env)
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	if !verbose {
		log = log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	}

	deps, err := server.Connect(ctx, cfg, log)
	if err != nil {
		return nil, errors.Wrap(err, "connect")
	}

	return &app{
		cfg:      cfg,
		log:      log,
		deps:     deps,
		services: server.NewServices(deps),
	}, nil
}
