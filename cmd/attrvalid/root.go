package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/attrvalid/pkg/config"
	"github.com/dmitrymomot/attrvalid/pkg/constraint"
	"github.com/dmitrymomot/attrvalid/pkg/environment"
	"github.com/dmitrymomot/attrvalid/pkg/httpserver"
	"github.com/dmitrymomot/attrvalid/pkg/logger"
	"github.com/dmitrymomot/attrvalid/pkg/requestid"
	"github.com/dmitrymomot/attrvalid/pkg/schema"
	"github.com/dmitrymomot/attrvalid/pkg/validation"
)

// appConfig is loaded from the environment and an optional .env file.
type appConfig struct {
	Env              string   `env:"APP_ENV" envDefault:"development"`
	LogLevel         string   `env:"LOG_LEVEL"`
	IgnoreProperties []string `env:"VALIDATOR_IGNORE_PROPERTIES" envSeparator:","`
	RegexCacheSize   int      `env:"VALIDATOR_REGEX_CACHE_SIZE" envDefault:"128"`
	HTTP             httpserver.Config
}

type app struct {
	cfg    appConfig
	env    environment.Environment
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Schema-driven attribute validation",
		Long: `attrvalid compiles attribute definitions into rule sets and checks
attribute values against them.

Definitions are YAML documents with an "attributes" section, or a "models"
section holding one such document per model for the HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.AddCommand(checkCmd(a), serveCmd(a), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func (a *app) setup() error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	env, err := environment.Parse(a.cfg.Env)
	if err != nil {
		return err
	}
	a.env = env

	opts := []logger.Option{
		logger.WithEnvironment(env, appName),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(environment.LoggerExtractor(), requestid.LoggerExtractor()),
	}
	if a.cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(a.cfg.LogLevel))
	}
	a.log = logger.New(opts...)
	return nil
}

// validationOptions applies the validator settings shared by every command.
func (a *app) validationOptions() []validation.Option {
	return []validation.Option{
		validation.WithLogger(a.log),
		validation.WithChecker(constraint.NewChecker(constraint.WithRegexCacheSize(a.cfg.RegexCacheSize))),
		validation.WithCompilerOptions(schema.WithIgnoreProperties(a.cfg.IgnoreProperties...)),
	}
}
