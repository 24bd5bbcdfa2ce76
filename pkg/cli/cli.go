package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bb2gitea/pkg/cli/config"
	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
)

// EnvFileKey names the environment variable pointing to an optional dotenv file
const EnvFileKey = "BB2GITEA_ENV_FILE"

type runConfig struct {
	stdout io.Writer
	stderr io.Writer
}

// Option is a functional option for Run
type Option func(*runConfig)

// WithStdout sets where the run summary is printed
func WithStdout(w io.Writer) Option {
	return func(c *runConfig) {
		c.stdout = w
	}
}

// WithStderr sets where logs are written
func WithStderr(w io.Writer) Option {
	return func(c *runConfig) {
		c.stderr = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	rc := &runConfig{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(rc)
	}

	var loggerCfg config.Logger
	var logger *slog.Logger

	// Values already present in the environment take precedence over the file
	if path := os.Getenv(EnvFileKey); path != "" {
		if err := godotenv.Load(path); err != nil {
			err = goerr.Wrap(err, "failed to load env file", goerr.V("path", path), goerr.T(types.ErrTagConfiguration))
			slog.New(slog.NewTextHandler(rc.stderr, nil)).Error("CLI execution failed", slog.Any("error", err))
			return err
		}
	}

	migrate := newMigrateCommand(rc)

	app := &cli.Command{
		Name:      "bb2gitea",
		Usage:     "Migrate every Bitbucket repository of an owner into Gitea",
		Version:   types.Version,
		Writer:    rc.stdout,
		ErrWriter: rc.stderr,
		Flags:     append(loggerCfg.Flags(), migrate.flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure(rc.stderr)
			if err != nil {
				return nil, err
			}

			migrate.logger = logger
			return ctx, nil
		},
		Action: migrate.action,
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(rc.stderr, nil))
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
