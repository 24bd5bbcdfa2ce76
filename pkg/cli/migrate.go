package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bb2gitea/pkg/cli/config"
	"github.com/m-mizutani/bb2gitea/pkg/infra/bitbucket"
	"github.com/m-mizutani/bb2gitea/pkg/infra/gitea"
	sentryinfra "github.com/m-mizutani/bb2gitea/pkg/infra/sentry"
	slackinfra "github.com/m-mizutani/bb2gitea/pkg/infra/slack"
	"github.com/m-mizutani/bb2gitea/pkg/usecase"
)

type migrateCommand struct {
	rc     *runConfig
	logger *slog.Logger

	bitbucketCfg config.Bitbucket
	giteaCfg     config.Gitea
	migrateCfg   config.Migrate
	notifyCfg    config.Notify
	dryRun       bool
}

func newMigrateCommand(rc *runConfig) *migrateCommand {
	return &migrateCommand{rc: rc}
}

func (m *migrateCommand) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, m.bitbucketCfg.Flags()...)
	flags = append(flags, m.giteaCfg.Flags()...)
	flags = append(flags, m.migrateCfg.Flags()...)
	flags = append(flags, m.notifyCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "List source repositories without migrating them",
		Destination: &m.dryRun,
		Sources:     cli.EnvVars("BB2GITEA_DRY_RUN"),
	})
	return flags
}

func (m *migrateCommand) action(ctx context.Context, c *cli.Command) error {
	logger := m.logger.With("run_id", uuid.NewString())

	if m.dryRun {
		if err := config.Validate(&m.bitbucketCfg); err != nil {
			return err
		}
	} else {
		if err := config.Validate(&m.bitbucketCfg, &m.giteaCfg); err != nil {
			return err
		}
		if err := m.giteaCfg.Validate(); err != nil {
			return err
		}
	}

	reporter, err := sentryinfra.NewReporter(m.notifyCfg.SentryDSN, logger)
	if err != nil {
		return err
	}
	defer reporter.Flush()

	uc := usecase.NewMigrate(
		m.bitbucketCfg.NewClient(bitbucket.WithLogger(logger)),
		m.giteaCfg.NewClient(gitea.WithLogger(logger)),
		usecase.MigrateConfig{
			SourceOwner:      m.bitbucketCfg.Owner,
			SourceCreds:      m.bitbucketCfg.Credentials(),
			DestinationURL:   m.giteaCfg.BaseURL(),
			DestinationOwner: m.giteaCfg.Owner,
			Options:          m.migrateCfg.Options,
		},
		usecase.WithLogger(logger),
		usecase.WithErrorReporter(reporter),
	)

	logger.Info("Starting migration",
		"source_owner", m.bitbucketCfg.Owner,
		"destination", m.giteaCfg.BaseURL(),
		"destination_owner", m.giteaCfg.Owner,
		"options", m.migrateCfg.Options,
		"dry_run", m.dryRun,
	)

	if m.dryRun {
		descriptors, err := uc.List(ctx)
		if err != nil {
			reporter.Report(ctx, err)
			return err
		}
		printDescriptors(m.rc.stdout, descriptors)
		return nil
	}

	summary, err := uc.Run(ctx)
	if err != nil {
		reporter.Report(ctx, err)
		return err
	}
	printSummary(m.rc.stdout, summary)

	if m.notifyCfg.SlackWebhookURL != "" {
		notifier := slackinfra.NewNotifier(m.notifyCfg.SlackWebhookURL, m.bitbucketCfg.Owner, m.giteaCfg.Owner)
		if err := notifier.Notify(ctx, summary); err != nil {
			logger.Warn("Failed to notify summary", "error", err)
		}
	}

	return nil
}
