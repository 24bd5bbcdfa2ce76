package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
	"github.com/m-mizutani/bb2gitea/pkg/utils/isolate"
)

// MigrateConfig holds the parameters of one migration run
type MigrateConfig struct {
	SourceOwner      string
	SourceCreds      model.Credentials
	DestinationURL   string
	DestinationOwner string
	Options          model.MigrateOptions
}

type migrateUseCase struct {
	lister   interfaces.RepositoryLister
	migrator interfaces.RepositoryMigrator
	cfg      MigrateConfig
	logger   *slog.Logger
	reporter interfaces.ErrorReporter
}

// MigrateOption is a functional option for the migrate use case
type MigrateOption func(*migrateUseCase)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) MigrateOption {
	return func(uc *migrateUseCase) {
		uc.logger = logger
	}
}

// WithErrorReporter forwards per-repository failures to reporter
func WithErrorReporter(reporter interfaces.ErrorReporter) MigrateOption {
	return func(uc *migrateUseCase) {
		uc.reporter = reporter
	}
}

// NewMigrate creates a new instance of MigrateUseCase
func NewMigrate(
	lister interfaces.RepositoryLister,
	migrator interfaces.RepositoryMigrator,
	cfg MigrateConfig,
	opts ...MigrateOption,
) interfaces.MigrateUseCase {
	uc := &migrateUseCase{
		lister:   lister,
		migrator: migrator,
		cfg:      cfg,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// List fetches every source repository descriptor
func (uc *migrateUseCase) List(ctx context.Context) ([]*model.Descriptor, error) {
	descriptors, err := uc.lister.ListRepositories(ctx, uc.cfg.SourceOwner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list source repositories", goerr.V("owner", uc.cfg.SourceOwner))
	}
	return descriptors, nil
}

// Run lists all repositories first, then migrates them strictly one at a time
func (uc *migrateUseCase) Run(ctx context.Context) (*model.Summary, error) {
	descriptors, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		Total:     len(descriptors),
		Succeeded: []string{},
		Failed:    []string{},
	}

	for _, desc := range descriptors {
		if err := uc.migrate(ctx, desc); err != nil {
			summary.Failed = append(summary.Failed, desc.Name)
			continue
		}
		summary.Succeeded = append(summary.Succeeded, desc.Name)
	}

	uc.logger.Info("Migration finished",
		"total", summary.Total,
		"succeeded", len(summary.Succeeded),
		"failed", len(summary.Failed),
	)

	return summary, nil
}

// migrate dispatches a single repository. The error is logged here and only returned so
// that the caller can count it.
func (uc *migrateUseCase) migrate(ctx context.Context, desc *model.Descriptor) error {
	uc.logger.Info("Migrating repository",
		"name", desc.Name,
		"full_name", desc.FullName,
		"destination", uc.cfg.DestinationURL,
	)

	err := isolate.Call(ctx, func(ctx context.Context) error {
		req, err := model.NewMigrateRequest(desc, uc.cfg.DestinationOwner, uc.cfg.SourceCreds, uc.cfg.Options)
		if err != nil {
			return err
		}
		return uc.migrator.Migrate(ctx, req)
	})
	if err == nil {
		uc.logger.Info("Created repository", "name", desc.Name)
		return nil
	}

	var statusErr *model.HTTPStatusError
	if errors.As(err, &statusErr) {
		uc.logger.Error("Failed to create repository",
			"name", desc.Name,
			"status", statusErr.StatusCode,
			"body", statusErr.Body,
		)
	} else {
		uc.logger.Error("Failed to create repository",
			"name", desc.Name,
			"error", err,
		)
	}

	if uc.reporter != nil {
		uc.reporter.Report(ctx, err)
	}

	return err
}
