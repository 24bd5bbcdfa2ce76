package interfaces

import (
	"context"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

// MigrateUseCase moves every repository of a source owner to the destination
type MigrateUseCase interface {
	// Run lists the source repositories and migrates them one by one. Only a listing failure
	// is returned as error; per-repository failures are recorded in the summary.
	Run(ctx context.Context) (*model.Summary, error)

	// List returns the descriptors without migrating anything
	List(ctx context.Context) ([]*model.Descriptor, error)
}
