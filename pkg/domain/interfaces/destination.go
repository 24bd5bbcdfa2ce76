package interfaces

import (
	"context"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

// RepositoryMigrator asks the destination host to import a repository
type RepositoryMigrator interface {
	// Migrate submits one migrate request. A nil error means the repository was created.
	Migrate(ctx context.Context, req *model.MigrateRequest) error
}
