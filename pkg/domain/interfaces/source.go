package interfaces

import (
	"context"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

// RepositoryLister lists every repository owned by an account on the source host
type RepositoryLister interface {
	// ListRepositories returns all repositories of owner in the order the host returns them.
	// Either every page is fetched or an error is returned; partial results are never returned.
	ListRepositories(ctx context.Context, owner string) ([]*model.Descriptor, error)
}
