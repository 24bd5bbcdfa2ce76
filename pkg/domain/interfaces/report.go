package interfaces

import (
	"context"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

// ErrorReporter forwards errors to an external error tracker
type ErrorReporter interface {
	Report(ctx context.Context, err error)
}

// Notifier publishes the result of a run
type Notifier interface {
	Notify(ctx context.Context, summary *model.Summary) error
}
