package sentry

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
)

const flushTimeout = 2 * time.Second

// Reporter sends errors to Sentry through its own hub
type Reporter struct {
	hub    *sentry.Hub
	logger *slog.Logger
}

var _ interfaces.ErrorReporter = (*Reporter)(nil)

// NewReporter creates a Sentry reporter. An empty dsn yields a reporter that drops everything.
func NewReporter(dsn string, logger *slog.Logger) (*Reporter, error) {
	if dsn == "" {
		return &Reporter{logger: logger}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:     dsn,
		Release: "bb2gitea@" + types.Version,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sentry client", goerr.T(types.ErrTagConfiguration))
	}

	return &Reporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		logger: logger,
	}, nil
}

// Report captures err. It never fails the caller.
func (r *Reporter) Report(ctx context.Context, err error) {
	if r.hub == nil || err == nil {
		return
	}

	eventID := r.hub.CaptureException(err)
	if eventID != nil {
		r.logger.Debug("Error reported to sentry", "event_id", string(*eventID))
	}
}

// Flush waits for buffered events to be delivered
func (r *Reporter) Flush() {
	if r.hub == nil {
		return
	}
	if !r.hub.Flush(flushTimeout) {
		r.logger.Warn("Timed out flushing sentry events")
	}
}
