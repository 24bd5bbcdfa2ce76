package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
)

// DefaultTimeout bounds a single migrate request. Gitea imports synchronously, so large
// repositories take a while.
const DefaultTimeout = 2 * time.Minute

type client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// Option is a functional option for the Gitea client
type Option func(*client)

// WithTimeout sets the per-request timeout. A non-positive value keeps DefaultTimeout so that
// a request is never left unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d <= 0 {
			return
		}
		c.http.Timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// NewClient creates a Gitea API client. baseURL is scheme and host, a trailing slash is removed.
func NewClient(baseURL, token string, opts ...Option) interfaces.RepositoryMigrator {
	httpClient := cleanhttp.DefaultClient()
	httpClient.Timeout = DefaultTimeout

	c := &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Migrate posts req to /api/v1/repos/migrate. Only 201 Created counts as success.
func (c *client) Migrate(ctx context.Context, req *model.MigrateRequest) error {
	apiURL := c.baseURL + "/api/v1/repos/migrate"

	payload, err := json.Marshal(req)
	if err != nil {
		return goerr.Wrap(err, "failed to encode migrate request", goerr.V("repo_name", req.RepoName), goerr.T(types.ErrTagMigration))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return goerr.Wrap(err, "failed to create migrate request", goerr.V("url", apiURL), goerr.T(types.ErrTagMigration))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "token "+c.token)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return goerr.Wrap(err, "failed to send migrate request",
			goerr.V("repo_name", req.RepoName),
			goerr.V("elapsed", time.Since(start).String()),
			goerr.T(types.ErrTagMigration),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read migrate response", goerr.V("repo_name", req.RepoName), goerr.T(types.ErrTagMigration))
	}

	c.logger.Debug("Migrate response received",
		"repo_name", req.RepoName,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusCreated {
		return goerr.Wrap(&model.HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)},
			"failed to create repository",
			goerr.V("repo_name", req.RepoName),
			goerr.V("status_code", resp.StatusCode),
			goerr.T(types.ErrTagMigration),
		)
	}

	return nil
}
