package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
)

const (
	// DefaultAPIURL is the Bitbucket Cloud REST API host
	DefaultAPIURL = "https://api.bitbucket.org"
	// DefaultWebURL is the host prefix of repository browse URLs
	DefaultWebURL = "https://bitbucket.org"
	// DefaultMaxPages bounds the number of page requests per listing
	DefaultMaxPages = 1000

	pageLen = 100
)

type client struct {
	apiURL   string
	webURL   string
	creds    model.Credentials
	maxPages int
	http     *http.Client
	logger   *slog.Logger
}

// Option is a functional option for the Bitbucket client
type Option func(*client)

// WithAPIURL overrides the REST API base URL
func WithAPIURL(apiURL string) Option {
	return func(c *client) {
		c.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithWebURL overrides the browse URL prefix used for Descriptor.SourceURL
func WithWebURL(webURL string) Option {
	return func(c *client) {
		c.webURL = strings.TrimRight(webURL, "/")
	}
}

// WithMaxPages sets the page request cap
func WithMaxPages(n int) Option {
	return func(c *client) {
		c.maxPages = n
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *client) {
		c.http = h
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// NewClient creates a Bitbucket Cloud repository lister authenticated with basic auth
func NewClient(creds model.Credentials, opts ...Option) interfaces.RepositoryLister {
	c := &client{
		apiURL:   DefaultAPIURL,
		webURL:   DefaultWebURL,
		creds:    creds,
		maxPages: DefaultMaxPages,
		http:     cleanhttp.DefaultClient(),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type repositoryPage struct {
	Page   int               `json:"page"`
	Values []repositoryEntry `json:"values"`
}

type repositoryEntry struct {
	FullName    string  `json:"full_name"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ListRepositories walks /2.0/repositories/{owner} until a page with no values is returned.
// The next page number is taken from the "page" field of the previous response.
func (c *client) ListRepositories(ctx context.Context, owner string) ([]*model.Descriptor, error) {
	if owner == "" {
		return nil, goerr.New("owner is required", goerr.T(types.ErrTagListing))
	}

	var entries []repositoryEntry
	page := 1
	for requests := 0; ; requests++ {
		if requests >= c.maxPages {
			return nil, goerr.New("too many pages while listing repositories",
				goerr.V("owner", owner),
				goerr.V("max_pages", c.maxPages),
				goerr.T(types.ErrTagListing),
			)
		}

		resp, err := c.fetchPage(ctx, owner, page)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("Fetched repository page",
			"owner", owner,
			"requested_page", page,
			"page", resp.Page,
			"count", len(resp.Values),
		)

		if len(resp.Values) == 0 {
			break
		}
		// The next request is derived from the reported page, so a missing or stale value would
		// fetch the same page again
		if resp.Page <= 0 || resp.Page < page {
			return nil, goerr.New("invalid page number in repository list response",
				goerr.V("owner", owner),
				goerr.V("requested_page", page),
				goerr.V("reported_page", resp.Page),
				goerr.T(types.ErrTagListing),
			)
		}
		entries = append(entries, resp.Values...)
		page = resp.Page + 1
	}

	descriptors := make([]*model.Descriptor, 0, len(entries))
	for _, e := range entries {
		desc, err := model.NewDescriptor(c.webURL, e.FullName, e.Name, e.Description)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to map repository entry", goerr.T(types.ErrTagListing))
		}
		descriptors = append(descriptors, desc)
	}

	c.logger.Info("Listed repositories", "owner", owner, "count", len(descriptors))
	return descriptors, nil
}

func (c *client) fetchPage(ctx context.Context, owner string, page int) (*repositoryPage, error) {
	query := url.Values{}
	query.Set("pagelen", strconv.Itoa(pageLen))
	query.Set("page", strconv.Itoa(page))
	apiURL := fmt.Sprintf("%s/2.0/repositories/%s?%s", c.apiURL, url.PathEscape(owner), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create list request", goerr.V("url", apiURL), goerr.T(types.ErrTagListing))
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch the list of repositories", goerr.V("url", apiURL), goerr.T(types.ErrTagListing))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", apiURL), goerr.T(types.ErrTagListing))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(&model.HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)},
			"failed to fetch the list of repositories",
			goerr.V("owner", owner),
			goerr.V("page", page),
			goerr.V("status_code", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.T(types.ErrTagListing),
		)
	}

	var result repositoryPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository page", goerr.V("page", page), goerr.T(types.ErrTagListing))
	}

	return &result, nil
}
