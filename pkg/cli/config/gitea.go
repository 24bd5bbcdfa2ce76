package config

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
	"github.com/m-mizutani/bb2gitea/pkg/infra/gitea"
)

// Gitea holds destination host configuration
type Gitea struct {
	URL     string
	Token   string `masq:"secret"`
	Owner   string
	Timeout time.Duration
}

// Flags returns CLI flags for Gitea configuration
func (c *Gitea) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitea-url",
			Usage:       "Gitea base URL, e.g. https://gitea.example.com",
			Destination: &c.URL,
			Sources:     cli.EnvVars("GITEA_URL"),
		},
		&cli.StringFlag{
			Name:        "gitea-token",
			Usage:       "Gitea API token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITEA_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "gitea-owner",
			Usage:       "Gitea organization or user receiving the repositories",
			Destination: &c.Owner,
			Sources:     cli.EnvVars("GITEA_ORGNAME_OR_USERNAME"),
		},
		&cli.DurationFlag{
			Name:        "gitea-migrate-timeout",
			Usage:       "Timeout of a single migrate request",
			Value:       gitea.DefaultTimeout,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("GITEA_MIGRATE_TIMEOUT"),
		},
	}
}

// Missing returns the environment keys of required values that are empty
func (c *Gitea) Missing() []string {
	return missingKeys(
		required{"GITEA_URL", c.URL},
		required{"GITEA_TOKEN", c.Token},
		required{"GITEA_ORGNAME_OR_USERNAME", c.Owner},
	)
}

// Validate rejects a non-positive timeout, which http.Client treats as no limit
func (c *Gitea) Validate() error {
	if c.Timeout <= 0 {
		return goerr.New("GITEA_MIGRATE_TIMEOUT must be greater than zero",
			goerr.V("timeout", c.Timeout.String()),
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return nil
}

// BaseURL returns URL without trailing slash
func (c *Gitea) BaseURL() string {
	return strings.TrimRight(c.URL, "/")
}

// NewClient creates the migrate client
func (c *Gitea) NewClient(opts ...gitea.Option) interfaces.RepositoryMigrator {
	opts = append([]gitea.Option{gitea.WithTimeout(c.Timeout)}, opts...)
	return gitea.NewClient(c.BaseURL(), c.Token, opts...)
}
