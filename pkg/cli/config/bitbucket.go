package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
	"github.com/m-mizutani/bb2gitea/pkg/infra/bitbucket"
)

// Bitbucket holds source host configuration
type Bitbucket struct {
	Owner    string
	Username string
	Password string `masq:"secret"`
	APIURL   string
	WebURL   string
}

// Flags returns CLI flags for Bitbucket configuration
func (c *Bitbucket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bitbucket-orgname",
			Usage:       "Bitbucket workspace or user owning the repositories",
			Destination: &c.Owner,
			Sources:     cli.EnvVars("BITBUCKET_ORGNAME"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-username",
			Usage:       "Bitbucket username",
			Destination: &c.Username,
			Sources:     cli.EnvVars("BITBUCKET_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-password",
			Usage:       "Bitbucket app password",
			Destination: &c.Password,
			Sources:     cli.EnvVars("BITBUCKET_PASSWORD"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-api-url",
			Usage:       "Bitbucket REST API base URL",
			Value:       bitbucket.DefaultAPIURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("BITBUCKET_API_URL"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-web-url",
			Usage:       "Bitbucket web URL prefix of repositories",
			Value:       bitbucket.DefaultWebURL,
			Destination: &c.WebURL,
			Sources:     cli.EnvVars("BITBUCKET_WEB_URL"),
		},
	}
}

// Missing returns the environment keys of required values that are empty
func (c *Bitbucket) Missing() []string {
	return missingKeys(
		required{"BITBUCKET_ORGNAME", c.Owner},
		required{"BITBUCKET_USERNAME", c.Username},
		required{"BITBUCKET_PASSWORD", c.Password},
	)
}

// Credentials returns the basic auth pair
func (c *Bitbucket) Credentials() model.Credentials {
	return model.Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}

// NewClient creates the repository lister
func (c *Bitbucket) NewClient(opts ...bitbucket.Option) interfaces.RepositoryLister {
	opts = append([]bitbucket.Option{
		bitbucket.WithAPIURL(c.APIURL),
		bitbucket.WithWebURL(c.WebURL),
	}, opts...)
	return bitbucket.NewClient(c.Credentials(), opts...)
}
