package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

// Migrate holds the sub-resource toggles of the migrate request. Values are parsed strictly:
// "True", "true", "1" enable, "False", "false", "0" disable, anything else is an error.
type Migrate struct {
	Options model.MigrateOptions
}

// Flags returns CLI flags for migrate toggles
func (c *Migrate) Flags() []cli.Flag {
	toggle := func(name, env, usage string, dst *bool) cli.Flag {
		return &cli.BoolFlag{
			Name:        name,
			Usage:       usage,
			Destination: dst,
			Sources:     cli.EnvVars(env),
		}
	}

	return []cli.Flag{
		toggle("mirror", "GITEA_MIGRATE_CONFIG_MIRROR", "Create the repository as a pull mirror", &c.Options.Mirror),
		toggle("private", "GITEA_MIGRATE_CONFIG_PRIVATE", "Make the repository private", &c.Options.Private),
		toggle("issues", "GITEA_MIGRATE_CONFIG_ISSUES", "Migrate issues", &c.Options.Issues),
		toggle("labels", "GITEA_MIGRATE_CONFIG_LABELS", "Migrate labels", &c.Options.Labels),
		toggle("milestones", "GITEA_MIGRATE_CONFIG_MILESTONES", "Migrate milestones", &c.Options.Milestones),
		toggle("pull-requests", "GITEA_MIGRATE_CONFIG_PULL_REQUESTS", "Migrate pull requests", &c.Options.PullRequests),
		toggle("releases", "GITEA_MIGRATE_CONFIG_RELEASES", "Migrate releases", &c.Options.Releases),
		toggle("wiki", "GITEA_MIGRATE_CONFIG_WIKI", "Migrate the wiki", &c.Options.Wiki),
	}
}
