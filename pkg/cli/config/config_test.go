package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bb2gitea/pkg/cli/config"
	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
)

var allKeys = []string{
	"BITBUCKET_ORGNAME", "BITBUCKET_USERNAME", "BITBUCKET_PASSWORD",
	"GITEA_URL", "GITEA_TOKEN", "GITEA_ORGNAME_OR_USERNAME", "GITEA_MIGRATE_TIMEOUT",
	"GITEA_MIGRATE_CONFIG_MIRROR", "GITEA_MIGRATE_CONFIG_PRIVATE", "GITEA_MIGRATE_CONFIG_ISSUES",
	"GITEA_MIGRATE_CONFIG_LABELS", "GITEA_MIGRATE_CONFIG_MILESTONES", "GITEA_MIGRATE_CONFIG_PULL_REQUESTS",
	"GITEA_MIGRATE_CONFIG_RELEASES", "GITEA_MIGRATE_CONFIG_WIKI",
}

// clearEnv unsets every known key so the host environment cannot leak into a test.
// t.Setenv registers the restore, Unsetenv then removes the key.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
		gt.NoError(t, os.Unsetenv(key))
	}
}

func parse(t *testing.T, flags []cli.Flag, args ...string) error {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestValidate_EnumeratesAllMissingKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("BITBUCKET_ORGNAME", "org")
	t.Setenv("BITBUCKET_USERNAME", "alice")
	t.Setenv("GITEA_URL", "https://gitea.example.com")
	t.Setenv("GITEA_ORGNAME_OR_USERNAME", "team")

	var bb config.Bitbucket
	var gitea config.Gitea
	gt.NoError(t, parse(t, append(bb.Flags(), gitea.Flags()...)))

	err := config.Validate(&bb, &gitea)
	gt.Error(t, err)
	gt.V(t, goerr.HasTag(err, types.ErrTagConfiguration)).Equal(true)
	gt.String(t, err.Error()).Contains("BITBUCKET_PASSWORD")
	gt.String(t, err.Error()).Contains("GITEA_TOKEN")
	gt.String(t, err.Error()).NotContains("GITEA_URL")
}

func TestValidate_AllPresent(t *testing.T) {
	clearEnv(t)
	t.Setenv("BITBUCKET_ORGNAME", "org")
	t.Setenv("BITBUCKET_USERNAME", "alice")
	t.Setenv("BITBUCKET_PASSWORD", "secret")
	t.Setenv("GITEA_URL", "https://gitea.example.com/")
	t.Setenv("GITEA_TOKEN", "token")
	t.Setenv("GITEA_ORGNAME_OR_USERNAME", "team")

	var bb config.Bitbucket
	var gitea config.Gitea
	gt.NoError(t, parse(t, append(bb.Flags(), gitea.Flags()...)))
	gt.NoError(t, config.Validate(&bb, &gitea))

	gt.Equal(t, bb.Credentials(), model.Credentials{Username: "alice", Password: "secret"})
	gt.Equal(t, gitea.BaseURL(), "https://gitea.example.com")
	gt.Equal(t, gitea.Timeout, 2*time.Minute)
	gt.Equal(t, bb.APIURL, "https://api.bitbucket.org")
	gt.Equal(t, bb.WebURL, "https://bitbucket.org")
}

func TestValidate_FlagsOverrideMissingEnv(t *testing.T) {
	clearEnv(t)

	var bb config.Bitbucket
	gt.NoError(t, parse(t, bb.Flags(),
		"--bitbucket-orgname", "org",
		"--bitbucket-username", "alice",
		"--bitbucket-password", "secret",
	))
	gt.NoError(t, config.Validate(&bb))
}

func TestMigrate_TogglesDefaultFalse(t *testing.T) {
	clearEnv(t)

	var m config.Migrate
	gt.NoError(t, parse(t, m.Flags()))
	gt.Equal(t, m.Options, model.MigrateOptions{})
}

func TestMigrate_TogglesFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITEA_MIGRATE_CONFIG_MIRROR", "True")
	t.Setenv("GITEA_MIGRATE_CONFIG_PULL_REQUESTS", "True")
	t.Setenv("GITEA_MIGRATE_CONFIG_WIKI", "true")
	t.Setenv("GITEA_MIGRATE_CONFIG_PRIVATE", "False")

	var m config.Migrate
	gt.NoError(t, parse(t, m.Flags()))
	gt.Equal(t, m.Options, model.MigrateOptions{
		Mirror:       true,
		PullRequests: true,
		Wiki:         true,
	})
}

func TestMigrate_RejectsUnrecognizedValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITEA_MIGRATE_CONFIG_ISSUES", "yes please")

	var m config.Migrate
	gt.Error(t, parse(t, m.Flags()))
}

func TestMigrate_FlagNames(t *testing.T) {
	var m config.Migrate
	flagNames := make(map[string]bool)
	for _, flag := range m.Flags() {
		flagNames[flag.Names()[0]] = true
	}

	gt.Equal(t, len(flagNames), 8)
	for _, name := range []string{"mirror", "private", "issues", "labels", "milestones", "pull-requests", "releases", "wiki"} {
		gt.V(t, flagNames[name]).Equal(true)
	}
}

func TestGitea_ValidateTimeout(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "default", value: "", wantErr: false},
		{name: "positive", value: "30s", wantErr: false},
		{name: "zero", value: "0s", wantErr: true},
		{name: "negative", value: "-5s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.value != "" {
				t.Setenv("GITEA_MIGRATE_TIMEOUT", tt.value)
			}

			var g config.Gitea
			gt.NoError(t, parse(t, g.Flags()))

			err := g.Validate()
			if !tt.wantErr {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.V(t, goerr.HasTag(err, types.ErrTagConfiguration)).Equal(true)
			gt.String(t, err.Error()).Contains("GITEA_MIGRATE_TIMEOUT")
		})
	}
}
