package config

import (
	"github.com/urfave/cli/v3"
)

// Notify holds optional reporting destinations
type Notify struct {
	SentryDSN       string `masq:"secret"`
	SlackWebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN to report failures to",
			Destination: &c.SentryDSN,
			Sources:     cli.EnvVars("BB2GITEA_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL to post the run summary to",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("BB2GITEA_SLACK_WEBHOOK_URL"),
		},
	}
}
