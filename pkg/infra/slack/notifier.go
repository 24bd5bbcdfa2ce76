package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/m-mizutani/bb2gitea/pkg/domain/interfaces"
	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
)

type notifier struct {
	webhookURL string
	source     string
	dest       string
}

// NewNotifier creates a Notifier posting the run summary to a Slack incoming webhook.
// source and dest are shown in the message header.
func NewNotifier(webhookURL, source, dest string) interfaces.Notifier {
	return &notifier{
		webhookURL: webhookURL,
		source:     source,
		dest:       dest,
	}
}

// Notify posts summary
func (n *notifier) Notify(ctx context.Context, summary *model.Summary) error {
	msg := &slack.WebhookMessage{
		Text: buildText(n.source, n.dest, summary),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook")
	}
	return nil
}

func buildText(source, dest string, summary *model.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bitbucket `%s` -> Gitea `%s`: %d repositories, %d created, %d failed",
		source, dest, summary.Total, len(summary.Succeeded), len(summary.Failed))

	if summary.HasFailure() {
		b.WriteString("\nFailed: ")
		b.WriteString(strings.Join(summary.Failed, ", "))
	}
	return b.String()
}
