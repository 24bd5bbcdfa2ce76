package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/bb2gitea/pkg/domain/model"
	slackinfra "github.com/m-mizutani/bb2gitea/pkg/infra/slack"
)

func TestNotifier_Notify(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	notifier := slackinfra.NewNotifier(server.URL, "org", "team")
	err := notifier.Notify(context.Background(), &model.Summary{
		Total:     3,
		Succeeded: []string{"a", "c"},
		Failed:    []string{"b"},
	})
	gt.NoError(t, err)

	text, ok := received["text"].(string)
	gt.V(t, ok).Equal(true)
	gt.String(t, text).Contains("3 repositories, 2 created, 1 failed")
	gt.String(t, text).Contains("Failed: b")
}

func TestNotifier_Notify_NoFailures(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := slackinfra.NewNotifier(server.URL, "org", "team")
	gt.NoError(t, notifier.Notify(context.Background(), &model.Summary{Total: 1, Succeeded: []string{"a"}}))

	text, _ := received["text"].(string)
	gt.String(t, text).NotContains("Failed:")
}

func TestNotifier_Notify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := slackinfra.NewNotifier(server.URL, "org", "team")
	gt.Error(t, notifier.Notify(context.Background(), &model.Summary{}))
}
