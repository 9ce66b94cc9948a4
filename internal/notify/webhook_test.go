package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL)
	err := hook.Send(context.Background(), Event{Level: LevelFailure, Message: "role sync failed"})
	require.NoError(t, err)

	content := got["content"]
	assert.True(t, strings.HasPrefix(content, "```ansi\n"))
	assert.Contains(t, content, "\x1b[1;31mrole")
	assert.Contains(t, content, "\x1b[1;31mfailed")
}

func TestRenderContentColorsByLevel(t *testing.T) {
	assert.Contains(t, renderContent(Event{Level: LevelSuccess, Message: "done"}), ansiGreen+"done")
	assert.Contains(t, renderContent(Event{Level: LevelInfo, Message: "note"}), ansiBlue+"note")
	assert.Contains(t, renderContent(Event{Level: LevelFailure, Message: "boom"}), ansiRed+"boom")
}

func TestWebhookSendBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL).Send(context.Background(), Event{Level: LevelInfo, Message: "hello"})
	require.Error(t, err)
}

func TestPublisherDropsWhenFull(t *testing.T) {
	pub := NewPublisher(1)
	assert.True(t, pub.Emit(Event{Message: "first"}))
	assert.False(t, pub.Emit(Event{Message: "second"}), "full inbox drops instead of blocking")
}
