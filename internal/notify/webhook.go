package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ANSI sequences for the webhook's code-block rendering. The alert channel
// shows log lines colored by outcome on a dark background.
const (
	ansiBackground = "\x1b[0;40m"
	ansiGreen      = "\x1b[1;32m"
	ansiBlue       = "\x1b[1;34m"
	ansiRed        = "\x1b[1;31m"
)

// Webhook posts events to a Discord-style webhook URL.
type Webhook struct {
	url    string
	client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) Send(ctx context.Context, ev Event) error {
	body, err := json.Marshal(map[string]string{
		"content": renderContent(ev),
	})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("post webhook: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// renderContent wraps the message in an ansi code block with every word
// colored by event level, matching the alert channel's house style.
func renderContent(ev Event) string {
	color := ansiBlue
	switch ev.Level {
	case LevelSuccess:
		color = ansiGreen
	case LevelFailure:
		color = ansiRed
	}

	words := strings.Split(ev.Message, " ")
	for i, word := range words {
		words[i] = color + word
	}
	return fmt.Sprintf("```ansi\n%s%s```", ansiBackground, strings.Join(words, " "))
}
