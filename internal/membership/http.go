package membership

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rolesync/internal/badges"
	"rolesync/pkg/sentinel"
)

// HTTPClient implements Client against a Discord-style guild membership
// REST API: GET the guild member for their role list, PATCH the member with
// the full replacement list.
type HTTPClient struct {
	baseURL string
	guildID string
	token   string
	client  *http.Client
}

// NewHTTPClient builds a membership client. The http.Client is pooled and
// shared across requests; timeout bounds each call to the service.
func NewHTTPClient(baseURL, guildID, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		guildID: guildID,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type memberPayload struct {
	Roles []badges.ID `json:"roles"`
}

func (c *HTTPClient) Badges(ctx context.Context, memberID string) ([]badges.ID, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.memberURL(memberID), nil)
	if err != nil {
		return nil, fmt.Errorf("build member request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch member: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, sentinel.ErrUnknownMember
	default:
		return nil, fmt.Errorf("fetch member: unexpected status %d", resp.StatusCode)
	}

	var member memberPayload
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("decode member: %w", err)
	}
	return member.Roles, nil
}

func (c *HTTPClient) ReplaceBadges(ctx context.Context, memberID string, ids []badges.ID) error {
	if ids == nil {
		ids = []badges.ID{}
	}
	body, err := json.Marshal(memberPayload{Roles: ids})
	if err != nil {
		return fmt.Errorf("encode roles: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.memberURL(memberID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("update member roles: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return sentinel.ErrUnknownMember
	default:
		return fmt.Errorf("update member roles: unexpected status %d", resp.StatusCode)
	}
}

func (c *HTTPClient) memberURL(memberID string) string {
	return fmt.Sprintf("%s/guilds/%s/members/%s", c.baseURL, c.guildID, memberID)
}

func (c *HTTPClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bot "+c.token)
}
