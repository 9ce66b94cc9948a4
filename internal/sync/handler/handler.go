// Package handler wires the sync endpoints to the orchestrator service.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rolesync/internal/progression/models"
	"rolesync/internal/sync"
	"rolesync/pkg/apperrors"
	"rolesync/pkg/httputil"
	"rolesync/pkg/requestcontext"
)

// distributionChannelHeader marks requests from the beta release channel;
// those players carry the beta flag regardless of the reported body.
const (
	distributionChannelHeader = "X-Distribution-Channel"
	betaChannel               = "Beta"

	serviceKeyHeader = "X-Userdata-Auth"
)

// Service defines the interface for sync operations.
type Service interface {
	Run(ctx context.Context, creds sync.Credentials, upd models.Update) (sync.Summary, error)
}

// Handler wires the userdata endpoints to the sync service.
type Handler struct {
	service    Service
	serviceKey string
	logger     *slog.Logger
}

// New constructs a sync handler. An empty serviceKey disables the
// service-to-service key check.
func New(service Service, serviceKey string, logger *slog.Logger) *Handler {
	return &Handler{
		service:    service,
		serviceKey: serviceKey,
		logger:     logger,
	}
}

// Register mounts the sync endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/userdata", h.HandleSync)
	r.Get("/healthz", h.HandleHealth)
}

// HandleSync handles POST /userdata requests.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	if h.serviceKey != "" && r.Header.Get(serviceKeyHeader) != h.serviceKey {
		httputil.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "unauthorized"))
		return
	}

	creds, ok := parseCredentials(r.Header.Get("Authorization"))
	if !ok {
		httputil.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "unauthorized"))
		return
	}

	var upd models.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httputil.WriteError(w, apperrors.New(apperrors.CodeBadRequest, "malformed request body"))
		return
	}

	if r.Header.Get(distributionChannelHeader) == betaChannel {
		beta := true
		upd.BetaTester = &beta
	}

	summary, err := h.service.Run(ctx, creds, upd)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync request failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"user_agent", requestcontext.UserAgent(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "sync request served",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"gained", len(summary.NewlyGained),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleHealth handles GET /healthz liveness checks.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseCredentials decodes the game client's authorization header:
// base64(playerId:playerToken), with or without the Basic prefix.
func parseCredentials(header string) (sync.Credentials, bool) {
	header = strings.TrimPrefix(header, "Basic ")
	if header == "" {
		return sync.Credentials{}, false
	}
	decoded, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return sync.Credentials{}, false
	}
	playerID, playerToken, found := strings.Cut(string(decoded), ":")
	if !found || playerID == "" || playerToken == "" {
		return sync.Credentials{}, false
	}
	return sync.Credentials{PlayerID: playerID, PlayerToken: playerToken}, true
}
