// Package sync orchestrates the full reconciliation pipeline: credentials
// in, updated record and applied badge set out, one summary per request.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rolesync/internal/badges"
	"rolesync/internal/identity"
	"rolesync/internal/notify"
	"rolesync/internal/progression/models"
	"rolesync/internal/progression/store"
	"rolesync/internal/reconcile"
	"rolesync/internal/sync/lock"
	"rolesync/internal/sync/metrics"
	"rolesync/pkg/apperrors"
	"rolesync/pkg/requestcontext"
	"rolesync/pkg/sentinel"
)

// Summary messages returned to the game client verbatim.
const (
	msgNothingGained = "The request was successful, but you've already gained all of the possible roles with your current progress"
	msgGainedPrefix  = "The request was successful, you've gained the following roles: "
)

// Credentials are the caller's raw identifiers. They exist only for the
// duration of the request; only the derived token is ever persisted.
type Credentials struct {
	PlayerID    string
	PlayerToken string
}

// Summary is the caller-visible outcome of one sync.
type Summary struct {
	Message     string   `json:"message"`
	NewlyGained []string `json:"newly_gained,omitempty"`
}

// Reconciler applies a resolved badge set to a member.
type Reconciler interface {
	Reconcile(ctx context.Context, memberID string, res badges.Resolution) (reconcile.Result, error)
}

// Notifier receives the per-request operational log line.
type Notifier interface {
	Emit(ev notify.Event) bool
}

// Service runs the reconciliation pipeline.
type Service struct {
	secret     []byte
	store      store.Store
	reconciler Reconciler
	locker     lock.Locker
	logger     *slog.Logger
	notifier   Notifier
	metrics    *metrics.Metrics
}

type Option func(s *Service)

func WithLocker(l lock.Locker) Option {
	return func(s *Service) {
		s.locker = l
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(secret []byte, st store.Store, rec Reconciler, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{secret: secret, store: st, reconciler: rec, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one sync: derive the identity token, load the record, apply
// the update, resolve badge tiers, and reconcile the member's badge set.
//
// An unknown token fails with CodeNotLinked before anything is written or
// any membership call is made. Internal failures after that point are
// opaque to the caller; the detail goes to the structured log and the
// operational notifier only.
func (s *Service) Run(ctx context.Context, creds Credentials, upd models.Update) (Summary, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveSyncLatency(time.Since(start))
	}()

	if err := upd.Validate(); err != nil {
		s.metrics.IncrementOutcome("invalid")
		s.emit(notify.LevelFailure, "sync rejected: "+err.Error())
		return Summary{}, apperrors.Wrap(apperrors.CodeBadRequest, err.Error(), err)
	}

	token, err := identity.DeriveToken(s.secret, creds.PlayerID, creds.PlayerToken)
	if err != nil {
		return Summary{}, s.fail(ctx, apperrors.CodeTokenDerivation, "token derivation failed", err)
	}

	rec, err := s.store.Fetch(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementOutcome("not_linked")
			s.emit(notify.LevelFailure, "sync rejected for token "+token+": account not linked")
			return Summary{}, apperrors.New(apperrors.CodeNotLinked,
				"Failed at retrieving existing data, you may not have your account linked yet")
		}
		return Summary{}, s.fail(ctx, apperrors.CodeStore, "progression fetch failed", err)
	}

	if s.locker != nil {
		release, err := s.locker.Acquire(ctx, token)
		if err != nil {
			return Summary{}, s.fail(ctx, apperrors.CodeInternal, "identity lock not acquired", err)
		}
		defer release()
	}

	rec, err = s.store.Write(ctx, token, upd)
	if err != nil {
		return Summary{}, s.fail(ctx, apperrors.CodeStore, "progression write failed", err)
	}

	res := badges.Resolve(rec)
	result, err := s.reconciler.Reconcile(ctx, rec.MemberID, res)
	if err != nil {
		return Summary{}, s.fail(ctx, apperrors.CodeMembership, "badge reconciliation failed", err)
	}

	for _, track := range badges.TrackOrder {
		s.metrics.IncrementBadgesGained(string(track), countGained(res.Tracks(track), result.NewlyGained))
	}
	s.metrics.IncrementOutcome("success")

	summary := Summary{Message: msgNothingGained, NewlyGained: result.NewlyGained}
	if len(result.NewlyGained) > 0 {
		summary.Message = msgGainedPrefix + strings.Join(result.NewlyGained, ", ")
	}

	s.logger.InfoContext(ctx, "sync complete",
		"request_id", requestcontext.RequestID(ctx),
		"member_id", rec.MemberID,
		"badges_applied", len(result.Target),
		"badges_gained", len(result.NewlyGained),
	)
	s.emit(notify.LevelInfo, successLine(rec.MemberID, result.NewlyGained))

	return summary, nil
}

// fail records an internal failure and returns the coded error the caller
// sees. The code classifies which collaborator broke; the caller-visible
// message stays opaque, and the underlying detail goes to the log and the
// notifier only.
func (s *Service) fail(ctx context.Context, code apperrors.Code, what string, err error) error {
	s.metrics.IncrementOutcome("error")
	s.logger.ErrorContext(ctx, what,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	s.emit(notify.LevelFailure, fmt.Sprintf("%s: %v", what, err))
	return apperrors.Wrap(code, "sync failed", err)
}

func (s *Service) emit(level notify.Level, message string) {
	if s.notifier == nil {
		return
	}
	if !s.notifier.Emit(notify.Event{Level: level, Message: message}) {
		s.logger.Warn("operational log line dropped", "level", string(level))
	}
}

func successLine(memberID string, gained []string) string {
	if len(gained) == 0 {
		return fmt.Sprintf("user with ID %s had a successful request but gained no roles", memberID)
	}
	return fmt.Sprintf("user with ID %s gained the following roles: %s", memberID, strings.Join(gained, ", "))
}

// countGained counts how many of a track's resolved badges show up in the
// gained-name list.
func countGained(ids []badges.ID, gainedNames []string) int {
	if len(ids) == 0 || len(gainedNames) == 0 {
		return 0
	}
	gained := make(map[string]struct{}, len(gainedNames))
	for _, name := range gainedNames {
		gained[name] = struct{}{}
	}
	n := 0
	for _, id := range ids {
		if _, ok := gained[badges.Name(id)]; ok {
			n++
		}
	}
	return n
}
