// Package reconcile diffs the badges a member qualifies for against the
// badges they hold and applies the result to the membership service.
package reconcile

import (
	"context"
	"fmt"

	"rolesync/internal/badges"
	"rolesync/internal/membership"
)

// Result is the outcome of one reconciliation pass.
//
// Target is the badge set that was applied. NewlyGained holds the
// human-readable names of computed badges the member did not already hold,
// in track-evaluation order.
type Result struct {
	Target      []badges.ID
	NewlyGained []string
}

// Reconciler synchronizes one member's badge set with their resolved tiers.
type Reconciler struct {
	client    membership.Client
	allowlist map[badges.ID]struct{}
}

// New builds a reconciler. A nil allowlist falls back to the fixed
// persistent badge table.
func New(client membership.Client, allowlist map[badges.ID]struct{}) *Reconciler {
	if allowlist == nil {
		allowlist = badges.PersistentAllowlist
	}
	return &Reconciler{client: client, allowlist: allowlist}
}

// Reconcile computes and applies the target badge set.
//
// The write is a full replacement of the member's role list, not an
// additive patch: any badge the member held that is neither on the
// persistent allow-list nor computed this pass is removed. The external
// service exposes no partial-update primitive, and this destructive-replace
// semantics is intentional.
//
// The read failing is fatal; nothing is partially applied.
func (r *Reconciler) Reconcile(ctx context.Context, memberID string, res badges.Resolution) (Result, error) {
	current, err := r.client.Badges(ctx, memberID)
	if err != nil {
		return Result{}, fmt.Errorf("fetch current badges: %w", err)
	}
	held := make(map[badges.ID]struct{}, len(current))
	for _, id := range current {
		held[id] = struct{}{}
	}

	// Badges outside the computed tracks survive only via the allow-list.
	var target []badges.ID
	for _, id := range current {
		if _, ok := r.allowlist[id]; ok {
			target = append(target, id)
		}
	}

	var gained []string
	for _, track := range badges.TrackOrder {
		for _, id := range res.Tracks(track) {
			target = append(target, id)
			if _, ok := held[id]; !ok {
				gained = append(gained, badges.Name(id))
			}
		}
	}

	if err := r.client.ReplaceBadges(ctx, memberID, target); err != nil {
		return Result{}, fmt.Errorf("replace badges: %w", err)
	}
	return Result{Target: target, NewlyGained: gained}, nil
}
