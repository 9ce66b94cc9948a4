// Package membership talks to the external service that owns the badge
// (role) state for each member. The service exposes no partial update: the
// role list is read whole and replaced whole.
package membership

import (
	"context"

	"rolesync/internal/badges"
)

// Client is the minimal surface the reconciler needs.
//
// Badges returns the member's current badge set. ReplaceBadges overwrites
// the member's entire badge list with exactly the given set; any badge the
// member held that is not in it is removed. Both return
// sentinel.ErrUnknownMember when the identity is not a member of the
// community, distinct from transient failures.
type Client interface {
	Badges(ctx context.Context, memberID string) ([]badges.ID, error)
	ReplaceBadges(ctx context.Context, memberID string, ids []badges.ID) error
}
