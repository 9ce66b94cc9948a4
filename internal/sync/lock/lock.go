// Package lock serializes concurrent syncs for the same identity token.
// Two requests for the same player racing through read-modify-write and
// role replacement would otherwise interleave; a short-lived lock keeps
// them ordered without blocking unrelated players.
package lock

import (
	"context"
	"errors"
)

// ErrBusy means another sync for the same identity is in flight.
var ErrBusy = errors.New("lock: identity busy")

// Locker acquires a per-key lock. Acquire returns a release func on
// success and ErrBusy when the key is already held.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
