// Package sentinel defines sentinel errors shared across store and
// membership adapters.
package sentinel

import "errors"

var (
	// ErrNotFound means no record exists for the given key.
	ErrNotFound = errors.New("not found")

	// ErrUnknownMember means the membership service has no member with the
	// given identifier.
	ErrUnknownMember = errors.New("unknown member")
)
