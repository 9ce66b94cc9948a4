// Package store persists progression records keyed by identity token.
//
// Stores are interface-driven so the orchestrator can run against the
// in-memory implementation in tests and PostgreSQL in production without
// rewiring business code.
package store

import (
	"context"

	"rolesync/internal/progression/models"
)

// Store is the progression record adapter.
//
// Fetch returns sentinel.ErrNotFound when no record exists for the token;
// callers surface that as a distinct "not linked" failure. Write upserts the
// named fields, stamps LastModified from the request-scoped clock, and
// returns the full post-write record so no second read is needed.
type Store interface {
	Fetch(ctx context.Context, token string) (*models.Record, error)
	Write(ctx context.Context, token string, upd models.Update) (*models.Record, error)
}
