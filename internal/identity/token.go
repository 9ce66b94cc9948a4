// Package identity derives the opaque token that keys progression records.
//
// The token is the only link between a caller's real-world identifiers and
// the persisted record; the raw identifiers are never stored. Derivation is
// a keyed MAC, so distinct credential pairs cannot practically collide and
// the mapping cannot be reversed without the server secret.
package identity

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"

	"rolesync/pkg/apperrors"
)

// DeriveToken computes the identity token for the given credential parts.
// Each part is fed into an HMAC-SHA1 keyed by the server secret, in order,
// and the digest is rendered as 40 lowercase hex characters.
//
// Deterministic and pure: identical inputs always yield the identical token.
// Fails only when the secret is empty; never on part content.
func DeriveToken(secret []byte, parts ...string) (string, error) {
	if len(secret) == 0 {
		return "", apperrors.New(apperrors.CodeTokenDerivation, "userdata secret is not configured")
	}
	mac := hmac.New(sha1.New, secret)
	for _, part := range parts {
		mac.Write([]byte(part))
	}
	return hex.EncodeToString(mac.Sum(nil)), nil
}
