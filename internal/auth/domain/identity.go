// Package domain defines the core authentication entities and errors.
package domain

import (
	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
	"github.com/clinicops/admin-api/internal/errors"
)

// State is the lifecycle state of an identity record.
type State string

const (
	// StateActive means the identity can authenticate.
	StateActive State = "active"
	// StateDeleted means the identity is soft-deleted: it stays in storage
	// (so its key remains reserved) but must never authenticate.
	StateDeleted State = "deleted"
)

// Identity represents an authenticatable principal: an administrator keyed by
// user id or a doctor keyed by email. The stored secret is always an
// AES-256-GCM bundle, never plaintext.
type Identity struct {
	// ID is the storage identifier (hex object id).
	ID string
	// Key is the unique identity key used for lookup.
	Key string
	// Secret is the encrypted password bundle.
	Secret cryptoDomain.EncryptedSecret
	// Deleted is the soft-delete flag.
	Deleted bool
}

// State returns the tagged lifecycle state derived from the soft-delete flag.
func (i *Identity) State() State {
	if i.Deleted {
		return StateDeleted
	}
	return StateActive
}

// Reactivate transitions a soft-deleted identity back to active, replacing
// its secret entirely. Re-registration over a deleted identity resurrects it
// with new data rather than creating a tombstone-colliding duplicate; the old
// secret must not survive the transition.
func (i *Identity) Reactivate(secret cryptoDomain.EncryptedSecret) {
	i.Secret = secret
	i.Deleted = false
}

// Domain-specific errors for authentication operations.
var (
	// ErrMissingCredentials indicates the identity key or password was empty.
	ErrMissingCredentials = errors.Wrap(errors.ErrInvalidInput, "user id and password are required")

	// ErrInvalidCredentials is the single undifferentiated authentication
	// failure: unknown identity, soft-deleted identity, wrong password, and
	// corrupted stored secrets all surface as this error so callers cannot
	// probe which identities exist.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrIdentityExists indicates a registration conflict with an active identity.
	ErrIdentityExists = errors.Wrap(errors.ErrConflict, "identity already exists")

	// ErrIdentityNotFound indicates no identity record matches the key.
	ErrIdentityNotFound = errors.Wrap(errors.ErrNotFound, "identity not found")

	// ErrUnauthenticated indicates a missing, malformed, expired, or
	// badly-signed session token.
	ErrUnauthenticated = errors.Wrap(errors.ErrUnauthorized, "invalid or expired session token")
)
