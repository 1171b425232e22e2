// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
)

// UseCase defines the authentication operations exposed to the HTTP layer.
// The implementation is generic over a CredentialStore, so the same logic
// serves administrators (keyed by user id) and doctors (keyed by email).
type UseCase interface {
	// Authenticate resolves the identity, decrypts the stored secret,
	// compares it to the supplied password, and issues a signed one-hour
	// session token on success.
	Authenticate(ctx context.Context, key, password string) (string, error)

	// RegisterOrReactivate creates a new active identity with an encrypted
	// password. When a soft-deleted record holds the key, it resurrects the
	// record with a freshly encrypted password instead. An active identity
	// with the same key is a conflict.
	RegisterOrReactivate(ctx context.Context, key, password string) (*authDomain.Identity, error)

	// Deactivate soft-deletes an active identity so it can no longer
	// authenticate.
	Deactivate(ctx context.Context, key string) error
}

// CredentialStore is the persistence contract the authentication logic relies
// on. Implementations map an identity key plus the soft-delete flag to stored
// records; the exact filtering semantics matter because soft-deleted
// identities must never authenticate.
type CredentialStore interface {
	// FindActiveByKey looks up a record by key filtered to non-deleted.
	// Returns ErrIdentityNotFound when absent.
	FindActiveByKey(ctx context.Context, key string) (*authDomain.Identity, error)

	// FindAnyByKey looks up a record by key ignoring the soft-delete flag.
	// Needed by the reactivation flow. Returns ErrIdentityNotFound when absent.
	FindAnyByKey(ctx context.Context, key string) (*authDomain.Identity, error)

	// CreateIdentity inserts a new active record.
	CreateIdentity(ctx context.Context, identity *authDomain.Identity) error

	// Reactivate persists a reactivated identity (flag cleared, secret
	// replaced) as a single atomic write.
	Reactivate(ctx context.Context, identity *authDomain.Identity) error

	// MarkDeleted sets the soft-delete flag on the record.
	MarkDeleted(ctx context.Context, identity *authDomain.Identity) error
}
