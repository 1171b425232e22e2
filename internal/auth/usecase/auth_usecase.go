package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	authService "github.com/clinicops/admin-api/internal/auth/service"
	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
	cryptoService "github.com/clinicops/admin-api/internal/crypto/service"
)

// authUseCase implements UseCase over a CredentialStore, a PasswordCipher,
// and a TokenService. It holds no mutable state: every call is independent
// and safe for concurrent use.
type authUseCase struct {
	store        CredentialStore
	cipher       cryptoService.PasswordCipher
	tokenService authService.TokenService
}

// NewAuthUseCase creates a new authentication use case.
func NewAuthUseCase(
	store CredentialStore,
	cipher cryptoService.PasswordCipher,
	tokenService authService.TokenService,
) UseCase {
	return &authUseCase{
		store:        store,
		cipher:       cipher,
		tokenService: tokenService,
	}
}

// Authenticate validates credentials and issues a session token.
//
// Security notes:
//   - Unknown keys, soft-deleted identities, corrupted stored secrets, and
//     wrong passwords all return ErrInvalidCredentials so the caller cannot
//     distinguish them (user-enumeration hardening).
//   - The password comparison is constant-time to avoid leaking prefix
//     length through timing.
//   - Authentication never mutates the record, so cancellation mid-call can
//     not leave partial state behind.
func (u *authUseCase) Authenticate(ctx context.Context, key, password string) (string, error) {
	if key == "" || password == "" {
		return "", authDomain.ErrMissingCredentials
	}

	identity, err := u.store.FindActiveByKey(ctx, key)
	if err != nil {
		if errors.Is(err, authDomain.ErrIdentityNotFound) {
			return "", authDomain.ErrInvalidCredentials
		}
		return "", err
	}

	decrypted, err := u.cipher.Decrypt(identity.Secret)
	if err != nil {
		return "", translateCipherError(err)
	}

	if subtle.ConstantTimeCompare([]byte(decrypted), []byte(password)) != 1 {
		return "", authDomain.ErrInvalidCredentials
	}

	token, err := u.tokenService.Issue(identity.ID, identity.Key)
	if err != nil {
		return "", err
	}

	return token, nil
}

// RegisterOrReactivate creates or resurrects an identity.
//
// The lookup deliberately includes soft-deleted records: a deleted identity
// still reserves its unique key, so re-registration overwrites it in place
// (merge-on-revive) instead of colliding on insert. An active identity with
// the same key is a conflict and is never overwritten.
func (u *authUseCase) RegisterOrReactivate(
	ctx context.Context,
	key, password string,
) (*authDomain.Identity, error) {
	if key == "" || password == "" {
		return nil, authDomain.ErrMissingCredentials
	}

	secret, err := u.cipher.Encrypt(password)
	if err != nil {
		return nil, err
	}

	existing, err := u.store.FindAnyByKey(ctx, key)
	switch {
	case err == nil:
		if existing.State() == authDomain.StateActive {
			return nil, authDomain.ErrIdentityExists
		}

		existing.Reactivate(secret)
		if err := u.store.Reactivate(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, authDomain.ErrIdentityNotFound):
		identity := &authDomain.Identity{Key: key, Secret: secret}
		if err := u.store.CreateIdentity(ctx, identity); err != nil {
			return nil, err
		}
		return identity, nil

	default:
		return nil, err
	}
}

// Deactivate soft-deletes an active identity.
func (u *authUseCase) Deactivate(ctx context.Context, key string) error {
	if key == "" {
		return authDomain.ErrMissingCredentials
	}

	identity, err := u.store.FindActiveByKey(ctx, key)
	if err != nil {
		return err
	}

	return u.store.MarkDeleted(ctx, identity)
}

// translateCipherError is the single point where cipher-layer faults collapse
// into the public error taxonomy. A corrupted stored record must not be
// distinguishable from a wrong password, and "decryption failed" must never
// leak to a caller.
func translateCipherError(err error) error {
	if errors.Is(err, cryptoDomain.ErrMalformedSecret) || errors.Is(err, cryptoDomain.ErrDecryptionFailed) {
		return authDomain.ErrInvalidCredentials
	}
	return err
}
