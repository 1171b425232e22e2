// Package service implements AES-256-GCM encryption for stored credentials.
package service

import (
	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
)

// PasswordCipher defines the interface for protecting a single secret string
// at rest. Implementations must produce a fresh IV per Encrypt call and must
// fail closed on Decrypt when the authentication tag does not verify.
type PasswordCipher interface {
	// Encrypt encrypts plaintext and returns the three-part hex bundle.
	Encrypt(plaintext string) (cryptoDomain.EncryptedSecret, error)

	// Decrypt performs authenticated decryption of the bundle.
	// Returns ErrMalformedSecret for structurally invalid input and
	// ErrDecryptionFailed when tag verification fails.
	Decrypt(secret cryptoDomain.EncryptedSecret) (string, error)
}
