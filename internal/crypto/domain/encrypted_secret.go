// Package domain defines the value objects for the password encryption layer.
package domain

import (
	"encoding/hex"
	"errors"
)

const (
	// IVSize is the initialization vector length in bytes. GCM normally uses
	// a 12-byte nonce but the stored records carry 16-byte IVs, so the cipher
	// is configured to match.
	IVSize = 16

	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// Cipher-layer errors. These never reach an HTTP response directly: the
// authentication use case collapses both into a generic credentials failure.
var (
	// ErrMalformedSecret indicates a field is not valid hex or has the wrong
	// decoded length. Raised before any decryption is attempted.
	ErrMalformedSecret = errors.New("malformed encrypted secret")

	// ErrDecryptionFailed indicates the authentication tag did not verify:
	// the ciphertext was tampered with, a field is corrupted, or the key is
	// wrong. No plaintext is ever returned in this case.
	ErrDecryptionFailed = errors.New("decryption failed: authentication tag mismatch")
)

// EncryptedSecret is one AES-256-GCM protected secret as it round-trips
// through the database: three separate lowercase hex strings, never a single
// concatenated blob.
type EncryptedSecret struct {
	IV      string `bson:"iv" json:"iv"`
	Content string `bson:"content" json:"content"`
	Tag     string `bson:"tag" json:"tag"`
}

// Validate checks the structural invariants: IV decodes to exactly 16 bytes,
// Tag decodes to exactly 16 bytes, and Content is valid hex.
func (s EncryptedSecret) Validate() error {
	iv, err := hex.DecodeString(s.IV)
	if err != nil || len(iv) != IVSize {
		return ErrMalformedSecret
	}

	tag, err := hex.DecodeString(s.Tag)
	if err != nil || len(tag) != TagSize {
		return ErrMalformedSecret
	}

	if _, err := hex.DecodeString(s.Content); err != nil {
		return ErrMalformedSecret
	}

	return nil
}

// Decode returns the raw IV, ciphertext, and tag bytes. It validates first,
// so callers can rely on the length invariants of the returned slices.
func (s EncryptedSecret) Decode() (iv, content, tag []byte, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, nil, err
	}

	iv, _ = hex.DecodeString(s.IV)
	content, _ = hex.DecodeString(s.Content)
	tag, _ = hex.DecodeString(s.Tag)
	return iv, content, tag, nil
}
