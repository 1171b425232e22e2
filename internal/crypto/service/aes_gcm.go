package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
)

// AESGCMPasswordCipher implements PasswordCipher using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// GCM is used instead of an unauthenticated mode because the decrypted value
// is compared byte-for-byte against user input during authentication: a
// tampered stored record must be detected and rejected, never silently
// decrypted to garbage.
//
// Wire format:
//   - 16-byte IV, randomly generated per encryption (never reused; nonce
//     reuse under GCM breaks both confidentiality and authenticity)
//   - variable-length ciphertext
//   - 16-byte authentication tag, carried detached from the ciphertext
//
// All three parts are stored as separate lowercase hex strings, matching the
// persisted field layout the database round-trips.
//
// Thread safety: the cipher instance is stateless after construction and safe
// for concurrent use from multiple goroutines.
type AESGCMPasswordCipher struct {
	aead cipher.AEAD
}

// NewAESGCMPasswordCipher creates a new cipher from a hex-encoded key.
//
// The key must decode to exactly 32 bytes (256 bits); anything else is a
// construction error so a misconfigured process refuses to start. The GCM
// instance is configured with a 16-byte nonce size to match the stored IV
// layout.
func NewAESGCMPasswordCipher(hexKey string) (*AESGCMPasswordCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key encoding: %w", err)
	}

	if len(key) != 32 {
		return nil, errors.New("encryption key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMPasswordCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext under a fresh random 16-byte IV and returns the
// IV, ciphertext, and 16-byte authentication tag as lowercase hex strings.
// Encrypting the same plaintext twice yields different bundles.
func (c *AESGCMPasswordCipher) Encrypt(plaintext string) (cryptoDomain.EncryptedSecret, error) {
	iv := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return cryptoDomain.EncryptedSecret{}, fmt.Errorf("failed to generate iv: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it back out so the tag
	// is stored as its own field.
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	boundary := len(sealed) - cryptoDomain.TagSize

	return cryptoDomain.EncryptedSecret{
		IV:      hex.EncodeToString(iv),
		Content: hex.EncodeToString(sealed[:boundary]),
		Tag:     hex.EncodeToString(sealed[boundary:]),
	}, nil
}

// Decrypt reconstructs the sealed message from the bundle and performs
// authenticated decryption. Tag verification happens before any plaintext is
// returned; a single corrupted byte in any field fails the whole operation.
func (c *AESGCMPasswordCipher) Decrypt(secret cryptoDomain.EncryptedSecret) (string, error) {
	iv, content, tag, err := secret.Decode()
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(content)+len(tag))
	sealed = append(sealed, content...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
