package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RunCreateSecretKey generates a cryptographically secure 32-byte key and
// prints it hex-encoded, ready for the SECRET_KEY environment variable.
func RunCreateSecretKey(io IOTuple) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	fmt.Fprintf(io.Writer, "SECRET_KEY=%s\n", hex.EncodeToString(key))
	return nil
}
