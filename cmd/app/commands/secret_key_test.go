package commands

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runKeygen(t *testing.T) string {
	t.Helper()

	var out bytes.Buffer
	err := RunCreateSecretKey(IOTuple{Writer: &out})
	require.NoError(t, err)
	return out.String()
}

func TestRunCreateSecretKey(t *testing.T) {
	t.Run("Success_Produces32ByteHexKey", func(t *testing.T) {
		output := runKeygen(t)

		require.True(t, strings.HasPrefix(output, "SECRET_KEY="))
		keyHex := strings.TrimSpace(strings.TrimPrefix(output, "SECRET_KEY="))

		key, err := hex.DecodeString(keyHex)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("Success_KeysAreUnique", func(t *testing.T) {
		assert.NotEqual(t, runKeygen(t), runKeygen(t))
	})
}
