package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSecret() EncryptedSecret {
	return EncryptedSecret{
		IV:      strings.Repeat("ab", IVSize),
		Content: "deadbeef",
		Tag:     strings.Repeat("cd", TagSize),
	}
}

func TestEncryptedSecret_Validate(t *testing.T) {
	t.Run("Success_ValidSecret", func(t *testing.T) {
		assert.NoError(t, validSecret().Validate())
	})

	t.Run("Success_EmptyContent", func(t *testing.T) {
		secret := validSecret()
		secret.Content = ""
		assert.NoError(t, secret.Validate())
	})

	t.Run("Error_IVNotHex", func(t *testing.T) {
		secret := validSecret()
		secret.IV = strings.Repeat("zz", IVSize)
		assert.ErrorIs(t, secret.Validate(), ErrMalformedSecret)
	})

	t.Run("Error_IVWrongLength", func(t *testing.T) {
		secret := validSecret()
		secret.IV = "abcd"
		assert.ErrorIs(t, secret.Validate(), ErrMalformedSecret)
	})

	t.Run("Error_TagWrongLength", func(t *testing.T) {
		secret := validSecret()
		secret.Tag = strings.Repeat("cd", TagSize-1)
		assert.ErrorIs(t, secret.Validate(), ErrMalformedSecret)
	})

	t.Run("Error_ContentOddLength", func(t *testing.T) {
		secret := validSecret()
		secret.Content = "abc"
		assert.ErrorIs(t, secret.Validate(), ErrMalformedSecret)
	})
}

func TestEncryptedSecret_Decode(t *testing.T) {
	t.Run("Success_DecodesAllFields", func(t *testing.T) {
		iv, content, tag, err := validSecret().Decode()
		require.NoError(t, err)
		assert.Len(t, iv, IVSize)
		assert.Len(t, content, 4)
		assert.Len(t, tag, TagSize)
	})

	t.Run("Error_MalformedSecret", func(t *testing.T) {
		secret := validSecret()
		secret.Tag = "bogus"
		_, _, _, err := secret.Decode()
		assert.ErrorIs(t, err, ErrMalformedSecret)
	})
}
