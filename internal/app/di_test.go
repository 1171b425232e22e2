package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/admin-api/internal/config"
)

// 32 zero bytes in hex.
const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       4000,
		LogLevel:         "error",
		SecretKeyHex:     testKeyHex,
		JWTSecret:        "di-test-secret",
		MetricsNamespace: "clinic",
	}
}

func TestContainer_Logger(t *testing.T) {
	container := NewContainer(testConfig())

	logger := container.Logger()
	require.NotNil(t, logger)

	// Same instance on repeated access.
	assert.Same(t, logger, container.Logger())
}

func TestContainer_PasswordCipher(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		container := NewContainer(testConfig())

		cipher, err := container.PasswordCipher()
		require.NoError(t, err)
		require.NotNil(t, cipher)

		secret, err := cipher.Encrypt("hunter2")
		require.NoError(t, err)
		plaintext, err := cipher.Decrypt(secret)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", plaintext)
	})

	t.Run("Error_BadKey", func(t *testing.T) {
		cfg := testConfig()
		cfg.SecretKeyHex = "not-hex"
		container := NewContainer(cfg)

		_, err := container.PasswordCipher()
		assert.Error(t, err)

		// The init error is sticky.
		_, err = container.PasswordCipher()
		assert.Error(t, err)
	})
}

func TestContainer_TokenService(t *testing.T) {
	container := NewContainer(testConfig())

	tokenService := container.TokenService()
	require.NotNil(t, tokenService)

	token, err := tokenService.Issue("64f1b2a3c4d5e6f7a8b9c0d1", "admin42")
	require.NoError(t, err)

	claims, err := tokenService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin42", claims.UserID)
}

func TestContainer_BusinessMetrics(t *testing.T) {
	t.Run("NoOpWhenDisabled", func(t *testing.T) {
		container := NewContainer(testConfig())

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})

	t.Run("RealProviderWhenEnabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestContainer_MetricsServer(t *testing.T) {
	t.Run("NilWhenDisabled", func(t *testing.T) {
		container := NewContainer(testConfig())

		server, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, server)
	})

	t.Run("BuiltWhenEnabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		cfg.MetricsPort = 4001
		container := NewContainer(cfg)

		server, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, server)
		assert.NotNil(t, server.GetHandler())
	})
}
