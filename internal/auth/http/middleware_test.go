package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/clinicops/admin-api/internal/auth/service"
)

func setupProtectedRouter(t *testing.T, tokenService authService.TokenService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(SessionMiddleware(tokenService, logger))
	router.GET("/protected", func(c *gin.Context) {
		claims, ok := GetSession(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router
}

func TestSessionMiddleware(t *testing.T) {
	tokenService := authService.NewTokenService("middleware-test-secret")

	t.Run("Success_ValidToken", func(t *testing.T) {
		router := setupProtectedRouter(t, tokenService)

		token, err := tokenService.Issue("64f1b2a3c4d5e6f7a8b9c0d1", "admin42")
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "admin42")
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		router := setupProtectedRouter(t, tokenService)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Error_MalformedHeader", func(t *testing.T) {
		router := setupProtectedRouter(t, tokenService)

		for _, header := range []string{"Bearer", "Bearer ", "Token abc", "abc"} {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
		}
	})

	t.Run("Error_TokenSignedWithOtherSecret", func(t *testing.T) {
		router := setupProtectedRouter(t, tokenService)

		otherService := authService.NewTokenService("some-other-secret")
		token, err := otherService.Issue("64f1b2a3c4d5e6f7a8b9c0d1", "admin42")
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Error_GarbageToken", func(t *testing.T) {
		router := setupProtectedRouter(t, tokenService)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
