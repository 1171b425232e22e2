package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	"github.com/clinicops/admin-api/internal/errors"
)

func performError(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleErrorGin(c, err, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleErrorGin(t *testing.T) {
	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		code, body := performError(t, authDomain.ErrInvalidCredentials)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "invalid_credentials", body.Error)
		assert.Equal(t, "Invalid credentials", body.Message)
	})

	t.Run("Error_InvalidInput", func(t *testing.T) {
		code, body := performError(t, errors.Wrap(errors.ErrInvalidInput, "name is required"))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid_input", body.Error)
		assert.Equal(t, "name is required: invalid input", body.Message)
	})

	t.Run("Error_Conflict", func(t *testing.T) {
		code, body := performError(t, errors.Wrap(errors.ErrConflict, "facility already exists"))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "already_exists", body.Error)
		assert.Equal(t, "The resource already exists", body.Message)
	})

	t.Run("Error_Unauthorized", func(t *testing.T) {
		code, body := performError(t, authDomain.ErrUnauthenticated)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "unauthorized", body.Error)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		code, body := performError(t, errors.Wrap(errors.ErrNotFound, "doctor not found"))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not_found", body.Error)
		assert.Equal(t, "The resource was not found", body.Message)
	})

	t.Run("Error_Internal", func(t *testing.T) {
		code, body := performError(t, errors.New("database connection lost"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal_server_error", body.Error)
		assert.NotContains(t, body.Message, "database")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleBadRequestGin(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "invalid_request_body", body.Error)
}
