package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("clinic_test")
	require.NoError(t, err)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("clinic_test")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "clinic_test")
	require.NoError(t, err)

	t.Run("Success_RecordedOperationAppearsInExposition", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "admin", "authenticate", "success")
		bm.RecordDuration(context.Background(), "admin", "authenticate", 42*time.Millisecond, "success")

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		provider.Handler().ServeHTTP(recorder, request)

		body, err := io.ReadAll(recorder.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "clinic_test_operations_total")
		assert.Contains(t, string(body), `domain="admin"`)
	})

	t.Run("Success_NoOpDoesNothing", func(t *testing.T) {
		noop := NewNoOpBusinessMetrics()
		noop.RecordOperation(context.Background(), "doctor", "create", "error")
		noop.RecordDuration(context.Background(), "doctor", "create", time.Millisecond, "error")
	})
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("clinic_test")
	require.NoError(t, err)

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "clinic_test"))
	router.GET("/api/facilities/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/facilities/123", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	exposition := httptest.NewRecorder()
	provider.Handler().ServeHTTP(exposition, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(exposition.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "clinic_test_http_requests_total")
	// route pattern, not the raw path, keeps cardinality bounded
	assert.Contains(t, string(body), "/api/facilities/:id")
}
