package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	authService "github.com/clinicops/admin-api/internal/auth/service"
)

// recordingMetrics captures recorded operations for assertions.
type recordingMetrics struct {
	operations []string
	statuses   []string
}

func (r *recordingMetrics) RecordOperation(_ context.Context, domain, operation, status string) {
	r.operations = append(r.operations, domain+"."+operation)
	r.statuses = append(r.statuses, status)
}

func (r *recordingMetrics) RecordDuration(
	_ context.Context,
	domain, operation string,
	_ time.Duration,
	status string,
) {
}

func TestUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	cipher := newTestCipher(t)
	tokenService := authService.NewTokenService(testSigningSecret)
	store := newMemoryCredentialStore()

	recorder := &recordingMetrics{}
	uc := NewUseCaseWithMetrics(NewAuthUseCase(store, cipher, tokenService), "admin", recorder)

	t.Run("Success_RegisterRecorded", func(t *testing.T) {
		_, err := uc.RegisterOrReactivate(ctx, "admin1", "hunter2")
		require.NoError(t, err)
		assert.Contains(t, recorder.operations, "admin.register")
		assert.Equal(t, "success", recorder.statuses[len(recorder.statuses)-1])
	})

	t.Run("Error_FailedAuthenticateRecordedAsError", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, "admin1", "wrong")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Contains(t, recorder.operations, "admin.authenticate")
		assert.Equal(t, "error", recorder.statuses[len(recorder.statuses)-1])
	})

	t.Run("Success_DeactivateRecorded", func(t *testing.T) {
		require.NoError(t, uc.Deactivate(ctx, "admin1"))
		assert.Contains(t, recorder.operations, "admin.deactivate")
	})
}
