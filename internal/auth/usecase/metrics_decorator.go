package usecase

import (
	"context"
	"time"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	"github.com/clinicops/admin-api/internal/metrics"
)

// useCaseWithMetrics decorates UseCase with metrics instrumentation.
type useCaseWithMetrics struct {
	next    UseCase
	domain  string
	metrics metrics.BusinessMetrics
}

// NewUseCaseWithMetrics wraps a UseCase with metrics recording. The domain
// label distinguishes the admin and doctor authentication paths.
func NewUseCaseWithMetrics(useCase UseCase, domain string, m metrics.BusinessMetrics) UseCase {
	return &useCaseWithMetrics{
		next:    useCase,
		domain:  domain,
		metrics: m,
	}
}

// Authenticate records metrics for authentication attempts.
func (u *useCaseWithMetrics) Authenticate(ctx context.Context, key, password string) (string, error) {
	start := time.Now()
	token, err := u.next.Authenticate(ctx, key, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, u.domain, "authenticate", status)
	u.metrics.RecordDuration(ctx, u.domain, "authenticate", time.Since(start), status)

	return token, err
}

// RegisterOrReactivate records metrics for registration operations.
func (u *useCaseWithMetrics) RegisterOrReactivate(
	ctx context.Context,
	key, password string,
) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := u.next.RegisterOrReactivate(ctx, key, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, u.domain, "register", status)
	u.metrics.RecordDuration(ctx, u.domain, "register", time.Since(start), status)

	return identity, err
}

// Deactivate records metrics for soft-delete operations.
func (u *useCaseWithMetrics) Deactivate(ctx context.Context, key string) error {
	start := time.Now()
	err := u.next.Deactivate(ctx, key)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, u.domain, "deactivate", status)
	u.metrics.RecordDuration(ctx, u.domain, "deactivate", time.Since(start), status)

	return err
}
