// Package usecase implements business logic for specialization management.
package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/specialization/domain"
)

// SpecializationRepository defines the persistence operations for specializations.
type SpecializationRepository interface {
	List(ctx context.Context) ([]*domain.Specialization, error)
	Create(ctx context.Context, specialization *domain.Specialization) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UseCase defines the specialization operations exposed to the HTTP layer.
type UseCase interface {
	List(ctx context.Context) ([]*domain.Specialization, error)
	Create(ctx context.Context, name string) (*domain.Specialization, error)
	Delete(ctx context.Context, id string) error
}
