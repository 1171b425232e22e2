// Package usecase implements business logic for facility management.
package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/facility/domain"
)

// FacilityRepository defines the persistence operations for facilities.
type FacilityRepository interface {
	List(ctx context.Context) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Facility, error)
	GetByName(ctx context.Context, name string) (*domain.Facility, error)
	Create(ctx context.Context, facility *domain.Facility) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, facility *domain.Facility) error
	UpdateByName(ctx context.Context, name string, facility *domain.Facility) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByName(ctx context.Context, name string) error
}

// FacilityInput carries the writable facility fields.
type FacilityInput struct {
	Name  string
	Rooms []domain.Room
}

// UseCase defines the facility operations exposed to the HTTP layer.
type UseCase interface {
	List(ctx context.Context) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	GetByName(ctx context.Context, name string) (*domain.Facility, error)
	Create(ctx context.Context, input FacilityInput) (*domain.Facility, error)
	UpdateByID(ctx context.Context, id string, input FacilityInput) (*domain.Facility, error)
	UpdateByName(ctx context.Context, name string, input FacilityInput) (*domain.Facility, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByName(ctx context.Context, name string) error
}
