// Package usecase implements business logic for doctor management.
package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/doctor/domain"
)

// DoctorRepository defines the persistence operations for doctors.
type DoctorRepository interface {
	List(ctx context.Context) ([]*domain.Doctor, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Doctor, error)
	GetByName(ctx context.Context, name string) (*domain.Doctor, error)
	GetByEmailAny(ctx context.Context, email string) (*domain.Doctor, error)
	Create(ctx context.Context, doctor *domain.Doctor) error
	Replace(ctx context.Context, doctor *domain.Doctor) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update domain.Update) error
	UpdateByName(ctx context.Context, name string, update domain.Update) error
	SoftDeleteByID(ctx context.Context, id primitive.ObjectID) error
	SoftDeleteByName(ctx context.Context, name string) error
}

// CreateInput carries the fields for registering a doctor.
type CreateInput struct {
	Name       string
	Specialty  []string
	Email      string
	Degree     string
	Experience string
	Password   string
}

// UpdateInput carries the fields for updating a doctor. Password is optional;
// when present it is re-encrypted before storage.
type UpdateInput struct {
	Name       string
	Specialty  []string
	Email      string
	Degree     string
	Experience string
	Password   string
}

// UseCase defines the doctor operations exposed to the HTTP layer.
type UseCase interface {
	List(ctx context.Context) ([]*domain.Doctor, error)
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	GetByName(ctx context.Context, name string) (*domain.Doctor, error)

	// Create registers a doctor with an encrypted password. An email
	// collision with a soft-deleted doctor revives that record, overwriting
	// every attribute; a collision with an active doctor is a conflict.
	Create(ctx context.Context, input CreateInput) (*domain.Doctor, error)

	UpdateByID(ctx context.Context, id string, input UpdateInput) error
	UpdateByName(ctx context.Context, name string, input UpdateInput) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByName(ctx context.Context, name string) error
}
