package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/specialization/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

type specializationUseCase struct {
	repository SpecializationRepository
}

// NewSpecializationUseCase creates the specialization use case.
func NewSpecializationUseCase(repository SpecializationRepository) UseCase {
	return &specializationUseCase{repository: repository}
}

func (u *specializationUseCase) List(ctx context.Context) ([]*domain.Specialization, error) {
	return u.repository.List(ctx)
}

func (u *specializationUseCase) Create(ctx context.Context, name string) (*domain.Specialization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "name is required")
	}

	specialization := &domain.Specialization{Name: name}
	if err := u.repository.Create(ctx, specialization); err != nil {
		return nil, err
	}
	return specialization, nil
}

func (u *specializationUseCase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "invalid specialization id")
	}
	return u.repository.Delete(ctx, oid)
}
