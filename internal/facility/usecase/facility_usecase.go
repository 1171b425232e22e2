package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/facility/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

type facilityUseCase struct {
	repository FacilityRepository
}

// NewFacilityUseCase creates the facility use case.
func NewFacilityUseCase(repository FacilityRepository) UseCase {
	return &facilityUseCase{repository: repository}
}

func (u *facilityUseCase) List(ctx context.Context) ([]*domain.Facility, error) {
	return u.repository.List(ctx)
}

func (u *facilityUseCase) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return u.repository.GetByID(ctx, oid)
}

func (u *facilityUseCase) GetByName(ctx context.Context, name string) (*domain.Facility, error) {
	return u.repository.GetByName(ctx, name)
}

func (u *facilityUseCase) Create(ctx context.Context, input FacilityInput) (*domain.Facility, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	facility := &domain.Facility{Name: input.Name, Rooms: input.Rooms}
	if err := u.repository.Create(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (u *facilityUseCase) UpdateByID(ctx context.Context, id string, input FacilityInput) (*domain.Facility, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	facility := &domain.Facility{ID: oid, Name: input.Name, Rooms: input.Rooms}
	if err := u.repository.UpdateByID(ctx, oid, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (u *facilityUseCase) UpdateByName(ctx context.Context, name string, input FacilityInput) (*domain.Facility, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	facility := &domain.Facility{Name: input.Name, Rooms: input.Rooms}
	if err := u.repository.UpdateByName(ctx, name, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (u *facilityUseCase) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return u.repository.DeleteByID(ctx, oid)
}

func (u *facilityUseCase) DeleteByName(ctx context.Context, name string) error {
	return u.repository.DeleteByName(ctx, name)
}

func validateInput(input FacilityInput) error {
	if input.Name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "name is required")
	}
	if len(input.Rooms) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "at least one room is required")
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid facility id")
	}
	return oid, nil
}
