package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	cryptoService "github.com/clinicops/admin-api/internal/crypto/service"
	"github.com/clinicops/admin-api/internal/doctor/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

type doctorUseCase struct {
	repository DoctorRepository
	cipher     cryptoService.PasswordCipher
}

// NewDoctorUseCase creates the doctor use case.
func NewDoctorUseCase(repository DoctorRepository, cipher cryptoService.PasswordCipher) UseCase {
	return &doctorUseCase{
		repository: repository,
		cipher:     cipher,
	}
}

func (u *doctorUseCase) List(ctx context.Context) ([]*domain.Doctor, error) {
	return u.repository.List(ctx)
}

func (u *doctorUseCase) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return u.repository.GetByID(ctx, oid)
}

func (u *doctorUseCase) GetByName(ctx context.Context, name string) (*domain.Doctor, error) {
	return u.repository.GetByName(ctx, name)
}

func (u *doctorUseCase) Create(ctx context.Context, input CreateInput) (*domain.Doctor, error) {
	secret, err := u.cipher.Encrypt(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt password")
	}

	doctor := &domain.Doctor{
		Name:       input.Name,
		Specialty:  input.Specialty,
		Email:      input.Email,
		Degree:     input.Degree,
		Experience: input.Experience,
		Password:   secret,
	}

	existing, err := u.repository.GetByEmailAny(ctx, input.Email)
	switch {
	case err == nil:
		if !existing.IsDeleted {
			return nil, domain.ErrDoctorExists
		}
		existing.Revive(doctor)
		if err := u.repository.Replace(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case apperrors.Is(err, domain.ErrDoctorNotFound):
		if err := u.repository.Create(ctx, doctor); err != nil {
			return nil, err
		}
		return doctor, nil
	default:
		return nil, err
	}
}

func (u *doctorUseCase) UpdateByID(ctx context.Context, id string, input UpdateInput) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	update, err := u.buildUpdate(input)
	if err != nil {
		return err
	}
	return u.repository.UpdateByID(ctx, oid, update)
}

func (u *doctorUseCase) UpdateByName(ctx context.Context, name string, input UpdateInput) error {
	update, err := u.buildUpdate(input)
	if err != nil {
		return err
	}
	return u.repository.UpdateByName(ctx, name, update)
}

func (u *doctorUseCase) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return u.repository.SoftDeleteByID(ctx, oid)
}

func (u *doctorUseCase) DeleteByName(ctx context.Context, name string) error {
	return u.repository.SoftDeleteByName(ctx, name)
}

// buildUpdate maps the input onto a domain update, encrypting the password
// only when one was supplied.
func (u *doctorUseCase) buildUpdate(input UpdateInput) (domain.Update, error) {
	update := domain.Update{
		Name:       input.Name,
		Specialty:  input.Specialty,
		Email:      input.Email,
		Degree:     input.Degree,
		Experience: input.Experience,
	}
	if input.Password != "" {
		secret, err := u.cipher.Encrypt(input.Password)
		if err != nil {
			return domain.Update{}, apperrors.Wrap(err, "failed to encrypt password")
		}
		update.Password = &secret
	}
	return update, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid doctor id")
	}
	return oid, nil
}
