package app

import (
	"context"
	"sync"

	doctorMongo "github.com/clinicops/admin-api/internal/doctor/repository/mongodb"
	doctorUseCase "github.com/clinicops/admin-api/internal/doctor/usecase"
	facilityMongo "github.com/clinicops/admin-api/internal/facility/repository/mongodb"
	facilityUseCase "github.com/clinicops/admin-api/internal/facility/usecase"
	specializationMongo "github.com/clinicops/admin-api/internal/specialization/repository/mongodb"
	specializationUseCase "github.com/clinicops/admin-api/internal/specialization/usecase"
)

// resourceComponents groups the clinic resource repositories and use cases.
type resourceComponents struct {
	doctorRepo            *doctorMongo.MongoDBDoctorRepository
	doctorUseCase         doctorUseCase.UseCase
	facilityUseCase       facilityUseCase.UseCase
	specializationUseCase specializationUseCase.UseCase
	doctorRepoInit        sync.Once
	doctorUseCaseInit     sync.Once
	facilityInit          sync.Once
	specializationInit    sync.Once
}

// DoctorRepository returns the doctor repository, which also serves as the
// doctor credential store.
func (c *Container) DoctorRepository(ctx context.Context) (*doctorMongo.MongoDBDoctorRepository, error) {
	c.components.resources.doctorRepoInit.Do(func() {
		db, err := c.MongoDatabase(ctx)
		if err != nil {
			c.initErrors["doctorRepo"] = err
			return
		}
		c.components.resources.doctorRepo = doctorMongo.NewMongoDBDoctorRepository(db)
	})
	if storedErr, exists := c.initErrors["doctorRepo"]; exists {
		return nil, storedErr
	}
	return c.components.resources.doctorRepo, nil
}

// DoctorUseCase returns the doctor use case instance.
func (c *Container) DoctorUseCase(ctx context.Context) (doctorUseCase.UseCase, error) {
	c.components.resources.doctorUseCaseInit.Do(func() {
		repository, err := c.DoctorRepository(ctx)
		if err != nil {
			c.initErrors["doctorUseCase"] = err
			return
		}

		cipher, err := c.PasswordCipher()
		if err != nil {
			c.initErrors["doctorUseCase"] = err
			return
		}

		c.components.resources.doctorUseCase = doctorUseCase.NewDoctorUseCase(repository, cipher)
	})
	if storedErr, exists := c.initErrors["doctorUseCase"]; exists {
		return nil, storedErr
	}
	return c.components.resources.doctorUseCase, nil
}

// FacilityUseCase returns the facility use case instance.
func (c *Container) FacilityUseCase(ctx context.Context) (facilityUseCase.UseCase, error) {
	c.components.resources.facilityInit.Do(func() {
		db, err := c.MongoDatabase(ctx)
		if err != nil {
			c.initErrors["facilityUseCase"] = err
			return
		}
		repository := facilityMongo.NewMongoDBFacilityRepository(db)
		c.components.resources.facilityUseCase = facilityUseCase.NewFacilityUseCase(repository)
	})
	if storedErr, exists := c.initErrors["facilityUseCase"]; exists {
		return nil, storedErr
	}
	return c.components.resources.facilityUseCase, nil
}

// SpecializationUseCase returns the specialization use case instance.
func (c *Container) SpecializationUseCase(ctx context.Context) (specializationUseCase.UseCase, error) {
	c.components.resources.specializationInit.Do(func() {
		db, err := c.MongoDatabase(ctx)
		if err != nil {
			c.initErrors["specializationUseCase"] = err
			return
		}
		repository := specializationMongo.NewMongoDBSpecializationRepository(db)
		c.components.resources.specializationUseCase = specializationUseCase.NewSpecializationUseCase(repository)
	})
	if storedErr, exists := c.initErrors["specializationUseCase"]; exists {
		return nil, storedErr
	}
	return c.components.resources.specializationUseCase, nil
}
