package app

import (
	"context"
	"fmt"
	"sync"

	adminMongo "github.com/clinicops/admin-api/internal/admin/repository/mongodb"
	authService "github.com/clinicops/admin-api/internal/auth/service"
	authUseCase "github.com/clinicops/admin-api/internal/auth/usecase"
	cryptoService "github.com/clinicops/admin-api/internal/crypto/service"
)

// authComponents groups the credential protection pieces: the password
// cipher, the token service, and the two authentication use cases (admins
// keyed by user id, doctors keyed by email).
type authComponents struct {
	cipher            cryptoService.PasswordCipher
	tokenService      authService.TokenService
	adminAuthUseCase  authUseCase.UseCase
	doctorAuthUseCase authUseCase.UseCase
	cipherInit        sync.Once
	tokenServiceInit  sync.Once
	adminAuthInit     sync.Once
	doctorAuthInit    sync.Once
}

// PasswordCipher returns the AES-256-GCM password cipher built from the
// configured hex key.
func (c *Container) PasswordCipher() (cryptoService.PasswordCipher, error) {
	c.components.auth.cipherInit.Do(func() {
		cipher, err := cryptoService.NewAESGCMPasswordCipher(c.config.SecretKeyHex)
		if err != nil {
			c.initErrors["cipher"] = fmt.Errorf("failed to create password cipher: %w", err)
			return
		}
		c.components.auth.cipher = cipher
	})
	if storedErr, exists := c.initErrors["cipher"]; exists {
		return nil, storedErr
	}
	return c.components.auth.cipher, nil
}

// TokenService returns the JWT session token service.
func (c *Container) TokenService() authService.TokenService {
	c.components.auth.tokenServiceInit.Do(func() {
		c.components.auth.tokenService = authService.NewTokenService(c.config.JWTSecret)
	})
	return c.components.auth.tokenService
}

// AdminAuthUseCase returns the authentication use case over the admin
// credential store, wrapped with business metrics.
func (c *Container) AdminAuthUseCase(ctx context.Context) (authUseCase.UseCase, error) {
	c.components.auth.adminAuthInit.Do(func() {
		db, err := c.MongoDatabase(ctx)
		if err != nil {
			c.initErrors["adminAuthUseCase"] = err
			return
		}

		cipher, err := c.PasswordCipher()
		if err != nil {
			c.initErrors["adminAuthUseCase"] = err
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["adminAuthUseCase"] = err
			return
		}

		store := adminMongo.NewMongoDBAdminRepository(db)
		useCase := authUseCase.NewAuthUseCase(store, cipher, c.TokenService())
		c.components.auth.adminAuthUseCase = authUseCase.NewUseCaseWithMetrics(useCase, "admin_auth", businessMetrics)
	})
	if storedErr, exists := c.initErrors["adminAuthUseCase"]; exists {
		return nil, storedErr
	}
	return c.components.auth.adminAuthUseCase, nil
}

// DoctorAuthUseCase returns the authentication use case over the doctor
// credential store, wrapped with business metrics.
func (c *Container) DoctorAuthUseCase(ctx context.Context) (authUseCase.UseCase, error) {
	c.components.auth.doctorAuthInit.Do(func() {
		store, err := c.DoctorRepository(ctx)
		if err != nil {
			c.initErrors["doctorAuthUseCase"] = err
			return
		}

		cipher, err := c.PasswordCipher()
		if err != nil {
			c.initErrors["doctorAuthUseCase"] = err
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["doctorAuthUseCase"] = err
			return
		}

		useCase := authUseCase.NewAuthUseCase(store, cipher, c.TokenService())
		c.components.auth.doctorAuthUseCase = authUseCase.NewUseCaseWithMetrics(useCase, "doctor_auth", businessMetrics)
	})
	if storedErr, exists := c.initErrors["doctorAuthUseCase"]; exists {
		return nil, storedErr
	}
	return c.components.auth.doctorAuthUseCase, nil
}
