package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	adminHTTP "github.com/clinicops/admin-api/internal/admin/http"
	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	authHTTP "github.com/clinicops/admin-api/internal/auth/http"
	authService "github.com/clinicops/admin-api/internal/auth/service"
	doctorDomain "github.com/clinicops/admin-api/internal/doctor/domain"
	doctorHTTP "github.com/clinicops/admin-api/internal/doctor/http"
	doctorUseCase "github.com/clinicops/admin-api/internal/doctor/usecase"
	facilityDomain "github.com/clinicops/admin-api/internal/facility/domain"
	facilityHTTP "github.com/clinicops/admin-api/internal/facility/http"
	facilityUseCase "github.com/clinicops/admin-api/internal/facility/usecase"
	specializationDomain "github.com/clinicops/admin-api/internal/specialization/domain"
	specializationHTTP "github.com/clinicops/admin-api/internal/specialization/http"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubAuthUseCase accepts a single fixed credential pair.
type stubAuthUseCase struct {
	tokenService authService.TokenService
}

func (s *stubAuthUseCase) Authenticate(ctx context.Context, key, password string) (string, error) {
	if key == "admin42" && password == "hunter2" {
		return s.tokenService.Issue("64f1b2a3c4d5e6f7a8b9c0d1", key)
	}
	return "", authDomain.ErrInvalidCredentials
}

func (s *stubAuthUseCase) RegisterOrReactivate(ctx context.Context, key, password string) (*authDomain.Identity, error) {
	return &authDomain.Identity{ID: "64f1b2a3c4d5e6f7a8b9c0d1", Key: key}, nil
}

func (s *stubAuthUseCase) Deactivate(ctx context.Context, key string) error {
	return nil
}

type stubDoctorUseCase struct{}

func (s *stubDoctorUseCase) List(ctx context.Context) ([]*doctorDomain.Doctor, error) {
	return []*doctorDomain.Doctor{}, nil
}

func (s *stubDoctorUseCase) GetByID(ctx context.Context, id string) (*doctorDomain.Doctor, error) {
	return nil, doctorDomain.ErrDoctorNotFound
}

func (s *stubDoctorUseCase) GetByName(ctx context.Context, name string) (*doctorDomain.Doctor, error) {
	return nil, doctorDomain.ErrDoctorNotFound
}

func (s *stubDoctorUseCase) Create(ctx context.Context, input doctorUseCase.CreateInput) (*doctorDomain.Doctor, error) {
	return &doctorDomain.Doctor{Name: input.Name, Email: input.Email}, nil
}

func (s *stubDoctorUseCase) UpdateByID(ctx context.Context, id string, input doctorUseCase.UpdateInput) error {
	return nil
}

func (s *stubDoctorUseCase) UpdateByName(ctx context.Context, name string, input doctorUseCase.UpdateInput) error {
	return nil
}

func (s *stubDoctorUseCase) DeleteByID(ctx context.Context, id string) error {
	return nil
}

func (s *stubDoctorUseCase) DeleteByName(ctx context.Context, name string) error {
	return nil
}

type stubFacilityUseCase struct{}

func (s *stubFacilityUseCase) List(ctx context.Context) ([]*facilityDomain.Facility, error) {
	return []*facilityDomain.Facility{}, nil
}

func (s *stubFacilityUseCase) GetByID(ctx context.Context, id string) (*facilityDomain.Facility, error) {
	return nil, facilityDomain.ErrFacilityNotFound
}

func (s *stubFacilityUseCase) GetByName(ctx context.Context, name string) (*facilityDomain.Facility, error) {
	return nil, facilityDomain.ErrFacilityNotFound
}

func (s *stubFacilityUseCase) Create(ctx context.Context, input facilityUseCase.FacilityInput) (*facilityDomain.Facility, error) {
	return &facilityDomain.Facility{Name: input.Name, Rooms: input.Rooms}, nil
}

func (s *stubFacilityUseCase) UpdateByID(ctx context.Context, id string, input facilityUseCase.FacilityInput) (*facilityDomain.Facility, error) {
	return &facilityDomain.Facility{Name: input.Name, Rooms: input.Rooms}, nil
}

func (s *stubFacilityUseCase) UpdateByName(ctx context.Context, name string, input facilityUseCase.FacilityInput) (*facilityDomain.Facility, error) {
	return &facilityDomain.Facility{Name: input.Name, Rooms: input.Rooms}, nil
}

func (s *stubFacilityUseCase) DeleteByID(ctx context.Context, id string) error {
	return nil
}

func (s *stubFacilityUseCase) DeleteByName(ctx context.Context, name string) error {
	return nil
}

type stubSpecializationUseCase struct{}

func (s *stubSpecializationUseCase) List(ctx context.Context) ([]*specializationDomain.Specialization, error) {
	return []*specializationDomain.Specialization{}, nil
}

func (s *stubSpecializationUseCase) Create(ctx context.Context, name string) (*specializationDomain.Specialization, error) {
	return &specializationDomain.Specialization{Name: name}, nil
}

func (s *stubSpecializationUseCase) Delete(ctx context.Context, id string) error {
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, authService.TokenService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := testLogger()
	tokenService := authService.NewTokenService("router-test-secret")
	auth := &stubAuthUseCase{tokenService: tokenService}

	router := NewRouter(RouterConfig{
		Logger:                logger,
		AdminHandler:          adminHTTP.NewAdminHandler(auth, logger),
		DoctorHandler:         doctorHTTP.NewDoctorHandler(&stubDoctorUseCase{}, auth, logger),
		FacilityHandler:       facilityHTTP.NewFacilityHandler(&stubFacilityUseCase{}, logger),
		SpecializationHandler: specializationHTTP.NewSpecializationHandler(&stubSpecializationUseCase{}, logger),
		SessionMiddleware:     authHTTP.SessionMiddleware(tokenService, logger),
	})
	return router, tokenService
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
}

func TestRouter_PublicReads(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/doctors", "/api/facilities", "/api/specializations"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code, "path %s", path)
	}
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	router, tokenService := newTestRouter(t)

	payload, _ := json.Marshal(gin.H{"name": "cardiology"})

	t.Run("Error_WithoutToken", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/specializations", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Success_WithToken", func(t *testing.T) {
		token, err := tokenService.Issue("64f1b2a3c4d5e6f7a8b9c0d1", "admin42")
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/specializations", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}

func TestRouter_AuthenticateFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("Success_AdminLogin", func(t *testing.T) {
		payload, _ := json.Marshal(gin.H{"user_id": "admin42", "password": "hunter2"})
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/authenticate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Error_BadPassword", func(t *testing.T) {
		payload, _ := json.Marshal(gin.H{"user_id": "admin42", "password": "wrong"})
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/authenticate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
