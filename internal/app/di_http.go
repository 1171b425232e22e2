package app

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	adminHTTP "github.com/clinicops/admin-api/internal/admin/http"
	authHTTP "github.com/clinicops/admin-api/internal/auth/http"
	doctorHTTP "github.com/clinicops/admin-api/internal/doctor/http"
	facilityHTTP "github.com/clinicops/admin-api/internal/facility/http"
	"github.com/clinicops/admin-api/internal/http"
	"github.com/clinicops/admin-api/internal/metrics"
	specializationHTTP "github.com/clinicops/admin-api/internal/specialization/http"
)

// components groups every lazily built application component.
type components struct {
	auth      authComponents
	resources resourceComponents

	httpServer        *http.Server
	metricsServer     *http.MetricsServer
	httpServerInit    sync.Once
	metricsServerInit sync.Once
}

// HTTPServer returns the API server with all routes wired.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.components.httpServerInit.Do(func() {
		logger := c.Logger()

		adminAuth, err := c.AdminAuthUseCase(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		doctorAuth, err := c.DoctorAuthUseCase(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		doctors, err := c.DoctorUseCase(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		facilities, err := c.FacilityUseCase(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		specializations, err := c.SpecializationUseCase(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		var metricsMiddleware gin.HandlerFunc
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		if provider != nil {
			metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
		}

		router := http.NewRouter(http.RouterConfig{
			Logger:                logger,
			AdminHandler:          adminHTTP.NewAdminHandler(adminAuth, logger),
			DoctorHandler:         doctorHTTP.NewDoctorHandler(doctors, doctorAuth, logger),
			FacilityHandler:       facilityHTTP.NewFacilityHandler(facilities, logger),
			SpecializationHandler: specializationHTTP.NewSpecializationHandler(specializations, logger),
			SessionMiddleware:     authHTTP.SessionMiddleware(c.TokenService(), logger),
			MetricsMiddleware:     metricsMiddleware,
			CORSEnabled:           c.config.CORSEnabled,
			CORSAllowOrigins:      c.config.CORSAllowOrigins,
		})

		c.components.httpServer = http.NewServer(c.config.ServerHost, c.config.ServerPort, router, logger)
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.components.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	c.components.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.components.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.components.metricsServer, nil
}
