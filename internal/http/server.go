// Package http wires the resource handlers into a gin engine and runs the
// API server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	adminHTTP "github.com/clinicops/admin-api/internal/admin/http"
	doctorHTTP "github.com/clinicops/admin-api/internal/doctor/http"
	facilityHTTP "github.com/clinicops/admin-api/internal/facility/http"
	specializationHTTP "github.com/clinicops/admin-api/internal/specialization/http"
)

// RouterConfig collects everything the router needs: resource handlers, the
// session middleware for protected routes, and optional cross-cutting
// middleware.
type RouterConfig struct {
	Logger                *slog.Logger
	AdminHandler          *adminHTTP.AdminHandler
	DoctorHandler         *doctorHTTP.DoctorHandler
	FacilityHandler       *facilityHTTP.FacilityHandler
	SpecializationHandler *specializationHTTP.SpecializationHandler
	SessionMiddleware     gin.HandlerFunc
	MetricsMiddleware     gin.HandlerFunc
	CORSEnabled           bool
	CORSAllowOrigins      string
}

// NewRouter builds the gin engine with all API routes. Reads and the two
// authenticate endpoints are public; every mutating route requires a valid
// session.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(cfg.Logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", readyHandler)

	api := router.Group("/api")
	protected := cfg.SessionMiddleware

	admin := api.Group("/admin")
	admin.POST("/authenticate", cfg.AdminHandler.AuthenticateHandler)
	admin.POST("/register", protected, cfg.AdminHandler.RegisterHandler)
	admin.DELETE("/:user_id", protected, cfg.AdminHandler.DeleteHandler)

	doctors := api.Group("/doctors")
	doctors.GET("", cfg.DoctorHandler.ListHandler)
	doctors.GET("/:id", cfg.DoctorHandler.GetByIDHandler)
	doctors.GET("/name/:name", cfg.DoctorHandler.GetByNameHandler)
	doctors.POST("/authenticate", cfg.DoctorHandler.AuthenticateHandler)
	doctors.POST("", protected, cfg.DoctorHandler.CreateHandler)
	doctors.PUT("/:id", protected, cfg.DoctorHandler.UpdateByIDHandler)
	doctors.PUT("/name/:name", protected, cfg.DoctorHandler.UpdateByNameHandler)
	doctors.DELETE("/:id", protected, cfg.DoctorHandler.DeleteByIDHandler)
	doctors.DELETE("/name/:name", protected, cfg.DoctorHandler.DeleteByNameHandler)

	facilities := api.Group("/facilities")
	facilities.GET("", cfg.FacilityHandler.ListHandler)
	facilities.GET("/:id", cfg.FacilityHandler.GetByIDHandler)
	facilities.GET("/name/:name", cfg.FacilityHandler.GetByNameHandler)
	facilities.POST("", protected, cfg.FacilityHandler.CreateHandler)
	facilities.PUT("/:id", protected, cfg.FacilityHandler.UpdateByIDHandler)
	facilities.PUT("/name/:name", protected, cfg.FacilityHandler.UpdateByNameHandler)
	facilities.DELETE("/:id", protected, cfg.FacilityHandler.DeleteByIDHandler)
	facilities.DELETE("/name/:name", protected, cfg.FacilityHandler.DeleteByNameHandler)

	specializations := api.Group("/specializations")
	specializations.GET("", cfg.SpecializationHandler.ListHandler)
	specializations.POST("", protected, cfg.SpecializationHandler.CreateHandler)
	specializations.DELETE("/:id", protected, cfg.SpecializationHandler.DeleteHandler)

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func readyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server around the router.
func NewServer(host string, port int, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
