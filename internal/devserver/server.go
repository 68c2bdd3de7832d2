// Package devserver is a self-contained, in-memory stand-in for the
// fitness tracker backend. It exists for local development and tests of
// the client; nothing it stores survives a restart.
package devserver

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/fittrack/internal/config"
	"github.com/spec-kit/fittrack/internal/observability"
)

// Server bundles the fiber app with its in-memory dependencies.
type Server struct {
	cfg     config.ServerConfig
	logger  *zap.Logger
	store   *Store
	tokens  *TokenManager
	metrics *observability.Metrics
	app     *fiber.App
}

// New builds a ready-to-listen devserver.
func New(cfg config.ServerConfig, logger *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		store:   NewStore(),
		tokens:  NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		metrics: observability.NewMetrics(),
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Use(errorHandlingMiddleware(s.logger, s.metrics))
	s.app.Use(observability.RequestLogger(s.logger, s.metrics))

	s.app.Get("/health/live", s.handleHealthLive)
	s.app.Get("/health/ready", s.handleHealthReady)

	api := s.app.Group("/api")
	api.Post("/register", s.handleRegister)
	api.Post("/login", s.handleLogin)

	authed := api.Group("", s.requireAuth)

	authed.Post("/meals", s.handleCreateMeal)
	authed.Get("/meals/mine", s.handleMyMeals)

	authed.Post("/workouts", s.handleCreateWorkout)
	authed.Post("/workouts/from-plan", s.handleCreateWorkoutFromPlan)
	authed.Get("/workouts/mine", s.handleMyWorkouts)

	authed.Post("/workout-plans", s.handleCreatePlan)
	authed.Get("/workout-plans/mine", s.handleMyPlans)
	authed.Get("/workout-plans/:id", s.handlePlanByID)
	authed.Put("/workout-plans/:id", s.handleUpdatePlan)
	authed.Delete("/workout-plans/:id", s.handleDeletePlan)
	authed.Get("/workout-plans/days/:dayId", s.handlePlanDay)

	authed.Get("/exercises/predefined", s.handlePredefinedExercises)
	authed.Get("/exercises/categories", s.handleExerciseCategories)

	authed.Get("/profile", s.handleProfile)
	authed.Put("/profile", s.handleUpdateProfile)
	authed.Get("/profile/history", s.handleChangeHistory)

	authed.Post("/measurements", s.handleCreateMeasurement)
	authed.Get("/measurements", s.handleMeasurements)
	authed.Get("/measurements/latest", s.handleLatestMeasurement)
	authed.Delete("/measurements/:id", s.handleDeleteMeasurement)
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	s.logger.Info("devserver listening", zap.String("addr", s.cfg.Addr()))
	return s.app.Listen(s.cfg.Addr())
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealthLive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleHealthReady(c *fiber.Ctx) error {
	requests, errors := s.metrics.Totals()
	return c.JSON(fiber.Map{
		"status":   "ok",
		"requests": requests,
		"errors":   errors,
	})
}
