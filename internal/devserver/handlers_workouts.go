package devserver

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fittrack/internal/domain"
	apperrors "github.com/spec-kit/fittrack/pkg/util"
)

// handleCreateWorkout logs a free-form workout. POST /api/workouts.
func (s *Server) handleCreateWorkout(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req domain.WorkoutLogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Exercises) == 0 {
		return apperrors.NewValidationError("at least one exercise required", nil)
	}

	workout, err := s.store.AddWorkout(acc.ID, req.Exercises, nil)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(workout)
}

// handleCreateWorkoutFromPlan logs a workout linked to a plan day.
// POST /api/workouts/from-plan.
func (s *Server) handleCreateWorkoutFromPlan(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req domain.WorkoutLogFromPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Exercises) == 0 {
		return apperrors.NewValidationError("at least one exercise required", nil)
	}

	workout, err := s.store.AddWorkout(acc.ID, req.Exercises, &req.WorkoutPlanDayID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound("workout plan day", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(workout)
}

// handleMyWorkouts lists the caller's workouts. GET /api/workouts/mine.
func (s *Server) handleMyWorkouts(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	workouts := s.store.WorkoutsOf(acc.ID)
	if workouts == nil {
		workouts = []domain.WorkoutLog{}
	}
	return c.JSON(workouts)
}
