package devserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fittrack/internal/domain"
	apperrors "github.com/spec-kit/fittrack/pkg/util"
)

// handleCreatePlan stores a new workout plan. POST /api/workout-plans.
func (s *Server) handleCreatePlan(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req domain.WorkoutPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("plan name required", nil)
	}

	plan, err := s.store.CreatePlan(acc.ID, req)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(plan)
}

// handleMyPlans lists the caller's plans. GET /api/workout-plans/mine.
func (s *Server) handleMyPlans(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	plans := s.store.PlansOf(acc.ID)
	if plans == nil {
		plans = []domain.WorkoutPlan{}
	}
	return c.JSON(plans)
}

// handlePlanByID fetches one plan. GET /api/workout-plans/:id.
func (s *Server) handlePlanByID(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	plan, err := s.store.PlanByID(acc.ID, id)
	if err != nil {
		return apperrors.NewNotFound("workout plan", nil)
	}
	return c.JSON(plan)
}

// handleUpdatePlan replaces a plan's content. PUT /api/workout-plans/:id.
func (s *Server) handleUpdatePlan(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req domain.WorkoutPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("plan name required", nil)
	}

	plan, err := s.store.UpdatePlan(acc.ID, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound("workout plan", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return c.JSON(plan)
}

// handleDeletePlan removes a plan. DELETE /api/workout-plans/:id.
func (s *Server) handleDeletePlan(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.store.DeletePlan(acc.ID, id); err != nil {
		return apperrors.NewNotFound("workout plan", nil)
	}
	return c.SendStatus(http.StatusNoContent)
}

// handlePlanDay fetches one plan day. GET /api/workout-plans/days/:dayId.
func (s *Server) handlePlanDay(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	dayID, err := parseIDParam(c, "dayId")
	if err != nil {
		return err
	}

	day, err := s.store.PlanDay(acc.ID, dayID)
	if err != nil {
		return apperrors.NewNotFound("workout plan day", nil)
	}
	return c.JSON(day)
}

// handlePredefinedExercises lists the catalog. GET /api/exercises/predefined.
func (s *Server) handlePredefinedExercises(c *fiber.Ctx) error {
	var category *domain.ExerciseCategory
	if raw := c.Query("category"); raw != "" {
		cat := domain.ExerciseCategory(raw)
		category = &cat
	}

	exercises := s.store.Predefined(category)
	if exercises == nil {
		exercises = []domain.PredefinedExercise{}
	}
	return c.JSON(exercises)
}

// handleExerciseCategories lists categories. GET /api/exercises/categories.
func (s *Server) handleExerciseCategories(c *fiber.Ctx) error {
	return c.JSON(domain.ExerciseCategories())
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}
