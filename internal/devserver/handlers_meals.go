package devserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fittrack/internal/domain"
	apperrors "github.com/spec-kit/fittrack/pkg/util"
)

// handleCreateMeal logs a meal. POST /api/meals.
func (s *Server) handleCreateMeal(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req domain.MealLogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Foods) == 0 {
		return apperrors.NewValidationError("at least one food required", nil)
	}

	meal, err := s.store.AddMeal(acc.ID, req.Foods)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(meal)
}

// handleMyMeals lists the caller's meals. GET /api/meals/mine.
func (s *Server) handleMyMeals(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	meals := s.store.MealsOf(acc.ID)
	if meals == nil {
		meals = []domain.MealLog{}
	}
	return c.JSON(meals)
}
