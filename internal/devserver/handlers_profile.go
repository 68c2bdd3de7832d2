package devserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fittrack/internal/domain"
	apperrors "github.com/spec-kit/fittrack/pkg/util"
)

// handleProfile returns the caller's profile. GET /api/profile.
func (s *Server) handleProfile(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	profile, err := s.store.ProfileOf(acc.ID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(profile)
}

// handleUpdateProfile applies a partial update. PUT /api/profile.
func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req domain.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UnitPreference != nil &&
		*req.UnitPreference != domain.UnitsMetric && *req.UnitPreference != domain.UnitsImperial {
		return apperrors.NewValidationError("unknown unit preference", nil)
	}

	profile, err := s.store.UpdateProfile(acc.ID, req)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(profile)
}

// handleChangeHistory lists recorded changes. GET /api/profile/history.
func (s *Server) handleChangeHistory(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	entries := s.store.HistoryOf(acc.ID)
	if entries == nil {
		entries = []domain.ChangeHistoryEntry{}
	}
	return c.JSON(entries)
}

// handleCreateMeasurement records a snapshot. POST /api/measurements.
func (s *Server) handleCreateMeasurement(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req domain.MeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	m, err := s.store.AddMeasurement(acc.ID, req)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(m)
}

// handleMeasurements lists measurements, newest first. GET /api/measurements.
func (s *Server) handleMeasurements(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	ms := s.store.MeasurementsOf(acc.ID)
	if ms == nil {
		ms = []domain.Measurement{}
	}
	return c.JSON(ms)
}

// handleLatestMeasurement returns the most recent measurement, answering
// 204 when none exists. GET /api/measurements/latest.
func (s *Server) handleLatestMeasurement(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	m := s.store.LatestMeasurement(acc.ID)
	if m == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(m)
}

// handleDeleteMeasurement removes a measurement. DELETE /api/measurements/:id.
func (s *Server) handleDeleteMeasurement(c *fiber.Ctx) error {
	acc, ok := accountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.store.DeleteMeasurement(acc.ID, id); err != nil {
		return apperrors.NewNotFound("measurement", nil)
	}
	return c.SendStatus(http.StatusNoContent)
}
