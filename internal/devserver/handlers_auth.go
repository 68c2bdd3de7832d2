package devserver

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/fittrack/internal/domain"
	apperrors "github.com/spec-kit/fittrack/pkg/util"
)

// handleRegister creates a new account. POST /api/register.
func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req domain.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	hash, err := hashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	acc, err := s.store.CreateAccount(req.Username, hash)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return apperrors.NewConflict("username already taken", nil)
		}
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("account registered", zap.String("username", acc.Username))
	return c.Status(http.StatusCreated).JSON(domain.User{ID: acc.ID, Username: acc.Username})
}

// handleLogin exchanges credentials for a bearer token. POST /api/login.
func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	acc, ok := s.store.AccountByUsername(req.Username)
	if !ok {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	if err := comparePassword(acc.PasswordHash, req.Password); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	token, _, err := s.tokens.Generate(acc.ID, acc.Username)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.JSON(domain.LoginResponse{Token: token})
}
