package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hunter122526/quantum2017/internal/api/metrics"
	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/ports"
)

// AuthHandler handles HTTP requests for the authentication surface.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		IP:       clientIP(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("duplicate_email").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: result.User, Token: result.Token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       clientIP(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccountCancelled):
			metrics.LoginsTotal.WithLabelValues("cancelled").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: result.User, Token: result.Token})
}

// Logout handles POST /api/auth/logout. Requires the Auth middleware.
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), ctxRawToken(c), claims, clientIP(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Verify handles GET /api/auth/verify. Requires the Auth middleware. The 404
// case covers users deleted after their token was issued.
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.CurrentUser(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}
