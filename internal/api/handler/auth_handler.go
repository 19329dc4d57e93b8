package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/api/metrics"
	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// AuthHandler handles registration, login and account deletion.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
	Mentor   string `json:"mentor"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type checkUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Sign creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signRequest  true  "Account details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /sign [post]
func (h *AuthHandler) Sign(c echo.Context) error {
	var req signRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Mentor:   req.Mentor,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrMissingFields):
			status = http.StatusBadRequest
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "account created, log in!"})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// CheckUsername reports whether a username is still free.
//
// @Summary      Check username availability
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      checkUsernameRequest  true  "Username"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /check-username [post]
func (h *AuthHandler) CheckUsername(c echo.Context) error {
	var req checkUsernameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.UsernameAvailable(c.Request().Context(), req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "username available"})
}

// DeleteUser removes the authenticated account.
//
// @Summary      Delete own account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /delete-user [post]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.DeleteSelf(c.Request().Context(), identity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
