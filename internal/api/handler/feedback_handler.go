package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/api/metrics"
	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// FeedbackHandler handles the public feedback box.
type FeedbackHandler struct {
	feedback ports.FeedbackService
}

func NewFeedbackHandler(feedback ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type submitFeedbackRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Submit appends a feedback entry.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      submitFeedbackRequest  true  "Feedback"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /submit-feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.feedback.Submit(c.Request().Context(), req.Name, req.Email, req.Feedback); err != nil {
		return err
	}

	metrics.FeedbackTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// List returns the whole feedback log in insertion order.
//
// @Summary      List feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  domain.FeedbackEntry
// @Router       /feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	entries, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.FeedbackEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
