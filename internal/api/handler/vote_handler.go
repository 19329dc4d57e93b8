package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/api/metrics"
	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// VoteHandler handles anonymous like/dislike voting. The voter identifier is
// the client's network address; no authentication is required.
type VoteHandler struct {
	votes ports.VoteService
}

func NewVoteHandler(votes ports.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

type voteRequest struct {
	Name string `json:"name"`
}

type likesResponse struct {
	Name  string `json:"name"`
	Likes int    `json:"likes"`
}

type dislikesResponse struct {
	Name     string `json:"name"`
	Dislikes int    `json:"dislikes"`
}

type voterStatusResponse struct {
	Liked    []string `json:"liked"`
	Disliked []string `json:"disliked"`
}

// Like records a like by the calling address.
//
// @Summary      Like a project
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      voteRequest  true  "Project name"
// @Success      200   {object}  likesResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /like-project [post]
func (h *VoteHandler) Like(c echo.Context) error {
	return h.vote(c, "like", "cast", h.votes.Like)
}

// Unlike undoes a like by the calling address.
//
// @Summary      Unlike a project
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      voteRequest  true  "Project name"
// @Success      200   {object}  likesResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /unlike-project [post]
func (h *VoteHandler) Unlike(c echo.Context) error {
	return h.vote(c, "like", "undo", h.votes.Unlike)
}

// Dislike records a dislike by the calling address.
//
// @Summary      Dislike a project
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      voteRequest  true  "Project name"
// @Success      200   {object}  dislikesResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /dislike-project [post]
func (h *VoteHandler) Dislike(c echo.Context) error {
	return h.vote(c, "dislike", "cast", h.votes.Dislike)
}

// Undislike undoes a dislike by the calling address.
//
// @Summary      Undo a dislike
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      voteRequest  true  "Project name"
// @Success      200   {object}  dislikesResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /undislike-project [post]
func (h *VoteHandler) Undislike(c echo.Context) error {
	return h.vote(c, "dislike", "undo", h.votes.Undislike)
}

func (h *VoteHandler) vote(c echo.Context, direction, action string, op func(ctx context.Context, voter, name string) (*domain.Project, error)) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := op(c.Request().Context(), c.RealIP(), req.Name)
	if err != nil {
		return err
	}

	metrics.VotesTotal.WithLabelValues(direction, action).Inc()
	if direction == "like" {
		return c.JSON(http.StatusOK, likesResponse{Name: project.Name, Likes: project.Likes})
	}
	return c.JSON(http.StatusOK, dislikesResponse{Name: project.Name, Dislikes: project.Dislikes})
}

// Status lists the calling address's active votes across all projects.
//
// @Summary      Vote status for the calling address
// @Tags         votes
// @Produce      json
// @Success      200  {object}  voterStatusResponse
// @Router       /user-status [get]
func (h *VoteHandler) Status(c echo.Context) error {
	status, err := h.votes.Status(c.Request().Context(), c.RealIP())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, voterStatusResponse{Liked: status.Liked, Disliked: status.Disliked})
}
