package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// ProjectHandler handles project and code snippet CRUD.
type ProjectHandler struct {
	projects ports.ProjectService
	code     ports.CodeService
}

func NewProjectHandler(projects ports.ProjectService, code ports.CodeService) *ProjectHandler {
	return &ProjectHandler{projects: projects, code: code}
}

type addProjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	FullDes     string `json:"full_des"    validate:"required"`
	Status      string `json:"status"      validate:"required"`
	Adver       bool   `json:"adver"`
	ImageURL    string `json:"imageUrl"`
}

type addCodeRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	FullDes     string `json:"full_des"    validate:"required"`
	Status      string `json:"status"      validate:"required"`
	Adver       bool   `json:"adver"`
}

// editProjectRequest carries no validation tags: the original overwrites the
// three mutable fields with whatever was sent, empty included.
type editProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FullDes     string `json:"full_des"`
	Status      string `json:"status"`
}

type deleteProjectRequest struct {
	Name string `json:"name"`
}

// AddProject creates a project owned by the caller.
//
// @Summary      Add a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addProjectRequest  true  "Project fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /add-project [post]
func (h *ProjectHandler) AddProject(c echo.Context) error {
	var req addProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.projects.Add(c.Request().Context(), identity, ports.AddProjectInput{
		Name:        req.Name,
		Description: req.Description,
		FullDes:     req.FullDes,
		Status:      req.Status,
		Adver:       req.Adver,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "project added"})
}

// ListOwn returns the caller's projects.
//
// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) ListOwn(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.ListOwn(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListPublic returns all advertised projects. No auth required.
//
// @Summary      List public projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /show-public [get]
func (h *ProjectHandler) ListPublic(c echo.Context) error {
	projects, err := h.projects.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListMentored returns projects shared with the caller.
//
// @Summary      List projects shared with the caller
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /projects-mentored [get]
func (h *ProjectHandler) ListMentored(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.ListSharedWithMe(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// EditProject overwrites description, full description and status.
//
// @Summary      Edit an owned project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      editProjectRequest  true  "Fields to overwrite"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /edit-project [post]
func (h *ProjectHandler) EditProject(c echo.Context) error {
	var req editProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.projects.Edit(c.Request().Context(), identity, ports.EditProjectInput{
		Name:        req.Name,
		Description: req.Description,
		FullDes:     req.FullDes,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "project updated"})
}

// DeleteProject removes an owned project and its image asset.
//
// @Summary      Delete an owned project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteProjectRequest  true  "Project name"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /delete-project [post]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	var req deleteProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.projects.Delete(c.Request().Context(), identity, req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "project deleted"})
}

// AddCode creates a code snippet owned by the caller.
//
// @Summary      Add a code snippet
// @Tags         code
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCodeRequest  true  "Snippet fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /add-code [post]
func (h *ProjectHandler) AddCode(c echo.Context) error {
	var req addCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	err = h.code.Add(c.Request().Context(), identity, ports.AddCodeInput{
		Name:        req.Name,
		Description: req.Description,
		FullDes:     req.FullDes,
		Status:      req.Status,
		Adver:       req.Adver,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "code snippet added"})
}

// ListCode returns the caller's code snippets.
//
// @Summary      List own code snippets
// @Tags         code
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CodeSnippet
// @Router       /code [get]
func (h *ProjectHandler) ListCode(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	snippets, err := h.code.ListOwn(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snippets)
}
