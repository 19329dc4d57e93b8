package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/showcasehub/showcase-system/internal/core/ports"
)

// ctxIdentity extracts the claims injected by the Auth middleware. A missing
// username means the middleware did not run on this route; fail fast rather
// than letting an empty identity match nothing downstream.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get("role").(string)
	mentor, _ := c.Get("mentor").(string)
	return ports.Identity{Username: username, Role: role, Mentor: mentor}, nil
}
