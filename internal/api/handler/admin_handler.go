package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/ports"
)

// AdminHandler handles the role-gated user management routes. The AdminOnly
// middleware guarantees an admin actor before these run.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Get handles GET /api/admin/users/:id.
func (h *AdminHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Update handles PUT /api/admin/users/:id. The body is a partial object;
// absent fields (and explicit nulls, which decode identically) leave the
// column unchanged. An empty body is a valid no-op update.
func (h *AdminHandler) Update(c echo.Context) error {
	var patch domain.UserPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.UpdateUser(c.Request().Context(), claims.UserID, c.Param("id"), patch, clientIP(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}

// Delete handles DELETE /api/admin/users/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), claims.UserID, c.Param("id"), clientIP(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
