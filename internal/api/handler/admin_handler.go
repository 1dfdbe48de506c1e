package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careermap/careermap-api/internal/api/middleware"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// AdminHandler exposes the account-management endpoints behind the admin panel.
type AdminHandler struct {
	admin    ports.AdminService
	activity ports.ActivityService
}

func NewAdminHandler(admin ports.AdminService, activity ports.ActivityService) *AdminHandler {
	return &AdminHandler{admin: admin, activity: activity}
}

type updateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Role        *string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	IsActive    *bool   `json:"is_active"`
	NewPassword *string `json:"new_password" validate:"omitempty,min=6"`
}

type listUsersResponse struct {
	Users []ports.AdminUser `json:"users"`
	Stats ports.UserStats   `json:"stats"`
}

type activityResponse struct {
	Events []domain.ActivityEvent `json:"events"`
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all accounts with summary stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, stats, err := h.admin.ListUsers(c.Request().Context(), middleware.PrincipalFrom(c))
	if err != nil {
		return err
	}
	if users == nil {
		users = []ports.AdminUser{}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users, Stats: stats})
}

// GetUser handles GET /admin/users/:id.
//
// @Summary      Get a single account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  ports.AdminUser
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.admin.GetUser(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser handles PATCH /admin/users/:id — rename, re-email, role change,
// active flag, or direct password reset.
//
// @Summary      Update an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  ports.AdminUser
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.AdminUserUpdate{
		Name:        req.Name,
		Email:       req.Email,
		IsActive:    req.IsActive,
		NewPassword: req.NewPassword,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"), update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id. Cascades to the account's
// companies and comments.
//
// @Summary      Delete an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.admin.DeleteUser(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// Activity handles GET /admin/activity — the recent-events feed.
//
// @Summary      Recent activity feed
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum events to return (default 50)"
// @Success      200    {object}  activityResponse
// @Failure      403    {object}  errorResponse
// @Router       /admin/activity [get]
func (h *AdminHandler) Activity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.activity.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.ActivityEvent{}
	}
	return c.JSON(http.StatusOK, activityResponse{Events: events})
}
