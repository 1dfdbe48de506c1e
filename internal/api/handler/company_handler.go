package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careermap/careermap-api/internal/api/middleware"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for tracked companies.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /v1/companies — the map view. Anonymous callers see
// public entries only; authenticated callers additionally see their own.
//
// @Summary      List visible companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}  domain.Company
// @Router       /v1/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context(), middleware.PrincipalFrom(c))
	if err != nil {
		return err
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return c.JSON(http.StatusOK, companies)
}

// Create handles POST /v1/companies.
//
// @Summary      Pin a new company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Create(c.Request().Context(), middleware.PrincipalFrom(c), ports.CompanyInput{
		Name:      req.Name,
		SubSector: req.SubSector,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    domain.ApplicationStatus(req.Status),
		Ratings: domain.Ratings{
			Salary:    req.Ratings.Salary,
			Stability: req.Ratings.Stability,
			Culture:   req.Ratings.Culture,
		},
		Notes:    req.Notes,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, company)
}

// Get handles GET /v1/companies/:id.
//
// @Summary      Get a single company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  domain.Company
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Update handles PATCH /v1/companies/:id — owner only.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Company ID"
// @Param        body  body      updateCompanyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/companies/{id} [patch]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.CompanyUpdate{
		Name:      req.Name,
		SubSector: req.SubSector,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
		IsPublic:  req.IsPublic,
	}
	if req.Status != nil {
		status := domain.ApplicationStatus(*req.Status)
		update.Status = &status
	}
	if req.Ratings != nil {
		ratings := domain.Ratings{
			Salary:    req.Ratings.Salary,
			Stability: req.Ratings.Stability,
			Culture:   req.Ratings.Culture,
		}
		update.Ratings = &ratings
	}

	company, err := h.service.Update(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"), update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /v1/companies/:id — owner only.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "company deleted"})
}
