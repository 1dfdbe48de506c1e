package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careermap/careermap-api/internal/api/middleware"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// CommentHandler handles the discussion threads under companies.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /v1/companies/:id/comments.
//
// @Summary      List a company's discussion thread
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {array}   domain.Comment
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/companies/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListByCompany(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// Create handles POST /v1/companies/:id/comments.
//
// @Summary      Post a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Company ID"
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/companies/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), middleware.PrincipalFrom(c), c.Param("id"), req.Content, req.ParentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}
