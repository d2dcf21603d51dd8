package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
	"github.com/classumlab/classroom-backend/internal/response"
	"github.com/classumlab/classroom-backend/internal/service"
	"github.com/classumlab/classroom-backend/internal/validator"
)

// CategoryHandler exposes class category management.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories godoc
// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "failed to list categories", err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	response.Success(c, http.StatusOK, categories)
}

// CreateCategory godoc
// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	category := &model.Category{Name: req.Name}
	if err := h.categoryService.Create(c.Request.Context(), category); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, "category already exists")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to create category", err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// DeleteCategory godoc
// DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "category not found")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to delete category", err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
