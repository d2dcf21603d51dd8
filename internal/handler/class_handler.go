package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classumlab/classroom-backend/internal/middleware"
	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/normalize"
	"github.com/classumlab/classroom-backend/internal/repository"
	"github.com/classumlab/classroom-backend/internal/response"
	"github.com/classumlab/classroom-backend/internal/validator"
)

// ClassService is the surface the class endpoints call.
// *service.ClassService satisfies it.
type ClassService interface {
	List(ctx context.Context) ([]model.ClassRecord, error)
	GetByID(ctx context.Context, id int) (*model.ClassRecord, error)
	Create(ctx context.Context, in model.ClassInput) (*model.ClassRecord, error)
	Update(ctx context.Context, id int, in model.ClassInput) (*model.ClassRecord, error)
	Delete(ctx context.Context, id int) error
}

// ClassHandler exposes the class management endpoints backed by the
// schema-tolerant adapter.
type ClassHandler struct {
	classService ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ListClasses godoc
// GET /api/classes
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "failed to list classes", err)
		return
	}
	response.Success(c, http.StatusOK, classes)
}

// GetClass godoc
// GET /api/classes/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid class id")
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, class)
}

// CreateClass godoc
// POST /api/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req model.ClassInput
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	if normalize.String(req.Name) == nil {
		response.Fail(c, http.StatusBadRequest, "name is required")
		return
	}

	class, err := h.classService.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, class)
}

// UpdateClass godoc
// PUT /api/classes/:id
// Partial update: fields missing from the body keep their stored values.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid class id")
		return
	}

	var req model.ClassInput
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	// A name key that is present but blank is a bad request; an absent
	// key means "keep the current name".
	if req.Name != nil && normalize.String(req.Name) == nil {
		response.Fail(c, http.StatusBadRequest, "name must not be empty")
		return
	}

	class, err := h.classService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, class)
}

// DeleteClass godoc
// DELETE /api/classes/:id
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid class id")
		return
	}

	if err := h.classService.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *ClassHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "class not found")
	case errors.Is(err, repository.ErrNameRequired):
		response.Fail(c, http.StatusBadRequest, "name is required")
	case errors.Is(err, repository.ErrNoNameColumn):
		// Configuration problem, not a bad request: the deployed schema
		// cannot store classes at all.
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("classes table has no usable name column")
		response.FailWithError(c, http.StatusInternalServerError, "classes table is misconfigured", err)
	default:
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("class storage error")
		response.FailWithError(c, http.StatusInternalServerError, "storage error", err)
	}
}
