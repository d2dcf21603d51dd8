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

// VideoHandler exposes VOD entry management.
type VideoHandler struct {
	videoService *service.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// ListVideos godoc
// GET /api/videos?classId=N
func (h *VideoHandler) ListVideos(c *gin.Context) {
	var classID *int
	if raw := c.Query("classId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "invalid classId filter")
			return
		}
		classID = &id
	}

	videos, err := h.videoService.List(c.Request.Context(), classID)
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "failed to list videos", err)
		return
	}
	if videos == nil {
		videos = []model.Video{}
	}
	response.Success(c, http.StatusOK, videos)
}

// CreateVideo godoc
// POST /api/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req model.CreateVideoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	video := &model.Video{Title: req.Title, URL: req.URL, ClassID: req.ClassID, SortOrder: req.SortOrder}
	if err := h.videoService.Create(c.Request.Context(), video); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusBadRequest, "classId does not reference an existing class")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to create video", err)
		return
	}
	response.Success(c, http.StatusCreated, video)
}

// UpdateVideo godoc
// PUT /api/videos/:id
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid video id")
		return
	}

	var req model.CreateVideoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	video := &model.Video{ID: id, Title: req.Title, URL: req.URL, ClassID: req.ClassID, SortOrder: req.SortOrder}
	if err := h.videoService.Update(c.Request.Context(), video); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "video not found")
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusBadRequest, "classId does not reference an existing class")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to update video", err)
		return
	}
	response.Success(c, http.StatusOK, video)
}

// DeleteVideo godoc
// DELETE /api/videos/:id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid video id")
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "video not found")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to delete video", err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
