package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
	"github.com/classumlab/classroom-backend/internal/response"
	"github.com/classumlab/classroom-backend/internal/service"
	"github.com/classumlab/classroom-backend/internal/validator"
)

// NoticeHandler exposes notice management for the classroom portal.
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// ListNotices godoc
// GET /api/notices
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	notices, err := h.noticeService.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "failed to list notices", err)
		return
	}
	if notices == nil {
		notices = []model.Notice{}
	}
	response.Success(c, http.StatusOK, notices)
}

// CreateNotice godoc
// POST /api/notices
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req model.CreateNoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	notice := &model.Notice{Title: req.Title, Content: req.Content, Pinned: req.Pinned}
	if err := h.noticeService.Create(c.Request.Context(), notice); err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "failed to create notice", err)
		return
	}
	response.Success(c, http.StatusCreated, notice)
}

// UpdateNotice godoc
// PUT /api/notices/:id
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid notice id")
		return
	}

	var req model.CreateNoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Flatten(fields))
		return
	}

	notice := &model.Notice{ID: id, Title: req.Title, Content: req.Content, Pinned: req.Pinned}
	if err := h.noticeService.Update(c.Request.Context(), notice); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "notice not found")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to update notice", err)
		return
	}
	response.Success(c, http.StatusOK, notice)
}

// DeleteNotice godoc
// DELETE /api/notices/:id
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid notice id")
		return
	}

	if err := h.noticeService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "notice not found")
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, "failed to delete notice", err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
