package service

import (
	"context"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
)

// NoticeService handles notice business logic.
type NoticeService struct {
	noticeRepo *repository.NoticeRepository
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(noticeRepo *repository.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// List retrieves all notices.
func (s *NoticeService) List(ctx context.Context) ([]model.Notice, error) {
	return s.noticeRepo.List(ctx)
}

// Create creates a new notice.
func (s *NoticeService) Create(ctx context.Context, n *model.Notice) error {
	return s.noticeRepo.Create(ctx, n)
}

// Update modifies an existing notice.
func (s *NoticeService) Update(ctx context.Context, n *model.Notice) error {
	return s.noticeRepo.Update(ctx, n)
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, id int) error {
	return s.noticeRepo.Delete(ctx, id)
}
