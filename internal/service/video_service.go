package service

import (
	"context"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
)

// VideoService handles VOD entry business logic.
type VideoService struct {
	videoRepo *repository.VideoRepository
}

// NewVideoService creates a new VideoService.
func NewVideoService(videoRepo *repository.VideoRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo}
}

// List retrieves all videos, optionally filtered to one class.
func (s *VideoService) List(ctx context.Context, classID *int) ([]model.Video, error) {
	if classID != nil {
		return s.videoRepo.ListByClass(ctx, *classID)
	}
	return s.videoRepo.List(ctx)
}

// Create creates a new video.
func (s *VideoService) Create(ctx context.Context, v *model.Video) error {
	return s.videoRepo.Create(ctx, v)
}

// Update modifies an existing video.
func (s *VideoService) Update(ctx context.Context, v *model.Video) error {
	return s.videoRepo.Update(ctx, v)
}

// Delete removes a video.
func (s *VideoService) Delete(ctx context.Context, id int) error {
	return s.videoRepo.Delete(ctx, id)
}
