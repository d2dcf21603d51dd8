package repository

import (
	"context"

	"github.com/classumlab/classroom-backend/internal/model"
)

// VideoRepository handles VOD entry data access.
type VideoRepository struct {
	db Querier
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(db Querier) *VideoRepository {
	return &VideoRepository{db: db}
}

// List retrieves all videos ordered by sort order, then recency.
func (r *VideoRepository) List(ctx context.Context) ([]model.Video, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, url, class_id, sort_order, created_at, updated_at
		 FROM videos ORDER BY sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.ClassID, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// ListByClass retrieves the videos attached to one class.
func (r *VideoRepository) ListByClass(ctx context.Context, classID int) ([]model.Video, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, url, class_id, sort_order, created_at, updated_at
		 FROM videos WHERE class_id = $1 ORDER BY sort_order ASC, created_at DESC`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.ClassID, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Create inserts a new video.
func (r *VideoRepository) Create(ctx context.Context, v *model.Video) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO videos (title, url, class_id, sort_order) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		v.Title, v.URL, v.ClassID, v.SortOrder).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

// Update modifies an existing video.
func (r *VideoRepository) Update(ctx context.Context, v *model.Video) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE videos SET title = $1, url = $2, class_id = $3, sort_order = $4, updated_at = NOW()
		 WHERE id = $5`,
		v.Title, v.URL, v.ClassID, v.SortOrder, v.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a video by id.
func (r *VideoRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
