package repository

import (
	"context"

	"github.com/classumlab/classroom-backend/internal/model"
)

// NoticeRepository handles notice data access.
type NoticeRepository struct {
	db Querier
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(db Querier) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// List retrieves all notices, pinned first, then newest first.
func (r *NoticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, pinned, created_at, updated_at
		 FROM notices ORDER BY pinned DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Pinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, n *model.Notice) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO notices (title, content, pinned) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		n.Title, n.Content, n.Pinned).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// Update modifies an existing notice.
func (r *NoticeRepository) Update(ctx context.Context, n *model.Notice) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notices SET title = $1, content = $2, pinned = $3, updated_at = NOW()
		 WHERE id = $4`,
		n.Title, n.Content, n.Pinned, n.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a notice by id.
func (r *NoticeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
