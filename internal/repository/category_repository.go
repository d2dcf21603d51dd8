package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/classumlab/classroom-backend/internal/model"
)

// CategoryRepository handles category data access. The categories table
// has a fixed schema; none of the drift tolerance of the class adapter
// applies here.
type CategoryRepository struct {
	db Querier
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db Querier) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`,
		c.Name).Scan(&c.ID, &c.CreatedAt)
}

// IDByName finds a category id by exact name match. Returns (nil, nil)
// when no such category exists.
func (r *CategoryRepository) IDByName(ctx context.Context, name string) (*int, error) {
	var id int
	err := r.db.QueryRow(ctx, `SELECT id FROM categories WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Delete removes a category by id.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
