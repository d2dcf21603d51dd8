package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/normalize"
	"github.com/classumlab/classroom-backend/internal/schema"
)

// ClassRepository is the schema-tolerant persistence adapter for classes.
// It inspects the live column catalog on every operation and builds its
// statements from what it finds, so the same binary works against every
// historical shape of the classes table.
type ClassRepository struct {
	db  Querier
	log zerolog.Logger
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db Querier, log zerolog.Logger) *ClassRepository {
	return &ClassRepository{
		db:  db,
		log: log.With().Str("component", "class_repository").Logger(),
	}
}

// List retrieves all classes, newest first. Rows with an unparsable id or
// an empty name are dropped rather than failing the whole listing.
func (r *ClassRepository) List(ctx context.Context) ([]model.ClassRecord, error) {
	cat, err := schema.Inspect(ctx, r.db, classTable)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, "SELECT * FROM "+classTable+orderClause(cat))
	if err != nil {
		return nil, err
	}
	raw, err := collectRows(rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.ClassRecord, 0, len(raw))
	for _, row := range raw {
		rec := classFromRow(cat, row)
		if rec.ID <= 0 || rec.Name == "" {
			r.log.Warn().Int("id", rec.ID).Msg("Dropping malformed class row from listing")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetByID retrieves a single class. Returns ErrNotFound for unknown ids.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.ClassRecord, error) {
	cat, err := schema.Inspect(ctx, r.db, classTable)
	if err != nil {
		return nil, err
	}
	return r.getByID(ctx, cat, id)
}

// Create inserts a new class and returns it in canonical form.
func (r *ClassRepository) Create(ctx context.Context, in model.ClassInput) (*model.ClassRecord, error) {
	cat, err := schema.Inspect(ctx, r.db, classTable)
	if err != nil {
		return nil, err
	}

	v := classValuesForCreate(in, r.resolveCategoryID(ctx, in, nil))
	if v.name == "" {
		return nil, ErrNameRequired
	}

	sql, args, err := buildClassInsert(cat, v, time.Now())
	if err != nil {
		return nil, err
	}

	var id int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return r.getByID(ctx, cat, id)
}

// Update applies a partial payload to an existing class. Fields absent
// from the payload keep their stored values. The read-merge-write is not
// transactional: concurrent updates to the same row race field-wise and
// the last writer wins.
func (r *ClassRepository) Update(ctx context.Context, id int, in model.ClassInput) (*model.ClassRecord, error) {
	cat, err := schema.Inspect(ctx, r.db, classTable)
	if err != nil {
		return nil, err
	}

	existing, err := r.getByID(ctx, cat, id)
	if err != nil {
		return nil, err
	}

	v := classValuesForUpdate(in, *existing, r.resolveCategoryID(ctx, in, existing.CategoryID))
	if v.name == "" {
		return nil, ErrNameRequired
	}

	sql, args, err := buildClassUpdate(cat, id, v, time.Now())
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("update class %d: %w", id, err)
	}
	return r.getByID(ctx, cat, id)
}

// Delete removes a class by id. Returns ErrNotFound when nothing matched.
func (r *ClassRepository) Delete(ctx context.Context, id int) error {
	cat, err := schema.Inspect(ctx, r.db, classTable)
	if err != nil {
		return err
	}

	idCol := cat.Resolve(classIDCols...)
	if idCol == "" {
		idCol = "id"
	}

	tag, err := r.db.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = $1", classTable, pgx.Identifier{idCol}.Sanitize()), id)
	if err != nil {
		return fmt.Errorf("delete class %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClassRepository) getByID(ctx context.Context, cat schema.Catalog, id int) (*model.ClassRecord, error) {
	idCol := cat.Resolve(classIDCols...)
	if idCol == "" {
		idCol = "id"
	}

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 LIMIT 1", classTable, pgx.Identifier{idCol}.Sanitize()), id)
	if err != nil {
		return nil, err
	}
	raw, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}

	rec := classFromRow(cat, raw[0])
	return &rec, nil
}

// resolveCategoryID picks the category linkage for a write, best-effort:
// a usable numeric id from the payload wins, then an exact name lookup,
// then the caller's fallback (the existing linkage on update). A category
// that cannot be found is "no category", never an error.
func (r *ClassRepository) resolveCategoryID(ctx context.Context, in model.ClassInput, fallback *int) *int {
	if id := normalize.Int(in.CategoryID); id != nil {
		return id
	}

	if name := normalize.String(in.Category); name != nil {
		var id int
		err := r.db.QueryRow(ctx,
			"SELECT id FROM "+categoryTable+" WHERE name = $1 LIMIT 1", *name).Scan(&id)
		switch {
		case err == nil:
			return &id
		case !errors.Is(err, pgx.ErrNoRows):
			r.log.Warn().Err(err).Str("category", *name).Msg("Category lookup failed")
		}
	}

	return fallback
}

// orderClause orders listings by recency using whichever timestamp column
// the schema has, falling back to descending id.
func orderClause(cat schema.Catalog) string {
	if col := cat.Resolve(classCreatedCols...); col != "" {
		return " ORDER BY " + pgx.Identifier{col}.Sanitize() + " DESC"
	}
	if col := cat.Resolve(classUpdatedCols...); col != "" {
		return " ORDER BY " + pgx.Identifier{col}.Sanitize() + " DESC"
	}
	if col := cat.Resolve(classIDCols...); col != "" {
		return " ORDER BY " + pgx.Identifier{col}.Sanitize() + " DESC"
	}
	return ""
}
