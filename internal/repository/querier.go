package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the storage handle repositories operate on. *pgxpool.Pool and
// pgx.Tx both satisfy it; repositories take it explicitly instead of
// reaching for any ambient connection state.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	// ErrNotFound is returned when an operation targets an id that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNameRequired is returned when a class write carries no usable
	// name. Name is the one field every class must have.
	ErrNameRequired = errors.New("class name is required")

	// ErrNoNameColumn means the classes table has no name-like column at
	// all. That is a deployment/configuration problem, not a bad request:
	// no insert or update can be built against such a schema.
	ErrNoNameColumn = errors.New("classes table has no name column")
)
