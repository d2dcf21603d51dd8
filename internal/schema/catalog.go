// Package schema discovers the live column set of a table at runtime.
// Deployments of this system have drifted over the years (columns renamed,
// added, or dropped between installations), so every statement against the
// classes table is built from what actually exists, not from what a
// migration file says should exist.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier is the minimal query surface the inspector needs. Both
// *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Catalog is the set of columns discovered for one table, keyed by
// lower-cased name. The value preserves the column's actual spelling.
type Catalog map[string]string

// Inspect reads the current column set of table from the database catalog.
// An empty result means the table does not exist, which is a hard error:
// the adapter cannot operate without knowing the schema.
func Inspect(ctx context.Context, q Querier, table string) (Catalog, error) {
	rows, err := q.Query(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1`, table)
	if err != nil {
		return nil, fmt.Errorf("inspect %s columns: %w", table, err)
	}
	defer rows.Close()

	cat := Catalog{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("inspect %s columns: %w", table, err)
		}
		cat[strings.ToLower(name)] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inspect %s columns: %w", table, err)
	}

	if len(cat) == 0 {
		return nil, fmt.Errorf("table %s has no columns (does it exist?)", table)
	}
	return cat, nil
}

// Has reports whether a column with the given name exists,
// case-insensitively.
func (c Catalog) Has(name string) bool {
	_, ok := c[strings.ToLower(name)]
	return ok
}

// Resolve returns the actual name of the first candidate column that
// exists in the catalog, or "" when none do. Matching is exact after
// case folding. No fuzzy matching, ever: a near-miss column name is
// somebody else's column.
func (c Catalog) Resolve(candidates ...string) string {
	for _, cand := range candidates {
		if actual, ok := c[strings.ToLower(cand)]; ok {
			return actual
		}
	}
	return ""
}

// Names returns the discovered column names in their actual spelling.
// Ordering is unspecified; intended for diagnostics.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for _, actual := range c {
		out = append(out, actual)
	}
	return out
}
