package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(names ...string) Catalog {
	cat := Catalog{}
	for _, n := range names {
		cat[strings.ToLower(n)] = n
	}
	return cat
}

func TestCatalogResolve(t *testing.T) {
	cat := catalogOf("id", "className", "category_id", "reg_date")

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"first candidate wins", []string{"id", "class_id"}, "id"},
		{"falls through to later candidate", []string{"name", "class_name", "className"}, "className"},
		{"case-insensitive match keeps actual spelling", []string{"classname"}, "className"},
		{"no match", []string{"title", "label"}, ""},
		{"no fuzzy matching", []string{"categoryid"}, ""},
		{"empty candidates", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.Resolve(tt.candidates...))
		})
	}
}

func TestCatalogHas(t *testing.T) {
	cat := catalogOf("id", "ClassName")

	assert.True(t, cat.Has("id"))
	assert.True(t, cat.Has("ID"))
	assert.True(t, cat.Has("classname"))
	assert.False(t, cat.Has("name"))
}

func TestCatalogNames(t *testing.T) {
	cat := catalogOf("id", "ClassName")
	assert.ElementsMatch(t, []string{"id", "ClassName"}, cat.Names())
}

// columnRows plays back a fixed list of column names as pgx.Rows.
type columnRows struct {
	names   []string
	idx     int
	rowsErr error
	scanErr error
}

func (r *columnRows) Close()                                       {}
func (r *columnRows) Err() error                                   { return r.rowsErr }
func (r *columnRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *columnRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *columnRows) Values() ([]any, error)                       { return nil, nil }
func (r *columnRows) RawValues() [][]byte                          { return nil }
func (r *columnRows) Conn() *pgx.Conn                              { return nil }

func (r *columnRows) Next() bool {
	r.idx++
	return r.idx <= len(r.names)
}

func (r *columnRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*(dest[0].(*string)) = r.names[r.idx-1]
	return nil
}

type columnQuerier struct {
	rows    *columnRows
	err     error
	gotArgs []any
}

func (q *columnQuerier) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	q.gotArgs = args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestInspectLowercasesKeysAndKeepsSpelling(t *testing.T) {
	q := &columnQuerier{rows: &columnRows{names: []string{"idx", "ClassName", "REG_DATE"}}}

	cat, err := Inspect(context.Background(), q, "classes")
	require.NoError(t, err)
	require.Equal(t, []any{"classes"}, q.gotArgs)

	assert.True(t, cat.Has("classname"))
	assert.True(t, cat.Has("CLASSNAME"))
	assert.Equal(t, "ClassName", cat.Resolve("className"))
	assert.Equal(t, "REG_DATE", cat.Resolve("reg_date"))
	assert.Len(t, cat, 3)
}

func TestInspectMissingTableIsError(t *testing.T) {
	q := &columnQuerier{rows: &columnRows{}}

	cat, err := Inspect(context.Background(), q, "ghosts")
	require.Error(t, err, "an absent table must not come back as an empty catalog")
	assert.Nil(t, cat)
	assert.Contains(t, err.Error(), "ghosts")
}

func TestInspectQueryErrorIsWrapped(t *testing.T) {
	q := &columnQuerier{err: errors.New("connection reset")}

	_, err := Inspect(context.Background(), q, "classes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classes")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestInspectScanErrorSurfaces(t *testing.T) {
	q := &columnQuerier{rows: &columnRows{names: []string{"id"}, scanErr: errors.New("bad value")}}

	_, err := Inspect(context.Background(), q, "classes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad value")
}

func TestInspectRowsErrSurfaces(t *testing.T) {
	q := &columnQuerier{rows: &columnRows{names: []string{"id"}, rowsErr: errors.New("broken stream")}}

	_, err := Inspect(context.Background(), q, "classes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken stream")
}
