package repository

import (
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/normalize"
	"github.com/classumlab/classroom-backend/internal/schema"
)

// classFromRow maps one raw storage row onto the canonical ClassRecord.
// It never fails: whatever the row is missing or mangles, every invariant
// of the canonical shape holds on return: non-empty weekday set, non-empty
// delivery methods, a valid upload-time value. A row too broken to use
// (unparsable id, empty name) comes back with a zero ID or empty Name and
// is filtered by the caller.
func classFromRow(cat schema.Catalog, row map[string]any) model.ClassRecord {
	rec := model.ClassRecord{
		Code:       normalize.String(pick(row, cat, classCodeCols)),
		Category:   normalize.String(pick(row, cat, classCategoryCols)),
		CategoryID: normalize.Int(pick(row, cat, classCategoryIDCols)),
		StartDate:  normalize.DateString(pick(row, cat, classStartCols)),
		EndDate:    normalize.DateString(pick(row, cat, classEndCols)),
		CreatedAt:  normalize.DateString(pick(row, cat, classCreatedCols)),
		UpdatedAt:  normalize.DateString(pick(row, cat, classUpdatedCols)),
	}

	if id := normalize.Int(pick(row, cat, classIDCols)); id != nil {
		rec.ID = *id
	}
	if name := normalize.String(pick(row, cat, classNameCols)); name != nil {
		rec.Name = *name
	}

	rec.AssignmentUploadTime = normalize.UploadTime(
		pick(row, cat, classUploadTimeCols), normalize.UploadTimeAllDay)

	rec.AssignmentUploadDays = normalize.Weekdays(
		pick(row, cat, classUploadDaysCols, classUploadDaysLegacyCols))
	if len(rec.AssignmentUploadDays) == 0 {
		rec.AssignmentUploadDays = normalize.AllWeekdays()
	}

	rec.DeliveryMethods = normalize.StringList(
		pick(row, cat, classMethodsCols, classMethodsLegacyCols))
	if len(rec.DeliveryMethods) == 0 {
		rec.DeliveryMethods = append([]string(nil), defaultDeliveryMethods...)
	}

	rec.IsActive = normalize.Bool(pick(row, cat, classActiveCols), true)

	return rec
}

// pick returns the value of the first alias group member that both exists
// in the catalog and holds a non-NULL value in the row. Alias groups are
// tried in order, so a structured column shadows its legacy fallback.
func pick(row map[string]any, cat schema.Catalog, groups ...[]string) any {
	for _, group := range groups {
		for _, cand := range group {
			col := cat.Resolve(cand)
			if col == "" {
				continue
			}
			if v, ok := row[strings.ToLower(col)]; ok && v != nil {
				return v
			}
		}
	}
	return nil
}

// collectRows drains rows into generic column-name to value maps. Keys are
// lower-cased to line up with catalog resolution.
func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []map[string]any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		m := make(map[string]any, len(fields))
		for i, fd := range fields {
			m[strings.ToLower(string(fd.Name))] = vals[i]
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
