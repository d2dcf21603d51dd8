package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/normalize"
	"github.com/classumlab/classroom-backend/internal/schema"
)

// classValues is a fully normalized set of class field values, ready to be
// bound into a statement. It is produced either from payload + defaults
// (create) or from payload merged over the existing record (update), so
// the builders never have to know which path they are on.
type classValues struct {
	name       string
	code       *string
	category   *string
	categoryID *int
	startDate  *string
	endDate    *string
	uploadTime string
	uploadDays []string
	methods    []string
	isActive   bool
}

// classValuesForCreate normalizes a create payload, substituting the
// documented default for every field the payload leaves out.
func classValuesForCreate(in model.ClassInput, categoryID *int) classValues {
	v := classValues{
		code:       normalize.String(in.Code),
		category:   normalize.String(in.Category),
		categoryID: categoryID,
		startDate:  normalize.DateString(in.StartDate),
		endDate:    normalize.DateString(in.EndDate),
		uploadTime: normalize.UploadTime(in.AssignmentUploadTime, normalize.UploadTimeAllDay),
		uploadDays: normalize.Weekdays(in.AssignmentUploadDays),
		methods:    normalize.StringList(in.DeliveryMethods),
		isActive:   normalize.Bool(in.IsActive, true),
	}
	if name := normalize.String(in.Name); name != nil {
		v.name = *name
	}
	if len(v.uploadDays) == 0 {
		v.uploadDays = normalize.AllWeekdays()
	}
	if len(v.methods) == 0 {
		v.methods = append([]string(nil), defaultDeliveryMethods...)
	}
	return v
}

// classValuesForUpdate merges a partial payload over the existing record:
// any field the payload does not carry keeps its stored value, so a
// partial update can never clobber an untouched field with a default.
func classValuesForUpdate(in model.ClassInput, existing model.ClassRecord, categoryID *int) classValues {
	v := classValues{
		name:       existing.Name,
		code:       existing.Code,
		category:   existing.Category,
		categoryID: categoryID,
		startDate:  existing.StartDate,
		endDate:    existing.EndDate,
		uploadTime: existing.AssignmentUploadTime,
		uploadDays: existing.AssignmentUploadDays,
		methods:    existing.DeliveryMethods,
		isActive:   existing.IsActive,
	}

	if in.Name != nil {
		if name := normalize.String(in.Name); name != nil {
			v.name = *name
		}
	}
	if in.Code != nil {
		v.code = normalize.String(in.Code)
	}
	if in.Category != nil {
		v.category = normalize.String(in.Category)
	}
	if in.StartDate != nil {
		v.startDate = normalize.DateString(in.StartDate)
	}
	if in.EndDate != nil {
		v.endDate = normalize.DateString(in.EndDate)
	}
	if in.AssignmentUploadTime != nil {
		v.uploadTime = normalize.UploadTime(in.AssignmentUploadTime, existing.AssignmentUploadTime)
	}
	if in.AssignmentUploadDays != nil {
		v.uploadDays = normalize.Weekdays(in.AssignmentUploadDays)
		if len(v.uploadDays) == 0 {
			v.uploadDays = normalize.AllWeekdays()
		}
	}
	if in.DeliveryMethods != nil {
		v.methods = normalize.StringList(in.DeliveryMethods)
		if len(v.methods) == 0 {
			v.methods = append([]string(nil), defaultDeliveryMethods...)
		}
	}
	if in.IsActive != nil {
		v.isActive = normalize.Bool(in.IsActive, existing.IsActive)
	}

	return v
}

// buildClassInsert constructs an INSERT over exactly the columns the live
// schema carries. A resolvable name column is a hard precondition; every
// other field is silently omitted when no matching column exists. The
// statement returns the new row's id.
func buildClassInsert(cat schema.Catalog, v classValues, now time.Time) (string, []any, error) {
	nameCol := cat.Resolve(classNameCols...)
	if nameCol == "" {
		return "", nil, ErrNoNameColumn
	}

	cols := []string{nameCol}
	args := []any{v.name}
	add := func(col string, val any) {
		if col != "" {
			cols = append(cols, col)
			args = append(args, val)
		}
	}

	add(cat.Resolve(classCodeCols...), v.code)
	add(cat.Resolve(classCategoryCols...), v.category)
	add(cat.Resolve(classCategoryIDCols...), v.categoryID)
	add(cat.Resolve(classStartCols...), v.startDate)
	add(cat.Resolve(classEndCols...), v.endDate)
	add(cat.Resolve(classUploadTimeCols...), v.uploadTime)
	addList(add, cat, classUploadDaysCols, classUploadDaysLegacyCols, v.uploadDays)
	addList(add, cat, classMethodsCols, classMethodsLegacyCols, v.methods)
	add(cat.Resolve(classActiveCols...), v.isActive)
	add(cat.Resolve(classCreatedCols...), now)
	add(cat.Resolve(classUpdatedCols...), now)

	idCol := cat.Resolve(classIDCols...)
	if idCol == "" {
		idCol = "id"
	}

	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		params[i] = fmt.Sprintf("$%d", i+1)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		classTable,
		strings.Join(quoted, ", "),
		strings.Join(params, ", "),
		pgx.Identifier{idCol}.Sanitize(),
	)
	return sql, args, nil
}

// buildClassUpdate constructs an UPDATE with the same column gating as
// the insert path. The updated-at column, when present, is always
// refreshed even if the payload touched nothing else.
func buildClassUpdate(cat schema.Catalog, id int, v classValues, now time.Time) (string, []any, error) {
	nameCol := cat.Resolve(classNameCols...)
	if nameCol == "" {
		return "", nil, ErrNoNameColumn
	}

	cols := []string{nameCol}
	args := []any{v.name}
	add := func(col string, val any) {
		if col != "" {
			cols = append(cols, col)
			args = append(args, val)
		}
	}

	add(cat.Resolve(classCodeCols...), v.code)
	add(cat.Resolve(classCategoryCols...), v.category)
	add(cat.Resolve(classCategoryIDCols...), v.categoryID)
	add(cat.Resolve(classStartCols...), v.startDate)
	add(cat.Resolve(classEndCols...), v.endDate)
	add(cat.Resolve(classUploadTimeCols...), v.uploadTime)
	addList(add, cat, classUploadDaysCols, classUploadDaysLegacyCols, v.uploadDays)
	addList(add, cat, classMethodsCols, classMethodsLegacyCols, v.methods)
	add(cat.Resolve(classActiveCols...), v.isActive)
	add(cat.Resolve(classUpdatedCols...), now)

	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{col}.Sanitize(), i+1)
	}

	idCol := cat.Resolve(classIDCols...)
	if idCol == "" {
		idCol = "id"
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		classTable,
		strings.Join(sets, ", "),
		pgx.Identifier{idCol}.Sanitize(),
		len(args),
	)
	return sql, args, nil
}

// addList binds a list field to whichever column shape the schema has:
// JSON into the structured column when it exists, a comma-joined string
// into the legacy scalar column otherwise. Absent both, the field is
// dropped like any other missing column.
func addList(add func(string, any), cat schema.Catalog, structured, legacy []string, items []string) {
	if col := cat.Resolve(structured...); col != "" {
		encoded, _ := json.Marshal(items)
		add(col, string(encoded))
		return
	}
	if col := cat.Resolve(legacy...); col != "" {
		add(col, strings.Join(items, ","))
	}
}
