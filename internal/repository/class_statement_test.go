package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/normalize"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestClassValuesForCreateDefaults(t *testing.T) {
	v := classValuesForCreate(model.ClassInput{Name: "Fall Cohort"}, nil)

	assert.Equal(t, "Fall Cohort", v.name)
	assert.Nil(t, v.code)
	assert.Nil(t, v.categoryID)
	assert.Equal(t, normalize.UploadTimeAllDay, v.uploadTime)
	assert.Equal(t, normalize.AllWeekdays(), v.uploadDays)
	assert.Equal(t, []string{"영상보기"}, v.methods)
	assert.True(t, v.isActive)
}

func TestClassValuesForCreateEmptyDaysGetFullWeek(t *testing.T) {
	v := classValuesForCreate(model.ClassInput{
		Name:                 "Fall Cohort",
		AssignmentUploadDays: []any{},
	}, nil)
	assert.Equal(t, normalize.AllWeekdays(), v.uploadDays)
}

func TestClassValuesForUpdatePreservesUntouchedFields(t *testing.T) {
	category := "A"
	code := "C-1"
	existing := model.ClassRecord{
		ID:                   9,
		Name:                 "Old Name",
		Code:                 &code,
		Category:             &category,
		AssignmentUploadTime: normalize.UploadTimeSameDay,
		AssignmentUploadDays: []string{"월", "수"},
		DeliveryMethods:      []string{"대면수업"},
		IsActive:             false,
	}

	v := classValuesForUpdate(model.ClassInput{Name: "New Name"}, existing, nil)

	assert.Equal(t, "New Name", v.name)
	require.NotNil(t, v.category)
	assert.Equal(t, "A", *v.category)
	require.NotNil(t, v.code)
	assert.Equal(t, "C-1", *v.code)
	assert.Equal(t, normalize.UploadTimeSameDay, v.uploadTime)
	assert.Equal(t, []string{"월", "수"}, v.uploadDays)
	assert.Equal(t, []string{"대면수업"}, v.methods)
	assert.False(t, v.isActive)
}

func TestClassValuesForUpdateOverridesSuppliedFields(t *testing.T) {
	existing := model.ClassRecord{
		Name:                 "Old",
		AssignmentUploadTime: normalize.UploadTimeAllDay,
		AssignmentUploadDays: normalize.AllWeekdays(),
		DeliveryMethods:      []string{"영상보기"},
		IsActive:             true,
	}

	v := classValuesForUpdate(model.ClassInput{
		AssignmentUploadTime: "day_only",
		AssignmentUploadDays: "토,일",
		DeliveryMethods:      []any{"대면수업", "대면수업"},
		IsActive:             "no",
	}, existing, nil)

	assert.Equal(t, "Old", v.name)
	assert.Equal(t, normalize.UploadTimeSameDay, v.uploadTime)
	assert.Equal(t, []string{"토", "일"}, v.uploadDays)
	assert.Equal(t, []string{"대면수업"}, v.methods)
	assert.False(t, v.isActive)
}

func TestBuildClassInsertModernSchema(t *testing.T) {
	cat := testCatalog("id", "name", "code", "category", "category_id",
		"start_date", "end_date", "assignment_upload_time",
		"assignment_upload_days", "delivery_methods", "is_active",
		"created_at", "updated_at")

	catID := 7
	v := classValuesForCreate(model.ClassInput{
		Name:            "Fall Cohort",
		DeliveryMethods: []any{"영상보기", "대면수업"},
	}, &catID)

	sql, args, err := buildClassInsert(cat, v, testNow)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "INSERT INTO classes ("))
	assert.True(t, strings.HasSuffix(sql, `RETURNING "id"`))
	assert.Contains(t, sql, `"name"`)
	assert.Contains(t, sql, `"delivery_methods"`)
	assert.Contains(t, sql, `"created_at"`)

	// Placeholders line up with bound values.
	assert.Equal(t, strings.Count(sql, "$"), len(args))
	assert.Equal(t, "Fall Cohort", args[0])
	assert.Contains(t, args, `["영상보기","대면수업"]`)
	assert.Contains(t, args, &catID)
	assert.Contains(t, args, testNow)
}

func TestBuildClassInsertLegacySchema(t *testing.T) {
	cat := testCatalog("idx", "class_name", "upload_day", "delivery_method", "reg_date")

	v := classValuesForCreate(model.ClassInput{
		Name:                 "야간반",
		AssignmentUploadDays: []any{"일", "토"},
		DeliveryMethods:      []any{"영상보기"},
	}, nil)

	sql, args, err := buildClassInsert(cat, v, testNow)
	require.NoError(t, err)

	// Only columns that exist make it into the statement, lists go in as
	// comma-joined strings, and the id comes back from the legacy column.
	assert.Contains(t, sql, `"class_name"`)
	assert.Contains(t, sql, `"upload_day"`)
	assert.Contains(t, sql, `"delivery_method"`)
	assert.Contains(t, sql, `"reg_date"`)
	assert.NotContains(t, sql, `"code"`)
	assert.NotContains(t, sql, `"category"`)
	assert.NotContains(t, sql, `"is_active"`)
	assert.True(t, strings.HasSuffix(sql, `RETURNING "idx"`))

	assert.Contains(t, args, "토,일")
	assert.Contains(t, args, "영상보기")
}

func TestBuildClassInsertNoNameColumn(t *testing.T) {
	cat := testCatalog("id", "code", "category")

	_, _, err := buildClassInsert(cat, classValuesForCreate(model.ClassInput{Name: "x"}, nil), testNow)
	assert.ErrorIs(t, err, ErrNoNameColumn)

	_, _, err = buildClassUpdate(cat, 1, classValuesForCreate(model.ClassInput{Name: "x"}, nil), testNow)
	assert.ErrorIs(t, err, ErrNoNameColumn)
}

func TestBuildClassUpdate(t *testing.T) {
	cat := testCatalog("id", "name", "category", "updated_at")

	v := classValuesForCreate(model.ClassInput{Name: "Renamed", Category: "B"}, nil)
	sql, args, err := buildClassUpdate(cat, 9, v, testNow)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "UPDATE classes SET "))
	assert.Contains(t, sql, `"name" = $1`)
	assert.Contains(t, sql, `"updated_at" = `)
	assert.True(t, strings.HasSuffix(sql, fmt.Sprintf(`WHERE "id" = $%d`, len(args))))

	assert.Equal(t, "Renamed", args[0])
	assert.Contains(t, args, testNow)
	assert.Equal(t, 9, args[len(args)-1])
}

func TestListEncodingRoundTrip(t *testing.T) {
	methods := []any{"영상보기", "대면수업", "영상보기"}

	// JSON form: statement encodes, mapper decodes, order preserved.
	jsonCat := testCatalog("id", "name", "delivery_methods")
	v := classValuesForCreate(model.ClassInput{Name: "x", DeliveryMethods: methods}, nil)
	_, args, err := buildClassInsert(jsonCat, v, testNow)
	require.NoError(t, err)

	rec := classFromRow(jsonCat, map[string]any{
		"id": 1, "name": "x", "delivery_methods": args[1],
	})
	assert.Equal(t, []string{"영상보기", "대면수업"}, rec.DeliveryMethods)

	// CSV form through the legacy scalar column.
	csvCat := testCatalog("id", "name", "delivery_method")
	_, args, err = buildClassInsert(csvCat, v, testNow)
	require.NoError(t, err)

	rec = classFromRow(csvCat, map[string]any{
		"id": 1, "name": "x", "delivery_method": args[1],
	})
	assert.Equal(t, []string{"영상보기", "대면수업"}, rec.DeliveryMethods)
}
