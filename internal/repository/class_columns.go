package repository

// Physical column aliases for the classes table. Deployments have renamed
// these columns over the years; each canonical field lists every spelling
// seen in the wild, most recent first. Resolution is first-match against
// the live column catalog.
//
// The two list-valued fields each have a structured variant (a single
// column holding a JSON array) and a legacy scalar variant (a
// comma-separated string). The structured form wins when both exist.

const (
	classTable    = "classes"
	categoryTable = "categories"
)

var (
	classIDCols         = []string{"id", "class_id", "idx"}
	classNameCols       = []string{"name", "class_name", "title"}
	classCodeCols       = []string{"code", "class_code", "access_code"}
	classCategoryCols   = []string{"category", "class_category", "category_name"}
	classCategoryIDCols = []string{"category_id", "class_category_id"}
	classStartCols      = []string{"start_date", "startdate", "begin_date"}
	classEndCols        = []string{"end_date", "enddate", "finish_date"}
	classUploadTimeCols = []string{"assignment_upload_time", "upload_time", "assignment_time"}
	classActiveCols     = []string{"is_active", "active", "enabled"}
	classCreatedCols    = []string{"created_at", "createdat", "reg_date"}
	classUpdatedCols    = []string{"updated_at", "updatedat", "mod_date"}

	classUploadDaysCols       = []string{"assignment_upload_days", "upload_days"}
	classUploadDaysLegacyCols = []string{"assignment_upload_day", "upload_day"}
	classMethodsCols          = []string{"delivery_methods", "methods"}
	classMethodsLegacyCols    = []string{"delivery_method", "method"}
)

// defaultDeliveryMethods is what a class falls back to when no delivery
// method was ever recorded: plain VOD viewing.
var defaultDeliveryMethods = []string{"영상보기"}
