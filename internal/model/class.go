package model

// ClassRecord is the canonical shape of a course/class, regardless of
// which physical columns the backing table happens to carry. Nullable
// fields serialize as JSON null rather than being omitted so the admin UI
// always sees a complete object.
type ClassRecord struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Code                 *string  `json:"code"`
	Category             *string  `json:"category"`
	CategoryID           *int     `json:"categoryId"`
	StartDate            *string  `json:"startDate"`
	EndDate              *string  `json:"endDate"`
	AssignmentUploadTime string   `json:"assignmentUploadTime"`
	AssignmentUploadDays []string `json:"assignmentUploadDays"`
	DeliveryMethods      []string `json:"deliveryMethods"`
	IsActive             bool     `json:"isActive"`
	CreatedAt            *string  `json:"createdAt"`
	UpdatedAt            *string  `json:"updatedAt"`
}

// ClassInput is the create/update payload for a class. Fields are typed
// `any` on purpose: clients (and years of stored rows) disagree about
// representations: list fields arrive as arrays, JSON-encoded strings, or
// comma-separated strings; booleans as 0/1 or "true". Normalization
// happens in the repository, not at the binding layer. A nil field means
// "not supplied", which on update means "keep the existing value".
type ClassInput struct {
	Name                 any `json:"name"`
	Code                 any `json:"code"`
	Category             any `json:"category"`
	CategoryID           any `json:"categoryId"`
	StartDate            any `json:"startDate"`
	EndDate              any `json:"endDate"`
	AssignmentUploadTime any `json:"assignmentUploadTime"`
	AssignmentUploadDays any `json:"assignmentUploadDays"`
	DeliveryMethods      any `json:"deliveryMethods"`
	IsActive             any `json:"isActive"`
}
