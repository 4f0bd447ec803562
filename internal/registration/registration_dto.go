package registration

// StartDraftRequest opens a wizard draft. EmployeeID switches the draft into
// edit mode, preloading the form from the stored record.
type StartDraftRequest struct {
	EmployeeID string `json:"employee_id"`
}

type UpdateFormRequest struct {
	Form FormState `json:"form" binding:"required"`
}

type UpdateEntryRequest struct {
	Patch EntryPatch `json:"patch"`
}

type EditSectionRequest struct {
	Section int `json:"section" binding:"required"`
}

type UpdateDeclarationsRequest struct {
	Declarations Declarations `json:"declarations"`
}

type DraftResponse struct {
	Draft
	Errors map[string]string `json:"errors,omitempty"`
}

// ValidationError carries the field-keyed map produced by the section or
// declaration validator when a guarded transition is blocked.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "form validation failed"
}
