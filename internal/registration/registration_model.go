package registration

import (
	"time"

	"transferdesk/internal/employee"

	"github.com/google/uuid"
)

// Wizard steps. There is no terminal step; a successful submit deletes the
// draft.
const (
	StepFill    = "fill"
	StepPreview = "preview"
	StepDeclare = "declare"
)

// Numbered form sections. EditingSection on a draft is 0 when all sections
// are open (the normal linear fill flow) or 1..7 while a single section is
// being corrected from preview.
const (
	SectionAll = 0
	SectionMin = 1
	SectionMax = 7
)

// ServiceEntry is one service-history row of the form. Dates are ISO strings
// (YYYY-MM-DD); Tenure is recomputed from the pair on every date change and
// is empty while either date is missing.
type ServiceEntry struct {
	PostHeld     string `json:"post_held"`
	PostGroup    string `json:"post_group"`
	PostSubGroup string `json:"post_sub_group"`
	Institution  string `json:"institution"`
	District     string `json:"district"`
	Taluk        string `json:"taluk"`
	City         string `json:"city"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	Tenure       string `json:"tenure"`
	Kind         string `json:"kind"`
}

// FormState holds sections 1 through 7 of the registration form.
type FormState struct {
	KGID                string `json:"kgid"`
	FullName            string `json:"full_name"`
	Gender              string `json:"gender"`
	DateOfBirth         string `json:"date_of_birth"`
	DateOfJoining       string `json:"date_of_joining"`
	Designation         string `json:"designation"`
	DesignationGroup    string `json:"designation_group"`
	DesignationSubGroup string `json:"designation_sub_group"`

	PersonalEmail   string `json:"personal_email"`
	PersonalPhone   string `json:"personal_phone"`
	PersonalAddress string `json:"personal_address"`
	PersonalPinCode string `json:"personal_pin_code"`
	OfficeEmail     string `json:"office_email"`
	OfficePhone     string `json:"office_phone"`
	OfficeAddress   string `json:"office_address"`
	OfficePinCode   string `json:"office_pin_code"`

	CurrentInstitution   string `json:"current_institution"`
	CurrentDistrict      string `json:"current_district"`
	CurrentTaluk         string `json:"current_taluk"`
	CurrentCity          string `json:"current_city"`
	CurrentPositionSince string `json:"current_position_since"`

	SpecialConditions employee.SpecialConditions `json:"special_conditions"`
	PastServices      []ServiceEntry             `json:"past_services"`
}

// DeclarationBlock is one signer's declaration. Name and date are only
// required once the signer has agreed.
type DeclarationBlock struct {
	Agreed        bool   `json:"agreed"`
	SignerName    string `json:"signer_name"`
	SignatureDate string `json:"signature_date"`
}

type Declarations struct {
	Employee         DeclarationBlock `json:"employee"`
	ReportingOfficer DeclarationBlock `json:"reporting_officer"`
}

// Draft is the server-held wizard state. EmployeeID is set when the draft
// edits an existing record; submit then updates instead of creating.
type Draft struct {
	ID             string       `json:"id"`
	EmployeeID     string       `json:"employee_id,omitempty"`
	Step           string       `json:"step"`
	EditingSection int          `json:"editing_section"`
	Form           FormState    `json:"form"`
	Declarations   Declarations `json:"declarations"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewDraft starts a fresh draft in the fill step with the single default
// service entry the form always opens with.
func NewDraft(employeeID string) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		Step:           StepFill,
		EditingSection: SectionAll,
		Form: FormState{
			PastServices: []ServiceEntry{{}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
