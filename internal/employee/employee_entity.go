package employee

import (
	"time"

	"github.com/google/uuid"
)

// Service entry kinds. Every stored entry carries an explicit kind; the
// "last array element is current" convention of legacy exports is resolved
// at ingestion and never relied on afterwards.
const (
	ServiceKindCurrent    = "current"
	ServiceKindPast       = "past"
	ServiceKindAdditional = "additional"
	ServiceKindRural      = "rural"
	ServiceKindContract   = "contract"
	ServiceKindAdmin      = "admin"
)

// SpecialConditions are the transfer-priority flags from the registration
// form. Each flag set to true requires a supporting document; the pairing is
// enforced by the registration validator, not by the schema.
type SpecialConditions struct {
	ProbationaryPeriod          bool   `json:"probationary_period"`
	ProbationaryPeriodDoc       string `json:"probationary_period_doc,omitempty"`
	TerminalIllness             bool   `json:"terminal_illness"`
	TerminalIllnessDoc          string `json:"terminal_illness_doc,omitempty"`
	PregnancyOrChildUnderOne    bool   `json:"pregnancy_or_child_under_one"`
	PregnancyOrChildUnderOneDoc string `json:"pregnancy_or_child_under_one_doc,omitempty"`
	RetiringWithinTwoYears      bool   `json:"retiring_within_two_years"`
	RetiringWithinTwoYearsDoc   string `json:"retiring_within_two_years_doc,omitempty"`
	Disability                  bool   `json:"disability"`
	DisabilityDoc               string `json:"disability_doc,omitempty"`
	WidowOrDivorceeWithChild    bool   `json:"widow_or_divorcee_with_child"`
	WidowOrDivorceeWithChildDoc string `json:"widow_or_divorcee_with_child_doc,omitempty"`
	SpouseGovernmentServant     bool   `json:"spouse_government_servant"`
	SpouseGovernmentServantDoc  string `json:"spouse_government_servant_doc,omitempty"`
}

type Employee struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	KGID string    `gorm:"uniqueIndex:uq_employee_kgid"`

	FullName            string
	Gender              string
	DateOfBirth         time.Time
	DateOfJoining       time.Time
	Designation         string
	DesignationGroup    string `gorm:"index"`
	DesignationSubGroup string

	PersonalEmail   string
	PersonalPhone   string
	PersonalAddress string
	PersonalPinCode string
	OfficeEmail     string
	OfficePhone     string
	OfficeAddress   string
	OfficePinCode   string

	// Current posting is a denormalized snapshot, separate from history.
	CurrentInstitution   string
	CurrentDistrict      string
	CurrentTaluk         string
	CurrentCity          string
	CurrentPositionSince time.Time

	SpecialConditions SpecialConditions `gorm:"embedded"`

	PastServices []PastService `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PastService struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Seq        int

	PostHeld     string
	PostGroup    string
	PostSubGroup string
	Institution  string
	District     string
	Taluk        string
	City         string

	FromDate time.Time
	ToDate   time.Time
	// Tenure is a display cache recomputed from the two dates on every
	// write; it is never authoritative on its own.
	Tenure string
	Kind   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
