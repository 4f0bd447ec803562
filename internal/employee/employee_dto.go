package employee

// PastServiceRequest mirrors one service-history row of the registration
// form. Dates are ISO strings (YYYY-MM-DD).
type PastServiceRequest struct {
	PostHeld     string `json:"post_held" binding:"required"`
	PostGroup    string `json:"post_group"`
	PostSubGroup string `json:"post_sub_group"`
	Institution  string `json:"institution" binding:"required"`
	District     string `json:"district" binding:"required"`
	Taluk        string `json:"taluk"`
	City         string `json:"city"`
	FromDate     string `json:"from_date" binding:"required"`
	ToDate       string `json:"to_date" binding:"required"`
	Kind         string `json:"kind"`
}

type CreateEmployeeRequest struct {
	KGID                string `json:"kgid" binding:"required"`
	FullName            string `json:"full_name" binding:"required"`
	Gender              string `json:"gender" binding:"required"`
	DateOfBirth         string `json:"date_of_birth" binding:"required"`
	DateOfJoining       string `json:"date_of_joining" binding:"required"`
	Designation         string `json:"designation" binding:"required"`
	DesignationGroup    string `json:"designation_group"`
	DesignationSubGroup string `json:"designation_sub_group"`

	PersonalEmail   string `json:"personal_email" binding:"required,email"`
	PersonalPhone   string `json:"personal_phone" binding:"required"`
	PersonalAddress string `json:"personal_address" binding:"required"`
	PersonalPinCode string `json:"personal_pin_code" binding:"required"`
	OfficeEmail     string `json:"office_email" binding:"required,email"`
	OfficePhone     string `json:"office_phone" binding:"required"`
	OfficeAddress   string `json:"office_address" binding:"required"`
	OfficePinCode   string `json:"office_pin_code" binding:"required"`

	CurrentInstitution   string `json:"current_institution" binding:"required"`
	CurrentDistrict      string `json:"current_district" binding:"required"`
	CurrentTaluk         string `json:"current_taluk"`
	CurrentCity          string `json:"current_city" binding:"required"`
	CurrentPositionSince string `json:"current_position_since" binding:"required"`

	SpecialConditions SpecialConditions    `json:"special_conditions"`
	PastServices      []PastServiceRequest `json:"past_services" binding:"required,min=1,dive"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

// ListFilter carries the browse/search parameters of the employee list.
// SearchMode selects the column the query matches against.
type ListFilter struct {
	Category   string // designation group, empty = all
	SearchMode string // "kgid" or "name"
	Query      string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID                 string `json:"id"`
	KGID               string `json:"kgid"`
	FullName           string `json:"full_name"`
	Designation        string `json:"designation"`
	DesignationGroup   string `json:"designation_group"`
	CurrentInstitution string `json:"current_institution"`
	CurrentDistrict    string `json:"current_district"`
	CurrentCity        string `json:"current_city"`
}

type PastServiceResponse struct {
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

// WorkHistoryEntry is the read model used by the detail view and by the
// transfer/promotion reports. An open-ended current posting carries the
// "Present" sentinel in ToDate.
type WorkHistoryEntry struct {
	City          string  `json:"city"`
	Hospital      string  `json:"hospital"`
	Position      string  `json:"position"`
	FromDate      string  `json:"from_date"`
	ToDate        string  `json:"to_date"`
	DurationYears float64 `json:"duration_years"`
	Kind          string  `json:"kind"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	Gender               string                `json:"gender"`
	DateOfBirth          string                `json:"date_of_birth"`
	DateOfJoining        string                `json:"date_of_joining"`
	DesignationSubGroup  string                `json:"designation_sub_group"`
	PersonalEmail        string                `json:"personal_email"`
	PersonalPhone        string                `json:"personal_phone"`
	PersonalAddress      string                `json:"personal_address"`
	PersonalPinCode      string                `json:"personal_pin_code"`
	OfficeEmail          string                `json:"office_email"`
	OfficePhone          string                `json:"office_phone"`
	OfficeAddress        string                `json:"office_address"`
	OfficePinCode        string                `json:"office_pin_code"`
	CurrentTaluk         string                `json:"current_taluk"`
	CurrentPositionSince string                `json:"current_position_since"`
	SpecialConditions    SpecialConditions     `json:"special_conditions"`
	PastServices         []PastServiceResponse `json:"past_services"`
	WorkHistory          []WorkHistoryEntry    `json:"work_history"`
}

type OptionResponse struct {
	ID       string `json:"id"`
	KGID     string `json:"kgid"`
	FullName string `json:"full_name"`
}
