package transfer

// TransferRequest installs a new posting. Position fields are optional; a
// blank position keeps the employee's current designation (a pure location
// move).
type TransferRequest struct {
	ToInstitution string `json:"to_institution" binding:"required"`
	ToDistrict    string `json:"to_district" binding:"required"`
	ToTaluk       string `json:"to_taluk"`
	ToCity        string `json:"to_city" binding:"required"`
	ToPosition    string `json:"to_position"`
	EffectiveFrom string `json:"effective_from" binding:"required"`
}

type ListFilter struct {
	Page  int
	Limit int
}

type TransferResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	EmployeeID  string `json:"employee_id"`

	FromInstitution string `json:"from_institution"`
	FromDistrict    string `json:"from_district"`
	FromTaluk       string `json:"from_taluk"`
	FromCity        string `json:"from_city"`
	FromPosition    string `json:"from_position"`

	ToInstitution string `json:"to_institution"`
	ToDistrict    string `json:"to_district"`
	ToTaluk       string `json:"to_taluk"`
	ToCity        string `json:"to_city"`
	ToPosition    string `json:"to_position"`

	EffectiveFrom string `json:"effective_from"`
	CreatedAt     string `json:"created_at"`
}
