package designation

type DesignationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Group    string `json:"group"`
	SubGroup string `json:"sub_group"`
	Rank     int    `json:"rank"`
}

type GroupResponse struct {
	Group     string   `json:"group"`
	SubGroups []string `json:"sub_groups"`
}
