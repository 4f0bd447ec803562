package analytics

import (
	"time"

	"transferdesk/internal/employee"
)

// EmployeeHistory is the slice of an employee the extractor needs: identity
// plus the chronological work-history read model.
type EmployeeHistory struct {
	ID       string
	KGID     string
	FullName string
	History  []employee.WorkHistoryEntry
}

// TransferRecord is derived from two consecutive work-history entries. It is
// computed on demand and never persisted.
type TransferRecord struct {
	EmployeeID   string `json:"employee_id"`
	KGID         string `json:"kgid"`
	EmployeeName string `json:"employee_name"`

	FromPosition string `json:"from_position"`
	FromCity     string `json:"from_city"`
	FromHospital string `json:"from_hospital"`
	ToPosition   string `json:"to_position"`
	ToCity       string `json:"to_city"`
	ToHospital   string `json:"to_hospital"`

	// Date is the later entry's start date, the day the move took effect.
	Date string `json:"date"`
	Year int    `json:"year"`

	IsCityTransfer bool `json:"is_city_transfer"`
	IsPromotion    bool `json:"is_promotion"`
}

// Dedupe collapses duplicate employees by ID. Later occurrences win (the
// lists a report merges are value-equal across overlapping fetches, so which
// copy survives does not matter, but the rule is fixed for determinism);
// first-seen order is kept.
func Dedupe(employees []EmployeeHistory) []EmployeeHistory {
	index := make(map[string]int, len(employees))
	out := make([]EmployeeHistory, 0, len(employees))
	for _, e := range employees {
		if i, seen := index[e.ID]; seen {
			out[i] = e
			continue
		}
		index[e.ID] = len(out)
		out = append(out, e)
	}
	return out
}

// ExtractTransfers walks each employee's history in array order and emits one
// record per consecutive pair. Fewer than two entries yields nothing.
func ExtractTransfers(employees []EmployeeHistory, cmp RankComparator) []TransferRecord {
	var records []TransferRecord
	for _, e := range employees {
		for i := 1; i < len(e.History); i++ {
			from := e.History[i-1]
			to := e.History[i]

			records = append(records, TransferRecord{
				EmployeeID:     e.ID,
				KGID:           e.KGID,
				EmployeeName:   e.FullName,
				FromPosition:   from.Position,
				FromCity:       from.City,
				FromHospital:   from.Hospital,
				ToPosition:     to.Position,
				ToCity:         to.City,
				ToHospital:     to.Hospital,
				Date:           to.FromDate,
				Year:           yearOf(to.FromDate),
				IsCityTransfer: from.City != to.City,
				IsPromotion:    cmp.Outranks(to.Position, from.Position),
			})
		}
	}
	return records
}

// ExtractPromotions filters the transfer stream down to rank increases.
func ExtractPromotions(employees []EmployeeHistory, cmp RankComparator) []TransferRecord {
	all := ExtractTransfers(employees, cmp)
	promotions := make([]TransferRecord, 0, len(all))
	for _, r := range all {
		if r.IsPromotion {
			promotions = append(promotions, r)
		}
	}
	return promotions
}

func yearOf(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Year()
}
