package registration

import (
	"time"

	registrationerrors "transferdesk/internal/registration/errors"
	"transferdesk/internal/shared/tenure"
)

// PositionSelection fans out into the three denormalized post fields of an
// entry.
type PositionSelection struct {
	PostHeld     string `json:"post_held"`
	PostGroup    string `json:"post_group"`
	PostSubGroup string `json:"post_sub_group"`
}

// EntryPatch updates a single service entry. Nil pointers leave fields
// untouched. Position and ClearPosition are mutually exclusive; ClearPosition
// empties all three post fields at once.
type EntryPatch struct {
	Position      *PositionSelection `json:"position,omitempty"`
	ClearPosition bool               `json:"clear_position,omitempty"`
	Institution   *string            `json:"institution,omitempty"`
	District      *string            `json:"district,omitempty"`
	Taluk         *string            `json:"taluk,omitempty"`
	City          *string            `json:"city,omitempty"`
	FromDate      *string            `json:"from_date,omitempty"`
	ToDate        *string            `json:"to_date,omitempty"`
	Kind          *string            `json:"kind,omitempty"`
}

// AddServiceEntry appends a blank entry to the form's service list.
func AddServiceEntry(f *FormState) {
	f.PastServices = append(f.PastServices, ServiceEntry{})
}

// RemoveServiceEntry deletes the entry at i, preserving the order of the
// rest. The last remaining entry can never be removed.
func RemoveServiceEntry(f *FormState, i int) error {
	if i < 0 || i >= len(f.PastServices) {
		return registrationerrors.ErrEntryIndexOutOfRange
	}
	if len(f.PastServices) <= 1 {
		return registrationerrors.ErrLastEntry
	}
	f.PastServices = append(f.PastServices[:i], f.PastServices[i+1:]...)
	return nil
}

// UpdateServiceEntry applies a patch to the entry at i. A change to either
// date recomputes the cached tenure string; it stays empty while either date
// is missing or unparseable.
func UpdateServiceEntry(f *FormState, i int, patch EntryPatch) error {
	if i < 0 || i >= len(f.PastServices) {
		return registrationerrors.ErrEntryIndexOutOfRange
	}

	e := &f.PastServices[i]

	switch {
	case patch.ClearPosition:
		e.PostHeld, e.PostGroup, e.PostSubGroup = "", "", ""
	case patch.Position != nil:
		e.PostHeld = patch.Position.PostHeld
		e.PostGroup = patch.Position.PostGroup
		e.PostSubGroup = patch.Position.PostSubGroup
	}

	if patch.Institution != nil {
		e.Institution = *patch.Institution
	}
	if patch.District != nil {
		e.District = *patch.District
	}
	if patch.Taluk != nil {
		e.Taluk = *patch.Taluk
	}
	if patch.City != nil {
		e.City = *patch.City
	}
	if patch.Kind != nil {
		e.Kind = *patch.Kind
	}

	if patch.FromDate != nil || patch.ToDate != nil {
		if patch.FromDate != nil {
			e.FromDate = *patch.FromDate
		}
		if patch.ToDate != nil {
			e.ToDate = *patch.ToDate
		}
		e.Tenure = entryTenure(e.FromDate, e.ToDate)
	}

	return nil
}

func entryTenure(fromDate, toDate string) string {
	if fromDate == "" || toDate == "" {
		return ""
	}
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return ""
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return ""
	}
	return tenure.Between(from, to)
}
