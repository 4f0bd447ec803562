package employee

import (
	"math"
	"time"
)

// PresentSentinel marks an open-ended current posting in the work-history
// read model.
const PresentSentinel = "Present"

// BuildWorkHistory projects an employee's stored service records plus the
// denormalized current posting into the chronological read model used by the
// detail view and the transfer/promotion reports. The current posting is
// always the final entry and is tagged explicitly; readers must rely on the
// kind tag, not on position.
func BuildWorkHistory(e *Employee) []WorkHistoryEntry {
	entries := make([]WorkHistoryEntry, 0, len(e.PastServices)+1)

	for _, ps := range e.PastServices {
		kind := ps.Kind
		if kind == "" {
			kind = ServiceKindPast
		}
		entries = append(entries, WorkHistoryEntry{
			City:          ps.City,
			Hospital:      ps.Institution,
			Position:      ps.PostHeld,
			FromDate:      ps.FromDate.Format(dateLayout),
			ToDate:        ps.ToDate.Format(dateLayout),
			DurationYears: durationYears(ps.FromDate, ps.ToDate),
			Kind:          kind,
		})
	}

	if !e.CurrentPositionSince.IsZero() {
		entries = append(entries, WorkHistoryEntry{
			City:          e.CurrentCity,
			Hospital:      e.CurrentInstitution,
			Position:      e.Designation,
			FromDate:      e.CurrentPositionSince.Format(dateLayout),
			ToDate:        PresentSentinel,
			DurationYears: durationYears(e.CurrentPositionSince, time.Now()),
			Kind:          ServiceKindCurrent,
		})
	}

	return entries
}

func durationYears(from, to time.Time) float64 {
	if to.Before(from) {
		return 0
	}
	years := to.Sub(from).Hours() / 24 / 365.25
	return math.Round(years*10) / 10
}
