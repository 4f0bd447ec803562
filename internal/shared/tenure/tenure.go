// Package tenure renders the elapsed time between two service dates as a
// human-readable duration ("3 years 6 months", "10 months", "< 1 month").
package tenure

import (
	"fmt"
	"strings"
	"time"
)

// Between computes the display tenure for a service period. Both dates must
// be known; callers with a missing date use the empty string instead.
// Day-of-month is ignored: the difference is calendar months only.
func Between(from, to time.Time) string {
	totalMonths := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if totalMonths < 0 {
		totalMonths = 0
	}

	years := totalMonths / 12
	months := totalMonths % 12

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", years, pluralize("year", years)))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", months, pluralize("month", months)))
	}

	if len(parts) == 0 {
		return "< 1 month"
	}
	return strings.Join(parts, " ")
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
