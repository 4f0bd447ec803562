package employee_test

import (
	"testing"
	"time"

	"transferdesk/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkHistory(t *testing.T) {
	e := &employee.Employee{
		Designation:          "Senior Staff Nurse",
		CurrentInstitution:   "District Hospital Mysuru",
		CurrentCity:          "Mysuru",
		CurrentPositionSince: time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC),
		PastServices: []employee.PastService{
			{
				PostHeld:    "Staff Nurse",
				Institution: "Taluk Hospital Hunsur",
				City:        "Hunsur",
				FromDate:    time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC),
				ToDate:      time.Date(2021, time.January, 31, 0, 0, 0, 0, time.UTC),
				Kind:        employee.ServiceKindPast,
			},
		},
	}

	history := employee.BuildWorkHistory(e)
	require.Len(t, history, 2)

	past := history[0]
	assert.Equal(t, "Hunsur", past.City)
	assert.Equal(t, "2015-06-01", past.FromDate)
	assert.Equal(t, "2021-01-31", past.ToDate)
	assert.Equal(t, employee.ServiceKindPast, past.Kind)
	assert.InDelta(t, 5.7, past.DurationYears, 0.2)

	current := history[1]
	assert.Equal(t, "Mysuru", current.City)
	assert.Equal(t, "Senior Staff Nurse", current.Position)
	assert.Equal(t, employee.PresentSentinel, current.ToDate)
	assert.Equal(t, employee.ServiceKindCurrent, current.Kind)
	assert.Greater(t, current.DurationYears, 0.0)
}

func TestBuildWorkHistory_UntaggedEntriesDefaultToPast(t *testing.T) {
	e := &employee.Employee{
		PastServices: []employee.PastService{{
			FromDate: time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	history := employee.BuildWorkHistory(e)
	require.Len(t, history, 1)
	assert.Equal(t, employee.ServiceKindPast, history[0].Kind)
}
