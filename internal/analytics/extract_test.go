package analytics_test

import (
	"testing"

	"transferdesk/internal/analytics"
	"transferdesk/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyEntry(city, position, from string) employee.WorkHistoryEntry {
	return employee.WorkHistoryEntry{
		City:     city,
		Hospital: city + " Hospital",
		Position: position,
		FromDate: from,
	}
}

func TestExtractTransfers(t *testing.T) {
	cmp := analytics.NewRankComparator()

	t.Run("single entry yields nothing", func(t *testing.T) {
		records := analytics.ExtractTransfers([]analytics.EmployeeHistory{{
			ID:      "e1",
			History: []employee.WorkHistoryEntry{historyEntry("Mysuru", "Staff Nurse", "2015-06-01")},
		}}, cmp)
		assert.Empty(t, records)
	})

	t.Run("two entries yield one record", func(t *testing.T) {
		records := analytics.ExtractTransfers([]analytics.EmployeeHistory{{
			ID: "e1",
			History: []employee.WorkHistoryEntry{
				historyEntry("Mysuru", "Staff Nurse", "2015-06-01"),
				historyEntry("Hassan", "Senior Staff Nurse", "2019-03-01"),
			},
		}}, cmp)

		require.Len(t, records, 1)
		r := records[0]
		assert.Equal(t, "Hassan", r.ToCity)
		assert.Equal(t, "Senior Staff Nurse", r.ToPosition)
		assert.Equal(t, "2019-03-01", r.Date)
		assert.Equal(t, 2019, r.Year)
		assert.True(t, r.IsCityTransfer)
		assert.True(t, r.IsPromotion)
	})

	t.Run("same city is not a city transfer", func(t *testing.T) {
		records := analytics.ExtractTransfers([]analytics.EmployeeHistory{{
			ID: "e1",
			History: []employee.WorkHistoryEntry{
				historyEntry("Mysuru", "Staff Nurse", "2015-06-01"),
				historyEntry("Mysuru", "Staff Nurse", "2019-03-01"),
			},
		}}, cmp)

		require.Len(t, records, 1)
		assert.False(t, records[0].IsCityTransfer)
		assert.False(t, records[0].IsPromotion)
	})

	t.Run("three entries yield two records", func(t *testing.T) {
		records := analytics.ExtractTransfers([]analytics.EmployeeHistory{{
			ID: "e1",
			History: []employee.WorkHistoryEntry{
				historyEntry("Mysuru", "Staff Nurse", "2012-01-01"),
				historyEntry("Hassan", "Staff Nurse", "2016-01-01"),
				historyEntry("Bengaluru", "Senior Staff Nurse", "2020-01-01"),
			},
		}}, cmp)
		assert.Len(t, records, 2)
	})
}

func TestExtractPromotions(t *testing.T) {
	cmp := analytics.NewRankComparator()

	records := analytics.ExtractPromotions([]analytics.EmployeeHistory{{
		ID: "e1",
		History: []employee.WorkHistoryEntry{
			historyEntry("Mysuru", "Staff Nurse", "2012-01-01"),
			historyEntry("Hassan", "Staff Nurse", "2016-01-01"),
			historyEntry("Bengaluru", "Senior Staff Nurse", "2020-01-01"),
		},
	}}, cmp)

	require.Len(t, records, 1)
	assert.Equal(t, "Senior Staff Nurse", records[0].ToPosition)
}

func TestDedupe(t *testing.T) {
	a := analytics.EmployeeHistory{ID: "e1", FullName: "First Copy"}
	b := analytics.EmployeeHistory{ID: "e2", FullName: "Other"}
	c := analytics.EmployeeHistory{ID: "e1", FullName: "Second Copy"}

	out := analytics.Dedupe([]analytics.EmployeeHistory{a, b, c})

	require.Len(t, out, 2)
	assert.Equal(t, "e1", out[0].ID)
	// Last-seen copy wins.
	assert.Equal(t, "Second Copy", out[0].FullName)
	assert.Equal(t, "e2", out[1].ID)
}
