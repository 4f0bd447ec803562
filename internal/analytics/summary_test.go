package analytics_test

import (
	"testing"

	"transferdesk/internal/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(year int, date, fromCity, toCity string, promotion bool) analytics.TransferRecord {
	return analytics.TransferRecord{
		Year:           year,
		Date:           date,
		FromCity:       fromCity,
		ToCity:         toCity,
		IsCityTransfer: fromCity != toCity,
		IsPromotion:    promotion,
	}
}

func TestComputeSummary(t *testing.T) {
	transfers := []analytics.TransferRecord{
		record(2020, "2020-03-01", "Mysuru", "Hassan", false),
		record(2020, "2020-09-01", "Hassan", "Bengaluru", true),
		record(2022, "2022-01-01", "Mysuru", "Bengaluru", false),
		record(2021, "2021-06-01", "Bengaluru", "Bengaluru", true),
	}

	s := analytics.ComputeSummary(transfers, 2, 3)

	assert.Equal(t, 4, s.TotalTransfers)
	assert.Equal(t, 2, s.TotalPromotions)
	assert.Equal(t, 3, s.TotalCityTransfers)

	require.Len(t, s.YearBuckets, 3)
	assert.Equal(t, []analytics.YearBucket{
		{Year: 2020, Transfers: 2, Promotions: 1},
		{Year: 2021, Transfers: 1, Promotions: 1},
		{Year: 2022, Transfers: 1},
	}, s.YearBuckets)

	require.Len(t, s.TopDestinations, 2)
	assert.Equal(t, analytics.CityCount{City: "Bengaluru", Count: 3}, s.TopDestinations[0])

	require.Len(t, s.Recent, 3)
	assert.Equal(t, "2022-01-01", s.Recent[0].Date)
	assert.Equal(t, "2021-06-01", s.Recent[1].Date)
}

func TestComputeSummary_Empty(t *testing.T) {
	s := analytics.ComputeSummary(nil, 5, 10)
	assert.Zero(t, s.TotalTransfers)
	assert.Empty(t, s.YearBuckets)
	assert.Empty(t, s.TopDestinations)
	assert.Empty(t, s.Recent)
}

func TestRankComparator(t *testing.T) {
	cmp := analytics.NewRankComparator()

	t.Run("table lookup", func(t *testing.T) {
		assert.True(t, cmp.Outranks("Senior Staff Nurse", "Staff Nurse"))
		assert.False(t, cmp.Outranks("Staff Nurse", "Senior Staff Nurse"))
		assert.True(t, cmp.Outranks("District Health Officer", "Taluk Health Officer"))
	})

	t.Run("same position never outranks itself", func(t *testing.T) {
		assert.False(t, cmp.Outranks("Staff Nurse", "Staff Nurse"))
	})

	t.Run("keyword fallback for unknown positions", func(t *testing.T) {
		assert.True(t, cmp.Outranks("Senior Radiographer", "Radiographer"))
		assert.False(t, cmp.Outranks("Radiographer", "Senior Radiographer"))
	})
}
