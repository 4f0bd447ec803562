package tenure_test

import (
	"testing"
	"time"

	"transferdesk/internal/shared/tenure"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	t.Run("zero elapsed time", func(t *testing.T) {
		d := date(2021, time.March, 10)
		assert.Equal(t, "< 1 month", tenure.Between(d, d))
	})

	t.Run("years and months", func(t *testing.T) {
		got := tenure.Between(date(2020, time.January, 15), date(2023, time.July, 15))
		assert.Equal(t, "3 years 6 months", got)
	})

	t.Run("months only", func(t *testing.T) {
		got := tenure.Between(date(2020, time.January, 1), date(2020, time.November, 1))
		assert.Equal(t, "10 months", got)
	})

	t.Run("years only", func(t *testing.T) {
		got := tenure.Between(date(2019, time.June, 1), date(2021, time.June, 1))
		assert.Equal(t, "2 years", got)
	})

	t.Run("singular forms", func(t *testing.T) {
		assert.Equal(t, "1 year 1 month",
			tenure.Between(date(2020, time.January, 1), date(2021, time.February, 1)))
		assert.Equal(t, "1 month",
			tenure.Between(date(2020, time.January, 1), date(2020, time.February, 1)))
		assert.Equal(t, "1 year",
			tenure.Between(date(2020, time.January, 1), date(2021, time.January, 1)))
	})

	t.Run("reversed dates clamp to zero", func(t *testing.T) {
		got := tenure.Between(date(2022, time.May, 1), date(2020, time.May, 1))
		assert.Equal(t, "< 1 month", got)
	})
}
