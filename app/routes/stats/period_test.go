package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPreviousPeriod(t *testing.T) {
	t.Run("first half follows second half of prior month", func(t *testing.T) {
		start, end := PreviousPeriod(date(2024, 3, 1))
		assert.Equal(t, date(2024, 2, 16), start)
		assert.Equal(t, date(2024, 2, 29), end) // leap February

		start, end = PreviousPeriod(date(2024, 1, 1))
		assert.Equal(t, date(2023, 12, 16), start)
		assert.Equal(t, date(2023, 12, 31), end)
	})

	t.Run("second half follows first half of same month", func(t *testing.T) {
		start, end := PreviousPeriod(date(2024, 3, 16))
		assert.Equal(t, date(2024, 3, 1), start)
		assert.Equal(t, date(2024, 3, 15), end)
	})

	t.Run("odd start days keep the same-month rule", func(t *testing.T) {
		start, end := PreviousPeriod(date(2024, 3, 20))
		assert.Equal(t, date(2024, 3, 1), start)
		assert.Equal(t, date(2024, 3, 19), end)
	})
}
