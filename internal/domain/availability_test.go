package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAvailable(t *testing.T) {
	requested := DateRange{CheckIn: date(2022, 9, 10), CheckOut: date(2022, 9, 15)}

	t.Run("no existing reserves", func(t *testing.T) {
		assert.True(t, IsAvailable(requested, nil))
	})

	t.Run("non overlapping reserves", func(t *testing.T) {
		existing := []DateRange{
			{CheckIn: date(2022, 9, 1), CheckOut: date(2022, 9, 10)},
			{CheckIn: date(2022, 9, 15), CheckOut: date(2022, 9, 20)},
		}
		assert.True(t, IsAvailable(requested, existing))
	})

	t.Run("overlap after a free reserve", func(t *testing.T) {
		// The first reserve is free, the second one collides
		existing := []DateRange{
			{CheckIn: date(2022, 9, 1), CheckOut: date(2022, 9, 5)},
			{CheckIn: date(2022, 9, 14), CheckOut: date(2022, 9, 16)},
		}
		assert.False(t, IsAvailable(requested, existing))
	})
}

func TestHasConflict(t *testing.T) {
	requested := DateRange{CheckIn: date(2023, 6, 1), CheckOut: date(2023, 6, 5)}

	t.Run("no reserves held", func(t *testing.T) {
		assert.False(t, HasConflict(requested, nil))
	})

	t.Run("held reserve overlaps", func(t *testing.T) {
		held := []DateRange{{CheckIn: date(2023, 6, 4), CheckOut: date(2023, 6, 10)}}
		assert.True(t, HasConflict(requested, held))
	})

	t.Run("back-to-back stay does not conflict", func(t *testing.T) {
		held := []DateRange{{CheckIn: date(2023, 6, 5), CheckOut: date(2023, 6, 10)}}
		assert.False(t, HasConflict(requested, held))
	})
}

// Guard against accidental timezone drift in range construction.
func TestRangesNormalizedToUTC(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	r, err := NewDateRange(
		time.Date(2023, 6, 1, 2, 0, 0, 0, msk),
		time.Date(2023, 6, 3, 2, 0, 0, 0, msk),
	)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, r.CheckIn.Location())
	assert.Equal(t, 2, r.Nights())
}
