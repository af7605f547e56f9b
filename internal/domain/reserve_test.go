package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReserveHasElapsed(t *testing.T) {
	r := &Reserve{CheckIn: date(2022, 9, 17), CheckOut: date(2022, 9, 27)}

	assert.False(t, r.HasElapsed(date(2022, 9, 20)))
	// The checkout day itself is not yet elapsed
	assert.False(t, r.HasElapsed(date(2022, 9, 27)))
	assert.True(t, r.HasElapsed(date(2022, 9, 28)))
}

func TestReserveIsOwnedBy(t *testing.T) {
	r := &Reserve{ClientID: 42}

	assert.True(t, r.IsOwnedBy(42))
	assert.False(t, r.IsOwnedBy(7))
}

func TestRoomFullPrice(t *testing.T) {
	room := &Room{NightlyPrice: 700}

	assert.Equal(t, int64(7000), room.FullPrice(10))
	assert.Equal(t, int64(0), room.FullPrice(0))
}

func TestRoomFits(t *testing.T) {
	room := &Room{Capacity: 2}

	assert.True(t, room.Fits(1))
	assert.True(t, room.Fits(2))
	assert.False(t, room.Fits(3))
}
