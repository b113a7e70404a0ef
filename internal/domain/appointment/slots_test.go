package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlots(t *testing.T) {
	t.Run("empty occupancy returns the full table in order", func(t *testing.T) {
		free := FreeSlots(nil)
		assert.Equal(t, DailySlots, free)
	})

	t.Run("occupied slots are removed, order preserved", func(t *testing.T) {
		free := FreeSlots([]string{"10:00", "15:00"})
		assert.Equal(t, []string{"09:00", "11:00", "14:00", "16:00", "17:00"}, free)
	})

	t.Run("unknown tokens are ignored", func(t *testing.T) {
		free := FreeSlots([]string{"08:00", "12:30"})
		assert.Equal(t, DailySlots, free)
	})

	t.Run("fully booked day returns an empty slice", func(t *testing.T) {
		free := FreeSlots(DailySlots)
		assert.Empty(t, free)
	})
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range DailySlots {
		assert.True(t, IsValidSlot(s), s)
	}

	assert.False(t, IsValidSlot("12:00"))
	assert.False(t, IsValidSlot("9:00"))
	assert.False(t, IsValidSlot(""))
}

func TestIsValidService(t *testing.T) {
	assert.True(t, IsValidService(ServiceHaircut))
	assert.True(t, IsValidService(ServiceWash))
	assert.False(t, IsValidService("Massagem"))
	assert.False(t, IsValidService(""))
}
