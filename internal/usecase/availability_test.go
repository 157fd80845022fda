package usecase

import (
	"testing"

	"slot-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestIsSlotTaken(t *testing.T) {
	bookings := []entity.Booking{
		{ID: "b1", Date: "2025-12-15", Slot: "02:00 PM", Status: entity.BookingStatusConfirmed},
		{ID: "b2", Date: "2025-12-15", Slot: "03:00 PM", Status: entity.BookingStatusCancelled},
	}

	tests := []struct {
		name            string
		date, slot      string
		ignoreCancelled bool
		want            bool
	}{
		{"confirmed booking blocks slot", "2025-12-15", "02:00 PM", false, true},
		{"free slot on same date", "2025-12-15", "04:00 PM", false, false},
		{"same slot on another date", "2025-12-16", "02:00 PM", false, false},
		{"cancelled booking blocks by default", "2025-12-15", "03:00 PM", false, true},
		{"cancelled booking ignored with policy", "2025-12-15", "03:00 PM", true, false},
		{"confirmed booking still blocks with policy", "2025-12-15", "02:00 PM", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSlotTaken(bookings, tt.date, tt.slot, tt.ignoreCancelled))
		})
	}
}

func TestIsSlotTakenEmptyCollection(t *testing.T) {
	assert.False(t, IsSlotTaken(nil, "2025-12-15", "02:00 PM", false))
}

func TestSlotAvailability(t *testing.T) {
	bookings := []entity.Booking{
		{ID: "b1", Date: "2025-12-15", Slot: "09:00 AM", Status: entity.BookingStatusConfirmed},
		{ID: "b2", Date: "2025-12-16", Slot: "10:00 AM", Status: entity.BookingStatusConfirmed},
	}

	options := SlotAvailability(bookings, "2025-12-15", false)

	assert.Len(t, options, len(entity.TimeSlots))
	for i, option := range options {
		// Same order as the fixed enumeration.
		assert.Equal(t, entity.TimeSlots[i], option.Slot)
		assert.Equal(t, option.Slot == "09:00 AM", option.Taken)
	}
}
