package usecase

import (
	"slot-booking/internal/data/entity"
	"slot-booking/internal/dto/response"
)

// IsSlotTaken reports whether any booking occupies the (date, slot) pair.
// Both the submission check and the slot selector hint must go through this
// predicate so the two call sites cannot diverge.
func IsSlotTaken(bookings []entity.Booking, date, slot string, ignoreCancelled bool) bool {
	for _, b := range bookings {
		if ignoreCancelled && b.Status == entity.BookingStatusCancelled {
			continue
		}
		if b.Date == date && b.Slot == slot {
			return true
		}
	}
	return false
}

// SlotAvailability marks every bookable slot label as taken or free on the
// given date, in entity.TimeSlots order. Feeds the selector's pre-disable hint.
func SlotAvailability(bookings []entity.Booking, date string, ignoreCancelled bool) []response.SlotOption {
	options := make([]response.SlotOption, 0, len(entity.TimeSlots))
	for _, slot := range entity.TimeSlots {
		options = append(options, response.SlotOption{
			Slot:  slot,
			Taken: IsSlotTaken(bookings, date, slot, ignoreCancelled),
		})
	}
	return options
}
