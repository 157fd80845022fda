package response

import (
	"time"

	"slot-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email,omitempty"`
	Date      string               `json:"date"`
	Slot      string               `json:"slot"`
	Status    entity.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type StatsResponse struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	Upcoming  int `json:"upcoming"`
	Confirmed int `json:"confirmed"`
}

type DashboardResponse struct {
	Stats    StatsResponse     `json:"stats"`
	Bookings []BookingResponse `json:"bookings"`
}

// SlotOption is one entry of the slot selector: a bookable label and whether
// it is already taken on the requested date.
type SlotOption struct {
	Slot  string `json:"slot"`
	Taken bool   `json:"taken"`
}

// Helper converters

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date,
		Slot:      b.Slot,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

func BookingsToResponse(bookings []entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, BookingToResponse(&bookings[i]))
	}
	return responses
}
