package request

// BookingForm holds the editable fields of the customer booking form.
// Slot membership in the fixed enumeration is checked by the service since
// the labels contain spaces and cannot be expressed with a oneof tag.
type BookingForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot  string `json:"slot" validate:"required"`
}

// Reset clears all editable fields, returning the form to its default state.
func (f *BookingForm) Reset() {
	*f = BookingForm{}
}

type DateFilter string

const (
	FilterAll      DateFilter = "all"
	FilterToday    DateFilter = "today"
	FilterUpcoming DateFilter = "upcoming"
)

// DashboardQuery narrows the dashboard table. It never affects the stat
// counters, which always cover the full collection.
type DashboardQuery struct {
	Filter DateFilter `json:"filter"`
	Search string     `json:"search"`
}
