package usecase

import (
	"fmt"
	"sync/atomic"
	"time"

	"slot-booking/internal/data/entity"
	"slot-booking/internal/data/store"
	"slot-booking/internal/dto/request"
	"slot-booking/internal/dto/response"
	"slot-booking/pkg/utils"

	"go.uber.org/zap"
)

// ConfirmFunc asks the user to approve a destructive action. Returning false
// aborts the action silently.
type ConfirmFunc func(prompt string) bool

type CustomerService interface {
	// Submit validates the form, re-checks availability against a fresh store
	// read and appends the new booking. On success the form is cleared.
	Submit(form *request.BookingForm) (*response.BookingResponse, error)

	// MyBookings lists the bookings owned by the given email.
	MyBookings(email string) []response.BookingResponse

	// AvailableSlots marks each slot of the fixed enumeration as taken or
	// free on the given date.
	AvailableSlots(date string) []response.SlotOption

	// Cancel removes one of the customer's own bookings after confirmation.
	Cancel(id string, email string) error
}

type customerService struct {
	store   store.Store
	confirm ConfirmFunc
	config  *utils.Config
	log     *zap.Logger
	now     func() time.Time

	// submitting guards against re-entrant submits, mirroring the disabled
	// submit button while a booking is in flight.
	submitting atomic.Bool
}

func NewCustomerService(st store.Store, confirm ConfirmFunc, config *utils.Config, log *zap.Logger) CustomerService {
	return &customerService{
		store:   st,
		confirm: confirm,
		config:  config,
		log:     log.With(zap.String("service", "customer")),
		now:     time.Now,
	}
}

func (s *customerService) Submit(form *request.BookingForm) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		s.log.Warn("Booking submission validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	if !entity.IsValidSlot(form.Slot) {
		return nil, fmt.Errorf("slot %q: %w", form.Slot, entity.ErrInvalidSlot)
	}

	today := s.now().Format(entity.DateLayout)
	if form.Date < today {
		return nil, fmt.Errorf("date %s: %w", form.Date, entity.ErrDateInPast)
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, entity.ErrSubmitInProgress
	}
	defer s.submitting.Store(false)

	// Freshest read, not a cached copy: the store may have changed since the
	// slot selector was rendered.
	bookings := s.store.ReadAll()
	if IsSlotTaken(bookings, form.Date, form.Slot, s.config.Booking.IgnoreCancelledConflicts) {
		s.log.Warn("Slot conflict on submission",
			zap.String("date", form.Date),
			zap.String("slot", form.Slot),
		)
		return nil, fmt.Errorf("%s %s: %w", form.Date, form.Slot, entity.ErrSlotTaken)
	}

	booking := entity.Booking{
		ID:        utils.GenerateUUIDString(),
		Name:      form.Name,
		Email:     form.Email,
		Date:      form.Date,
		Slot:      form.Slot,
		Status:    entity.BookingStatusConfirmed,
		CreatedAt: s.now(),
	}

	if err := s.store.WriteAll(append(bookings, booking)); err != nil {
		s.log.Error("Failed to save booking", zap.Error(err), zap.String("id", booking.ID))
		return nil, fmt.Errorf("save booking: %w", err)
	}

	form.Reset()

	s.log.Info("Booking confirmed",
		zap.String("id", booking.ID),
		zap.String("date", booking.Date),
		zap.String("slot", booking.Slot),
	)

	resp := response.BookingToResponse(&booking)
	return &resp, nil
}

func (s *customerService) MyBookings(email string) []response.BookingResponse {
	if email == "" {
		return []response.BookingResponse{}
	}

	var own []entity.Booking
	for _, b := range s.store.ReadAll() {
		if b.Email == email {
			own = append(own, b)
		}
	}
	return response.BookingsToResponse(own)
}

func (s *customerService) AvailableSlots(date string) []response.SlotOption {
	return SlotAvailability(s.store.ReadAll(), date, s.config.Booking.IgnoreCancelledConflicts)
}

func (s *customerService) Cancel(id string, email string) error {
	if !s.confirm("Are you sure you want to cancel this booking?") {
		return entity.ErrConfirmationDeclined
	}

	bookings := s.store.ReadAll()
	kept := make([]entity.Booking, 0, len(bookings))
	removed := false
	for _, b := range bookings {
		if b.ID == id {
			if b.Email != email {
				return fmt.Errorf("booking %s: %w", id, entity.ErrNotBookingOwner)
			}
			removed = true
			continue
		}
		kept = append(kept, b)
	}

	// Unknown id is a no-op: nothing to remove, nothing to rewrite.
	if !removed {
		return nil
	}

	if err := s.store.WriteAll(kept); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}

	s.log.Info("Booking cancelled", zap.String("id", id))
	return nil
}
