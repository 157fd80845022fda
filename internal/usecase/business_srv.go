package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"slot-booking/internal/data/entity"
	"slot-booking/internal/data/store"
	"slot-booking/internal/dto/request"
	"slot-booking/internal/dto/response"

	"go.uber.org/zap"
)

type BusinessService interface {
	// Dashboard reads the full collection, sorts it by date and derives the
	// stat counters before applying the filter and search to the table.
	Dashboard(query *request.DashboardQuery) *response.DashboardResponse

	// UpdateStatus replaces exactly one booking's status.
	UpdateStatus(id string, status entity.BookingStatus) error

	// Delete removes one booking after confirmation. Unknown ids are a no-op.
	Delete(id string) error

	// Watch re-derives the dashboard on every store change until ctx is done.
	Watch(ctx context.Context, query *request.DashboardQuery, fn func(*response.DashboardResponse)) error
}

type businessService struct {
	store   store.Store
	confirm ConfirmFunc
	log     *zap.Logger
	now     func() time.Time
}

func NewBusinessService(st store.Store, confirm ConfirmFunc, log *zap.Logger) BusinessService {
	return &businessService{
		store:   st,
		confirm: confirm,
		log:     log.With(zap.String("service", "business")),
		now:     time.Now,
	}
}

func (s *businessService) Dashboard(query *request.DashboardQuery) *response.DashboardResponse {
	if query == nil {
		query = &request.DashboardQuery{Filter: request.FilterAll}
	}

	bookings := s.store.ReadAll()

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date < bookings[j].Date
	})

	// Today is computed once per derivation so every comparison below agrees.
	today := s.now().Format(entity.DateLayout)

	// Stats always cover the full collection, never the filtered table.
	stats := response.StatsResponse{Total: len(bookings)}
	for _, b := range bookings {
		if b.Date == today {
			stats.Today++
		}
		if b.Date >= today {
			stats.Upcoming++
		}
		if b.Status == entity.BookingStatusConfirmed {
			stats.Confirmed++
		}
	}

	search := strings.ToLower(query.Search)
	filtered := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		switch query.Filter {
		case request.FilterToday:
			if b.Date != today {
				continue
			}
		case request.FilterUpcoming:
			if b.Date < today {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Name), search) &&
			!strings.Contains(strings.ToLower(b.Email), search) {
			continue
		}
		filtered = append(filtered, b)
	}

	return &response.DashboardResponse{
		Stats:    stats,
		Bookings: response.BookingsToResponse(filtered),
	}
}

func (s *businessService) UpdateStatus(id string, status entity.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("status %q: %w", status, entity.ErrInvalidStatus)
	}

	bookings := s.store.ReadAll()
	found := false
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("booking %s: %w", id, entity.ErrBookingNotFound)
	}

	if err := s.store.WriteAll(bookings); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("update booking %s: %w", id, err)
	}

	s.log.Info("Booking status updated",
		zap.String("id", id),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *businessService) Delete(id string) error {
	if !s.confirm("Are you sure you want to delete this booking?") {
		return entity.ErrConfirmationDeclined
	}

	bookings := s.store.ReadAll()
	kept := make([]entity.Booking, 0, len(bookings))
	removed := false
	for _, b := range bookings {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}

	// Unknown id is a no-op: skip the write so no spurious signal goes out.
	if !removed {
		return nil
	}

	if err := s.store.WriteAll(kept); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	s.log.Info("Booking deleted", zap.String("id", id))
	return nil
}

func (s *businessService) Watch(ctx context.Context, query *request.DashboardQuery, fn func(*response.DashboardResponse)) error {
	signals, err := s.store.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("watch bookings: %w", err)
	}

	// Initial render, then a full re-derive per change signal.
	fn(s.Dashboard(query))

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-signals:
			if !ok {
				return nil
			}
			fn(s.Dashboard(query))
		}
	}
}
