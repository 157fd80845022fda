package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSlotTaken            = errors.New("slot is already booked")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrConfirmationDeclined = errors.New("confirmation declined")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidSlot          = errors.New("invalid time slot")
	ErrDateInPast           = errors.New("booking date is in the past")
	ErrSubmitInProgress     = errors.New("another submission is in progress")
	ErrNotBookingOwner      = errors.New("booking belongs to another customer")
)

// ValidationError carries the per-field messages of a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	sort.Strings(msgs)
	return "validation failed: " + strings.Join(msgs, "; ")
}
