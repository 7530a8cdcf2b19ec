package slot

import (
	"time"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound    = errs.Class("pickup slot not found", errs.ErrNotFound)
	ErrSlotUnavailable = errs.Class("pickup slot is full or inactive", errs.ErrConflict)
	ErrInvalidSlot     = errs.Class("invalid pickup slot", errs.ErrValidation)
	ErrInvalidDate     = errs.Class("date must be YYYY-MM-DD", errs.ErrValidation)
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	DefaultCapacity = 50
)

// PickupSlot keeps 0 <= remaining <= capacity.
type PickupSlot struct {
	id        uuid.UUID
	date      string
	timeFrom  string
	timeTo    string
	capacity  int
	remaining int
	isActive  bool
}

func NewPickupSlot(date, timeFrom, timeTo string, capacity int) (*PickupSlot, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	from, err := time.Parse(TimeLayout, timeFrom)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	to, err := time.Parse(TimeLayout, timeTo)
	if err != nil || !to.After(from) {
		return nil, ErrInvalidSlot
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity < 0 {
		return nil, ErrInvalidSlot
	}
	return &PickupSlot{
		id:        uuid.New(),
		date:      date,
		timeFrom:  timeFrom,
		timeTo:    timeTo,
		capacity:  capacity,
		remaining: capacity,
		isActive:  true,
	}, nil
}

func ReconstructPickupSlot(id uuid.UUID, date, timeFrom, timeTo string, capacity, remaining int, isActive bool) *PickupSlot {
	return &PickupSlot{
		id:        id,
		date:      date,
		timeFrom:  timeFrom,
		timeTo:    timeTo,
		capacity:  capacity,
		remaining: remaining,
		isActive:  isActive,
	}
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (s *PickupSlot) ID() uuid.UUID    { return s.id }
func (s *PickupSlot) Date() string     { return s.date }
func (s *PickupSlot) TimeFrom() string { return s.timeFrom }
func (s *PickupSlot) TimeTo() string   { return s.timeTo }
func (s *PickupSlot) Capacity() int    { return s.capacity }
func (s *PickupSlot) Remaining() int   { return s.remaining }
func (s *PickupSlot) IsActive() bool   { return s.isActive }

func (s *PickupSlot) Available() bool {
	return s.isActive && s.remaining > 0
}

// Reserve takes one place.
func (s *PickupSlot) Reserve() error {
	if !s.Available() {
		return ErrSlotUnavailable
	}
	s.remaining--
	return nil
}

// Before orders slots by date then start time.
func (s *PickupSlot) Before(o *PickupSlot) bool {
	if s.date != o.date {
		return s.date < o.date
	}
	return s.timeFrom < o.timeFrom
}
