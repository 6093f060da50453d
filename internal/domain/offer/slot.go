package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotAlreadyBooked = errors.New("time slot is already booked")
	ErrSlotNotBooked     = errors.New("time slot is not booked")
)

// Slot is a bookable window of a teacher's time. A slot belongs to
// exactly one offer and can hold at most one session at a time.
type Slot struct {
	id        uuid.UUID
	offerID   uuid.UUID
	timeRange TimeRange
	booked    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(offerID uuid.UUID, timeRange TimeRange) *Slot {
	return &Slot{
		id:        uuid.New(),
		offerID:   offerID,
		timeRange: timeRange,
		booked:    false,
	}
}

func ReconstructSlot(
	id, offerID uuid.UUID,
	timeRange TimeRange,
	booked bool,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:        id,
		offerID:   offerID,
		timeRange: timeRange,
		booked:    booked,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) OfferID() uuid.UUID   { return s.offerID }
func (s *Slot) TimeRange() TimeRange { return s.timeRange }
func (s *Slot) Booked() bool         { return s.booked }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }

func (s *Slot) Claim() error {
	if s.booked {
		return ErrSlotAlreadyBooked
	}
	s.booked = true
	return nil
}

func (s *Slot) Release() error {
	if !s.booked {
		return ErrSlotNotBooked
	}
	s.booked = false
	return nil
}
