package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidHourlyRate = errors.New("hourly rate must be positive")
	ErrInvalidSubject    = errors.New("subject must be between 1 and 100 characters")
	ErrOfferInactive     = errors.New("offer is inactive")
)

// Offer is a teacher's published tutoring listing. Time slots are
// published against an offer and priced by its hourly rate.
type Offer struct {
	id          uuid.UUID
	teacherID   uuid.UUID
	subject     Subject
	description string
	hourlyRate  Points
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffer(teacherID uuid.UUID, subject Subject, description string, hourlyRate Points) (*Offer, error) {
	if hourlyRate.Value() <= 0 {
		return nil, ErrInvalidHourlyRate
	}
	return &Offer{
		id:          uuid.New(),
		teacherID:   teacherID,
		subject:     subject,
		description: description,
		hourlyRate:  hourlyRate,
		isActive:    true,
	}, nil
}

func ReconstructOffer(
	id, teacherID uuid.UUID,
	subject Subject,
	description string,
	hourlyRate Points,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:          id,
		teacherID:   teacherID,
		subject:     subject,
		description: description,
		hourlyRate:  hourlyRate,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (o *Offer) ID() uuid.UUID        { return o.id }
func (o *Offer) TeacherID() uuid.UUID { return o.teacherID }
func (o *Offer) Subject() Subject     { return o.subject }
func (o *Offer) Description() string  { return o.description }
func (o *Offer) HourlyRate() Points   { return o.hourlyRate }
func (o *Offer) IsActive() bool       { return o.isActive }
func (o *Offer) CreatedAt() time.Time { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time { return o.updatedAt }

func (o *Offer) Deactivate() {
	o.isActive = false
}
