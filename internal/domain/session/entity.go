package session

import (
	"errors"
	"time"

	"tutorlink/internal/domain/offer"

	"github.com/google/uuid"
)

var (
	ErrSameParty         = errors.New("student and teacher must be different users")
	ErrNotParticipant    = errors.New("actor is not a participant of this session")
	ErrTeacherOnly       = errors.New("only the teacher can perform this action")
	ErrInvalidTransition = errors.New("invalid session status transition")
	ErrNonPositivePrice  = errors.New("session price must be positive")
)

// Session is one booked tutoring appointment. It binds a student, a
// teacher, a claimed time slot and the points charged for it.
type Session struct {
	id        uuid.UUID
	slotID    uuid.UUID
	offerID   uuid.UUID
	studentID uuid.UUID
	teacherID uuid.UUID
	status    Status
	price     offer.Points
	fee       offer.Points
	createdAt time.Time
	updatedAt time.Time
}

func NewSession(
	slotID, offerID, studentID, teacherID uuid.UUID,
	price, fee offer.Points,
) (*Session, error) {
	if studentID == teacherID {
		return nil, ErrSameParty
	}
	// A slot so short it prices to zero points is not bookable.
	if price.Value() <= 0 {
		return nil, ErrNonPositivePrice
	}
	return &Session{
		id:        uuid.New(),
		slotID:    slotID,
		offerID:   offerID,
		studentID: studentID,
		teacherID: teacherID,
		status:    StatusRequested,
		price:     price,
		fee:       fee,
	}, nil
}

func ReconstructSession(
	id, slotID, offerID, studentID, teacherID uuid.UUID,
	status Status,
	price, fee offer.Points,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:        id,
		slotID:    slotID,
		offerID:   offerID,
		studentID: studentID,
		teacherID: teacherID,
		status:    status,
		price:     price,
		fee:       fee,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) SlotID() uuid.UUID    { return s.slotID }
func (s *Session) OfferID() uuid.UUID   { return s.offerID }
func (s *Session) StudentID() uuid.UUID { return s.studentID }
func (s *Session) TeacherID() uuid.UUID { return s.teacherID }
func (s *Session) Status() Status       { return s.status }
func (s *Session) Price() offer.Points  { return s.price }
func (s *Session) Fee() offer.Points    { return s.fee }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

func (s *Session) IsParticipant(actorID uuid.UUID) bool {
	return actorID == s.studentID || actorID == s.teacherID
}

// TeacherPayout is the portion of the price credited to the teacher
// after the platform fee is withheld.
func (s *Session) TeacherPayout() int64 {
	return s.price.Value() - s.fee.Value()
}

// Confirm moves the session to confirmed. Only the teacher may confirm.
func (s *Session) Confirm(actorID uuid.UUID) error {
	if !s.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if actorID != s.teacherID {
		return ErrTeacherOnly
	}
	if !s.status.CanTransitionTo(StatusConfirmed) {
		return ErrInvalidTransition
	}
	s.status = StatusConfirmed
	return nil
}

// Cancel moves the session to cancelled. Either party may cancel while
// the session is still requested or confirmed.
func (s *Session) Cancel(actorID uuid.UUID) error {
	if !s.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if !s.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	s.status = StatusCancelled
	return nil
}

// Complete moves a confirmed session to completed. Either party may
// mark completion once the appointment has taken place.
func (s *Session) Complete(actorID uuid.UUID) error {
	if !s.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if !s.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	s.status = StatusCompleted
	return nil
}
