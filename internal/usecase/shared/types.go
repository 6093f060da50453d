package shared

import (
	"time"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	IsActive     bool
}

type OfferSnapshot struct {
	ID         uuid.UUID
	TeacherID  uuid.UUID
	Subject    string
	HourlyRate int64
	IsActive   bool
}

type SlotSnapshot struct {
	ID      uuid.UUID
	OfferID uuid.UUID
	Start   time.Time
	End     time.Time
	Booked  bool
}

type SessionSnapshot struct {
	ID        uuid.UUID
	SlotID    uuid.UUID
	OfferID   uuid.UUID
	StudentID uuid.UUID
	TeacherID uuid.UUID
	Status    string
	Price     int64
	Fee       int64
}

type AccountSnapshot struct {
	UserID  uuid.UUID
	Balance int64
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultSessionID *uuid.UUID
	ExpiresAt       time.Time
}
