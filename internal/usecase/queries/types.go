package queries

import (
	"time"

	"github.com/google/uuid"
)

// Role constants mirrored from the domain for read-side access checks.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

// OfferView represents read-optimized offer data
type OfferView struct {
	ID                 uuid.UUID `json:"id"`
	TeacherID          uuid.UUID `json:"teacher_id"`
	TeacherDisplayName string    `json:"teacher_display_name"`
	Subject            string    `json:"subject"`
	Description        string    `json:"description"`
	HourlyRate         int64     `json:"hourly_rate"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type OfferListItem struct {
	ID                 uuid.UUID `json:"id"`
	TeacherDisplayName string    `json:"teacher_display_name"`
	Subject            string    `json:"subject"`
	HourlyRate         int64     `json:"hourly_rate"`
	CreatedAt          time.Time `json:"created_at"`
}

// SlotView represents read-optimized time slot data
type SlotView struct {
	ID        uuid.UUID `json:"id"`
	OfferID   uuid.UUID `json:"offer_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Booked    bool      `json:"booked"`
	CreatedAt time.Time `json:"created_at"`
}

// BalanceView represents a user's current points balance
type BalanceView struct {
	UserID    uuid.UUID `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerEntryView represents one read-optimized ledger entry
type LedgerEntryView struct {
	ID        uuid.UUID  `json:"id"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	Kind      string     `json:"kind"`
	Amount    int64      `json:"amount"`
	CreatedAt time.Time  `json:"created_at"`
}
