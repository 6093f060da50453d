package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrZeroAmount      = errors.New("ledger entry amount cannot be zero")
	ErrWrongAmountSign = errors.New("ledger entry amount has the wrong sign for its kind")
	ErrMissingSession  = errors.New("session-scoped ledger entry requires a session reference")
)

// Entry is one immutable movement of points on a user's account.
// Amounts are signed: debits negative, credits positive. A fee_burned
// entry is audit-only; the burned amount never lands on any balance,
// it is recorded as a positive amount against the paying student.
// Entries tied to a session carry its ID so each (session, kind) pair
// stays unique.
type Entry struct {
	id        uuid.UUID
	userID    uuid.UUID
	sessionID *uuid.UUID
	kind      EntryKind
	amount    int64
	createdAt time.Time
}

func NewEntry(userID uuid.UUID, sessionID *uuid.UUID, kind EntryKind, amount int64) (*Entry, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	if debitKind(kind) && amount > 0 || !debitKind(kind) && amount < 0 {
		return nil, ErrWrongAmountSign
	}
	if kind != KindSignupBonus && sessionID == nil {
		return nil, ErrMissingSession
	}
	return &Entry{
		id:        uuid.New(),
		userID:    userID,
		sessionID: sessionID,
		kind:      kind,
		amount:    amount,
	}, nil
}

func ReconstructEntry(id, userID uuid.UUID, sessionID *uuid.UUID, kind EntryKind, amount int64, createdAt time.Time) *Entry {
	return &Entry{
		id:        id,
		userID:    userID,
		sessionID: sessionID,
		kind:      kind,
		amount:    amount,
		createdAt: createdAt,
	}
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) UserID() uuid.UUID     { return e.userID }
func (e *Entry) SessionID() *uuid.UUID { return e.sessionID }
func (e *Entry) Kind() EntryKind       { return e.kind }
func (e *Entry) Amount() int64         { return e.amount }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }

func debitKind(k EntryKind) bool {
	return k == KindBookingDebit || k == KindReversalDebit
}
