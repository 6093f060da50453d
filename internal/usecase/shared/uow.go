package shared

import (
	"context"
	"time"

	"tutorlink/internal/domain/ledger"
	"tutorlink/internal/domain/offer"
	"tutorlink/internal/domain/review"
	"tutorlink/internal/domain/session"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Offers() OfferRepository
	Slots() SlotRepository
	Sessions() SessionRepository
	Ledger() LedgerRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	SessionByID(ctx context.Context, id uuid.UUID) (*SessionSnapshot, error)
	AccountByUserID(ctx context.Context, userID uuid.UUID) (*AccountSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ReviewExists(ctx context.Context, sessionID, reviewerID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, q db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, q db.DBTX, userID uuid.UUID) error
}

type OfferRepository interface {
	Create(ctx context.Context, q db.DBTX, o *offer.Offer) (uuid.UUID, error)
	Deactivate(ctx context.Context, q db.DBTX, offerID, teacherID uuid.UUID) (int64, error)
}

type SlotRepository interface {
	Create(ctx context.Context, q db.DBTX, s *offer.Slot) (uuid.UUID, error)
	// Claim flips booked FALSE -> TRUE; returns affected rows (0 means lost race or missing).
	Claim(ctx context.Context, q db.DBTX, slotID uuid.UUID) (int64, error)
	// Release flips booked TRUE -> FALSE; returns affected rows.
	Release(ctx context.Context, q db.DBTX, slotID uuid.UUID) (int64, error)
	// HasOverlap reports whether the offer already has a slot overlapping the range.
	HasOverlap(ctx context.Context, q db.DBTX, offerID uuid.UUID, tr offer.TimeRange) (bool, error)
}

type LedgerRepository interface {
	CreateAccount(ctx context.Context, q db.DBTX, userID uuid.UUID, initialBalance int64) error
	// Debit subtracts amount only when the balance covers it; returns affected rows.
	Debit(ctx context.Context, q db.DBTX, userID uuid.UUID, amount int64) (int64, error)
	Credit(ctx context.Context, q db.DBTX, userID uuid.UUID, amount int64) error
	// InsertEntry appends an entry unless the (session, kind) pair exists; returns affected rows.
	InsertEntry(ctx context.Context, q db.DBTX, e *ledger.Entry) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, q db.DBTX, s *session.Session) (uuid.UUID, error)
	// UpdateStatus moves a session from the expected status; returns affected rows.
	UpdateStatus(ctx context.Context, q db.DBTX, sessionID uuid.UUID, from, to session.Status) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, q db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type RatingStatsRepository interface {
	RecalcUserRatingStats(ctx context.Context, q db.DBTX, revieweeID uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key with a processing row; returns affected rows (0 means the key exists).
	TryInsert(ctx context.Context, q db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error)
	UpdateStatusCompleted(ctx context.Context, q db.DBTX, key, userID uuid.UUID, resultHash string, sessionID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, q db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, q db.DBTX, kind, topic string, recipientID uuid.UUID, payload []byte) error
}
