package readstore

import (
	"context"

	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReadStore serves the minimal snapshots the write side needs
// for validation. It runs over whatever DBTX the caller is holding, so
// inside a transaction these reads see the transaction's own writes.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(q db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: q}
}

func (r *CommandReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, is_active
		FROM users
		WHERE id = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.DisplayName, &snap.Role, &snap.IsActive,
	)
	if err != nil {
		return nil, wrapReadErr("user not found", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, is_active
		FROM users
		WHERE email = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, email).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.DisplayName, &snap.Role, &snap.IsActive,
	)
	if err != nil {
		return nil, wrapReadErr("user not found", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) OfferByID(ctx context.Context, id uuid.UUID) (*shared.OfferSnapshot, error) {
	const query = `
		SELECT id, teacher_id, subject, hourly_rate, is_active
		FROM offers
		WHERE id = $1`

	var snap shared.OfferSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.TeacherID, &snap.Subject, &snap.HourlyRate, &snap.IsActive,
	)
	if err != nil {
		return nil, wrapReadErr("offer not found", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	const query = `
		SELECT id, offer_id, start_time, end_time, booked
		FROM time_slots
		WHERE id = $1`

	var snap shared.SlotSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.OfferID, &snap.Start, &snap.End, &snap.Booked,
	)
	if err != nil {
		return nil, wrapReadErr("time slot not found", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) SessionByID(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	const query = `
		SELECT id, slot_id, offer_id, student_id, teacher_id, status, price, fee
		FROM sessions
		WHERE id = $1`

	var snap shared.SessionSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.SlotID, &snap.OfferID, &snap.StudentID, &snap.TeacherID,
		&snap.Status, &snap.Price, &snap.Fee,
	)
	if err != nil {
		return nil, wrapReadErr("session not found", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) AccountByUserID(ctx context.Context, userID uuid.UUID) (*shared.AccountSnapshot, error) {
	const query = `
		SELECT user_id, balance
		FROM points_accounts
		WHERE user_id = $1`

	var snap shared.AccountSnapshot
	err := r.db.QueryRow(ctx, query, userID).Scan(&snap.UserID, &snap.Balance)
	if err != nil {
		return nil, wrapReadErr("points account not found", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_session_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var rec shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultSessionID, &rec.ExpiresAt,
	)
	if err != nil {
		return nil, wrapReadErr("idempotency key not found", err)
	}
	return &rec, nil
}

func (r *CommandReadStore) ReviewExists(ctx context.Context, sessionID, reviewerID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE session_id = $1 AND reviewer_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, sessionID, reviewerID).Scan(&exists); err != nil {
		return false, wrapReadErr("failed to check review existence", err)
	}
	return exists, nil
}
