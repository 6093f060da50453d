package repository

import (
	"context"
	"time"

	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, q db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := q.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return 0, wrapErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected(), nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, q db.DBTX, key, userID uuid.UUID, resultHash string, sessionID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', response_body_hash = $3, result_session_id = $4, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	if _, err := q.Exec(ctx, query, key, userID, resultHash, sessionID); err != nil {
		return wrapErr("failed to update idempotency key status", err)
	}
	return nil
}

// ClaimExpiredIdempotencyKey takes over a processing row whose owner
// never finished; the conditional WHERE keeps two claimers from both
// winning.
func (r *IdempotencyRepository) ClaimExpiredIdempotencyKey(ctx context.Context, q db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	const query = `
		UPDATE idempotency_keys
		SET request_hash = $3, expires_at = $4, updated_at = now()
		WHERE key = $1 AND user_id = $2 AND status = 'processing' AND expires_at < now()`

	tag, err := q.Exec(ctx, query, key, userID, requestHash, expiresAt)
	if err != nil {
		return 0, wrapErr("failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, q db.DBTX) (int64, error) {
	const query = `DELETE FROM idempotency_keys WHERE expires_at < now() AND status = 'processing'`

	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, wrapErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
