package repository

import (
	"context"

	"tutorlink/internal/domain/offer"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, q db.DBTX, s *offer.Slot) (uuid.UUID, error) {
	const query = `
		INSERT INTO time_slots (id, offer_id, start_time, end_time, booked)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := q.QueryRow(ctx, query,
		s.ID(), s.OfferID(), s.TimeRange().Start(), s.TimeRange().End(), s.Booked(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create time slot", err)
	}
	return id, nil
}

// Claim is the compare-and-set that arbitrates concurrent bookings.
// Zero affected rows means the slot is gone or already booked.
func (r *SlotRepository) Claim(ctx context.Context, q db.DBTX, slotID uuid.UUID) (int64, error) {
	const query = `
		UPDATE time_slots
		SET booked = TRUE, updated_at = now()
		WHERE id = $1 AND booked = FALSE`

	tag, err := q.Exec(ctx, query, slotID)
	if err != nil {
		return 0, wrapErr("failed to claim time slot", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) Release(ctx context.Context, q db.DBTX, slotID uuid.UUID) (int64, error) {
	const query = `
		UPDATE time_slots
		SET booked = FALSE, updated_at = now()
		WHERE id = $1 AND booked = TRUE`

	tag, err := q.Exec(ctx, query, slotID)
	if err != nil {
		return 0, wrapErr("failed to release time slot", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) HasOverlap(ctx context.Context, q db.DBTX, offerID uuid.UUID, tr offer.TimeRange) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM time_slots
			WHERE offer_id = $1 AND start_time < $3 AND end_time > $2
		)`

	var exists bool
	if err := q.QueryRow(ctx, query, offerID, tr.Start(), tr.End()).Scan(&exists); err != nil {
		return false, wrapErr("failed to check slot overlap", err)
	}
	return exists, nil
}
