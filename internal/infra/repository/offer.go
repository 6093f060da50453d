package repository

import (
	"context"

	"tutorlink/internal/domain/offer"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) Create(ctx context.Context, q db.DBTX, o *offer.Offer) (uuid.UUID, error) {
	const query = `
		INSERT INTO offers (id, teacher_id, subject, description, hourly_rate, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := q.QueryRow(ctx, query,
		o.ID(), o.TeacherID(), o.Subject().Value(), o.Description(), o.HourlyRate().Value(), o.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create offer", err)
	}
	return id, nil
}

func (r *OfferRepository) Deactivate(ctx context.Context, q db.DBTX, offerID, teacherID uuid.UUID) (int64, error) {
	const query = `
		UPDATE offers
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1 AND teacher_id = $2 AND is_active = TRUE`

	tag, err := q.Exec(ctx, query, offerID, teacherID)
	if err != nil {
		return 0, wrapErr("failed to deactivate offer", err)
	}
	return tag.RowsAffected(), nil
}
