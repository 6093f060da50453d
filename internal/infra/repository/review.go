package repository

import (
	"context"

	"tutorlink/internal/domain/review"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, q db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, session_id, reviewer_id, reviewee_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := q.QueryRow(ctx, query,
		rev.ID(), rev.SessionID(), rev.ReviewerID(), rev.RevieweeID(),
		rev.Rating().Value(), rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create review", err)
	}
	return id, nil
}
