package repository

import (
	"context"

	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcUserRatingStats rebuilds the denormalized stats row from the
// reviews table. Runs in the same transaction as the review write so
// the stats never drift.
func (r *RatingStatsRepository) RecalcUserRatingStats(ctx context.Context, q db.DBTX, revieweeID uuid.UUID) error {
	const query = `
		INSERT INTO user_rating_stats (
			user_id, total_reviews, average_rating,
			rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count,
			updated_at
		)
		SELECT
			$1,
			COUNT(*),
			COALESCE(AVG(rating), 0),
			COUNT(*) FILTER (WHERE rating = 1),
			COUNT(*) FILTER (WHERE rating = 2),
			COUNT(*) FILTER (WHERE rating = 3),
			COUNT(*) FILTER (WHERE rating = 4),
			COUNT(*) FILTER (WHERE rating = 5),
			now()
		FROM reviews
		WHERE reviewee_id = $1
		ON CONFLICT (user_id) DO UPDATE SET
			total_reviews  = EXCLUDED.total_reviews,
			average_rating = EXCLUDED.average_rating,
			rating_1_count = EXCLUDED.rating_1_count,
			rating_2_count = EXCLUDED.rating_2_count,
			rating_3_count = EXCLUDED.rating_3_count,
			rating_4_count = EXCLUDED.rating_4_count,
			rating_5_count = EXCLUDED.rating_5_count,
			updated_at     = EXCLUDED.updated_at`

	if _, err := q.Exec(ctx, query, revieweeID); err != nil {
		return wrapErr("failed to recalc user rating stats", err)
	}
	return nil
}
