package readstore

import (
	"context"
	"strconv"
	"time"

	"tutorlink/internal/infra/db"
	"tutorlink/internal/pkg/pgconv"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(q db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: q}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const query = `
		SELECT r.id, r.session_id, r.reviewer_id, u.display_name, r.reviewee_id,
		       r.rating, r.comment, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.reviewer_id
		WHERE r.id = $1`

	var v queries.ReviewView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.SessionID, &v.ReviewerID, &v.ReviewerDisplayName, &v.RevieweeID,
		&v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("review not found", err)
	}
	return &v, nil
}

func (r *ReviewReadStore) FindByRevieweeFirstPage(ctx context.Context, revieweeID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	query := `
		SELECT r.id, u.display_name, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.reviewer_id
		WHERE r.reviewee_id = $1`
	args := []any{revieweeID}
	query, args = appendRatingFilters(query, args, minRating, maxRating)
	query += `
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list reviews by reviewee", err)
	}
	defer rows.Close()
	return scanReviewListItems(rows)
}

func (r *ReviewReadStore) FindByRevieweeKeyset(ctx context.Context, revieweeID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	query := `
		SELECT r.id, u.display_name, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.reviewer_id
		WHERE r.reviewee_id = $1
		  AND (r.created_at, r.id) < ($2, $3)`
	args := []any{revieweeID, lastCreatedAt, lastID}
	query, args = appendRatingFilters(query, args, minRating, maxRating)
	query += `
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list reviews by reviewee keyset", err)
	}
	defer rows.Close()
	return scanReviewListItems(rows)
}

func (r *ReviewReadStore) GetUserRatingStats(ctx context.Context, userID uuid.UUID) (*queries.UserRatingStats, error) {
	const query = `
		SELECT user_id, total_reviews, average_rating,
		       rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count,
		       updated_at
		FROM user_rating_stats
		WHERE user_id = $1`

	var v queries.UserRatingStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.UserID, &v.TotalReviews, &v.AverageRating,
		&v.Rating1Count, &v.Rating2Count, &v.Rating3Count, &v.Rating4Count, &v.Rating5Count,
		&v.UpdatedAt,
	)
	if err != nil {
		// No reviews yet is an empty stats row, not an error.
		if pgconv.IsNoRows(err) {
			return &queries.UserRatingStats{UserID: userID}, nil
		}
		return nil, wrapReadErr("failed to get user rating stats", err)
	}
	return &v, nil
}

func appendRatingFilters(query string, args []any, minRating, maxRating *int) (string, []any) {
	if minRating != nil {
		args = append(args, *minRating)
		query += `
		  AND r.rating >= $` + strconv.Itoa(len(args))
	}
	if maxRating != nil {
		args = append(args, *maxRating)
		query += `
		  AND r.rating <= $` + strconv.Itoa(len(args))
	}
	return query, args
}

func scanReviewListItems(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	var result []*queries.ReviewListItem
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(&item.ID, &item.ReviewerDisplayName, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan review row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read review rows", err)
	}
	return result, nil
}
