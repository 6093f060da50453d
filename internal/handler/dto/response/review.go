package response

import (
	"tutorlink/internal/usecase/queries"
)

type ReviewResponse struct {
	ID           string `json:"id"`
	SessionID    string `json:"session_id"`
	ReviewerID   string `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name"`
	RevieweeID   string `json:"reviewee_id"`
	Rating       int32  `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID.String(),
		SessionID:    v.SessionID.String(),
		ReviewerID:   v.ReviewerID.String(),
		ReviewerName: v.ReviewerDisplayName,
		RevieweeID:   v.RevieweeID.String(),
		Rating:       v.Rating,
		Comment:      v.Comment,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID           string `json:"id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int32  `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    int64  `json:"created_at"`
}

type ReviewPageResponse struct {
	Reviews    []*ReviewListItemResponse `json:"reviews"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewPageResponse {
	res := &ReviewPageResponse{Reviews: make([]*ReviewListItemResponse, len(items))}
	for i, it := range items {
		res.Reviews[i] = &ReviewListItemResponse{
			ID:           it.ID.String(),
			ReviewerName: it.ReviewerDisplayName,
			Rating:       it.Rating,
			Comment:      it.Comment,
			CreatedAt:    it.CreatedAt.Unix(),
		}
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

type UserRatingStatsResponse struct {
	UserID        string  `json:"user_id"`
	TotalReviews  int32   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromUserRatingStats(s *queries.UserRatingStats) *UserRatingStatsResponse {
	return &UserRatingStatsResponse{
		UserID:        s.UserID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
		UpdatedAt:     s.UpdatedAt.Unix(),
	}
}
