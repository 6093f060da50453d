//go:build unit || e2e

package builder

import (
	"time"

	domreview "tutorlink/internal/domain/review"
	reqdto "tutorlink/internal/handler/dto/request"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	SessionID  uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		SessionID:  uuid.New(),
		ReviewerID: uuid.New(),
		RevieweeID: uuid.New(),
		Rating:     5,
		Comment:    "Great session, explained everything clearly.",
		CreatedAt:  time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.SessionID, r.ReviewerID, r.RevieweeID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildSubmitRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		SessionID: r.SessionID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:                  uuid.New(),
		SessionID:           r.SessionID,
		ReviewerID:          r.ReviewerID,
		ReviewerDisplayName: "Test Reviewer",
		RevieweeID:          r.RevieweeID,
		Rating:              int32(r.Rating),
		Comment:             r.Comment,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.CreatedAt,
	}
}
