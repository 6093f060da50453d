package review

import (
	"time"

	"tutorlink/internal/domain/session"

	"github.com/google/uuid"
)

// Review is a rating left by one session participant about the other.
// Reviews are gated on session completion and are immutable once posted.
type Review struct {
	id         uuid.UUID
	sessionID  uuid.UUID
	reviewerID uuid.UUID
	revieweeID uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(id, sessionID, reviewerID, revieweeID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		sessionID:  sessionID,
		reviewerID: reviewerID,
		revieweeID: revieweeID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) SessionID() uuid.UUID  { return r.sessionID }
func (r *Review) ReviewerID() uuid.UUID { return r.reviewerID }
func (r *Review) RevieweeID() uuid.UUID { return r.revieweeID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }

// CheckEligibility enforces the review gate: the session must be
// completed and the reviewer must be one of its two participants. The
// counterpart participant is returned as the reviewee.
func CheckEligibility(sess *session.Session, reviewerID uuid.UUID) (uuid.UUID, error) {
	if sess.Status() != session.StatusCompleted {
		return uuid.Nil, ErrSessionNotEligible
	}
	switch reviewerID {
	case sess.StudentID():
		return sess.TeacherID(), nil
	case sess.TeacherID():
		return sess.StudentID(), nil
	default:
		return uuid.Nil, ErrReviewerNotParticipant
	}
}
