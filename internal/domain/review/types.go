package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")

	ErrSessionNotEligible     = errors.New("session is not eligible for review")
	ErrReviewerNotParticipant = errors.New("reviewer is not a participant of this session")
	ErrReviewAlreadyExists    = errors.New("review already exists for this session")
)
