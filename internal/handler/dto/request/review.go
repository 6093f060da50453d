package request

import "github.com/google/uuid"

type SubmitReviewRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=1000"`
}
