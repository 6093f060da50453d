package request

import "github.com/google/uuid"

type BookSessionRequest struct {
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
	SlotID  uuid.UUID `json:"slot_id" binding:"required"`
}
