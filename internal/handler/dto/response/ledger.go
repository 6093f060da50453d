package response

import (
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LedgerEntryResponse struct {
	ID        uuid.UUID  `json:"id"`
	SessionID *uuid.UUID `json:"sessionId,omitempty"`
	Kind      string     `json:"kind"`
	Amount    int64      `json:"amount"`
	CreatedAt time.Time  `json:"createdAt"`
}

type LedgerPageResponse struct {
	Entries    []*LedgerEntryResponse `json:"entries"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{UserID: v.UserID, Balance: v.Balance, UpdatedAt: v.UpdatedAt}
}

func FromLedgerEntries(items []*queries.LedgerEntryView, next *queries.Cursor) *LedgerPageResponse {
	res := &LedgerPageResponse{Entries: make([]*LedgerEntryResponse, len(items))}
	for i, it := range items {
		res.Entries[i] = &LedgerEntryResponse{
			ID:        it.ID,
			SessionID: it.SessionID,
			Kind:      it.Kind,
			Amount:    it.Amount,
			CreatedAt: it.CreatedAt,
		}
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}
