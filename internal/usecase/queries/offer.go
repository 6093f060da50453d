package queries

import (
	"context"
	"time"

	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferNotFound = errs.New("offer not found")

type OfferDetailView struct {
	Offer          *OfferView  `json:"offer"`
	AvailableSlots []*SlotView `json:"available_slots"`
}

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindActiveFirstPage(ctx context.Context, limit int32) ([]*OfferListItem, error)
	FindActiveKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OfferListItem, error)
	FindAvailableSlots(ctx context.Context, offerID uuid.UUID, after time.Time) ([]*SlotView, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, now time.Time) (*OfferDetailView, error)
	ListActive(ctx context.Context, cursor *Cursor, limit int) ([]*OfferListItem, *Cursor, error)
	// ListAvailableSlots returns unbooked slots starting after now, ascending.
	ListAvailableSlots(ctx context.Context, offerID uuid.UUID, now time.Time) ([]*SlotView, error)
}

type offerQueriesImpl struct {
	repo OfferReadStore
}

func NewOfferQueries(repo OfferReadStore) OfferQueries {
	return &offerQueriesImpl{repo: repo}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, now time.Time) (*OfferDetailView, error) {
	offerView, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	slots, err := q.repo.FindAvailableSlots(ctx, id, now)
	if err != nil {
		return nil, err
	}

	return &OfferDetailView{Offer: offerView, AvailableSlots: slots}, nil
}

func (q *offerQueriesImpl) ListActive(ctx context.Context, cursor *Cursor, limit int) ([]*OfferListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OfferListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindActiveFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindActiveKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *offerQueriesImpl) ListAvailableSlots(ctx context.Context, offerID uuid.UUID, now time.Time) ([]*SlotView, error) {
	if _, err := q.repo.FindByID(ctx, offerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return q.repo.FindAvailableSlots(ctx, offerID, now)
}
