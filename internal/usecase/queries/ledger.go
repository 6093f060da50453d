package queries

import (
	"context"
	"time"

	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errs.New("points account not found")

type LedgerReadStore interface {
	FindBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	FindEntriesFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*LedgerEntryView, error)
	FindEntriesKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*LedgerEntryView, error)
}

type LedgerQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	ListEntries(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*LedgerEntryView, *Cursor, error)
}

type ledgerQueriesImpl struct {
	repo LedgerReadStore
}

func NewLedgerQueries(repo LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{repo: repo}
}

func (q *ledgerQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	balance, err := q.repo.FindBalance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return balance, nil
}

func (q *ledgerQueriesImpl) ListEntries(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*LedgerEntryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*LedgerEntryView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindEntriesFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindEntriesKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
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
