package readstore

import (
	"context"
	"time"

	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(q db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: q}
}

func (r *LedgerReadStore) FindBalance(ctx context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	const query = `
		SELECT user_id, balance, updated_at
		FROM points_accounts
		WHERE user_id = $1`

	var v queries.BalanceView
	err := r.db.QueryRow(ctx, query, userID).Scan(&v.UserID, &v.Balance, &v.UpdatedAt)
	if err != nil {
		return nil, wrapReadErr("points account not found", err)
	}
	return &v, nil
}

func (r *LedgerReadStore) FindEntriesFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.LedgerEntryView, error) {
	const query = `
		SELECT id, session_id, kind, amount, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list ledger entries", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func (r *LedgerReadStore) FindEntriesKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.LedgerEntryView, error) {
	const query = `
		SELECT id, session_id, kind, amount, created_at
		FROM ledger_entries
		WHERE user_id = $1
		  AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list ledger entries keyset", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func scanLedgerEntries(rows pgx.Rows) ([]*queries.LedgerEntryView, error) {
	var result []*queries.LedgerEntryView
	for rows.Next() {
		var v queries.LedgerEntryView
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Kind, &v.Amount, &v.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan ledger entry row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read ledger entry rows", err)
	}
	return result, nil
}
