package repository

import (
	"context"

	"tutorlink/internal/domain/ledger"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (r *LedgerRepository) CreateAccount(ctx context.Context, q db.DBTX, userID uuid.UUID, initialBalance int64) error {
	const query = `
		INSERT INTO points_accounts (user_id, balance)
		VALUES ($1, $2)`

	if _, err := q.Exec(ctx, query, userID, initialBalance); err != nil {
		return wrapErr("failed to create points account", err)
	}
	return nil
}

// Debit only applies when the balance covers the amount; the caller
// reads zero affected rows as insufficient funds.
func (r *LedgerRepository) Debit(ctx context.Context, q db.DBTX, userID uuid.UUID, amount int64) (int64, error) {
	const query = `
		UPDATE points_accounts
		SET balance = balance - $2, updated_at = now()
		WHERE user_id = $1 AND balance >= $2`

	tag, err := q.Exec(ctx, query, userID, amount)
	if err != nil {
		return 0, wrapErr("failed to debit points account", err)
	}
	return tag.RowsAffected(), nil
}

func (r *LedgerRepository) Credit(ctx context.Context, q db.DBTX, userID uuid.UUID, amount int64) error {
	const query = `
		UPDATE points_accounts
		SET balance = balance + $2, updated_at = now()
		WHERE user_id = $1`

	tag, err := q.Exec(ctx, query, userID, amount)
	if err != nil {
		return wrapErr("failed to credit points account", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("points account missing for credit")
	}
	return nil
}

// InsertEntry relies on the unique (session_id, kind) index; a replay
// inserts nothing and reports zero rows.
func (r *LedgerRepository) InsertEntry(ctx context.Context, q db.DBTX, e *ledger.Entry) (int64, error) {
	const query = `
		INSERT INTO ledger_entries (id, user_id, session_id, kind, amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, kind) DO NOTHING`

	tag, err := q.Exec(ctx, query, e.ID(), e.UserID(), e.SessionID(), e.Kind().String(), e.Amount())
	if err != nil {
		return 0, wrapErr("failed to insert ledger entry", err)
	}
	return tag.RowsAffected(), nil
}
