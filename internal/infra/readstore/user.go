package readstore

import (
	"context"

	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(q db.DBTX) *UserReadStore {
	return &UserReadStore{db: q}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, display_name, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive,
	)
	if err != nil {
		return nil, wrapReadErr("user not found", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, display_name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var view queries.AuthorizedUserView
	var passwordHash string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive, &passwordHash,
	)
	if err != nil {
		return nil, "", wrapReadErr("user not found", err)
	}
	return &view, passwordHash, nil
}
