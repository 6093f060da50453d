package repository

import (
	"context"

	"tutorlink/internal/domain/session"
	"tutorlink/internal/infra/db"

	"github.com/google/uuid"
)

type SessionRepository struct{}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Create(ctx context.Context, q db.DBTX, s *session.Session) (uuid.UUID, error) {
	const query = `
		INSERT INTO sessions (id, slot_id, offer_id, student_id, teacher_id, status, price, fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := q.QueryRow(ctx, query,
		s.ID(), s.SlotID(), s.OfferID(), s.StudentID(), s.TeacherID(),
		s.Status().String(), s.Price().Value(), s.Fee().Value(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create session", err)
	}
	return id, nil
}

// UpdateStatus only succeeds when the stored status still matches the
// expected one, so concurrent transitions cannot both apply.
func (r *SessionRepository) UpdateStatus(ctx context.Context, q db.DBTX, sessionID uuid.UUID, from, to session.Status) (int64, error) {
	const query = `
		UPDATE sessions
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := q.Exec(ctx, query, sessionID, from.String(), to.String())
	if err != nil {
		return 0, wrapErr("failed to update session status", err)
	}
	return tag.RowsAffected(), nil
}
