package readstore

import (
	"context"
	"time"

	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SessionReadStore struct {
	db db.DBTX
}

func NewSessionReadStore(q db.DBTX) *SessionReadStore {
	return &SessionReadStore{db: q}
}

const sessionListColumns = `
	s.id, o.subject, ts.start_time, ts.end_time, s.status, s.price, s.created_at`

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	const query = `
		SELECT s.id, s.slot_id, s.offer_id, o.subject,
		       s.student_id, su.display_name,
		       s.teacher_id, tu.display_name,
		       ts.start_time, ts.end_time,
		       s.status, s.price, s.fee, s.created_at, s.updated_at
		FROM sessions s
		JOIN offers o     ON o.id = s.offer_id
		JOIN time_slots ts ON ts.id = s.slot_id
		JOIN users su     ON su.id = s.student_id
		JOIN users tu     ON tu.id = s.teacher_id
		WHERE s.id = $1`

	var v queries.SessionView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.SlotID, &v.OfferID, &v.Subject,
		&v.StudentID, &v.StudentDisplayName,
		&v.TeacherID, &v.TeacherDisplayName,
		&v.StartTime, &v.EndTime,
		&v.Status, &v.Price, &v.Fee, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("session not found", err)
	}
	return &v, nil
}

func (r *SessionReadStore) FindByStudentFirstPage(ctx context.Context, studentID uuid.UUID, limit int32) ([]*queries.SessionListItem, error) {
	const query = `
		SELECT ` + sessionListColumns + `
		FROM sessions s
		JOIN offers o      ON o.id = s.offer_id
		JOIN time_slots ts ON ts.id = s.slot_id
		WHERE s.student_id = $1
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, studentID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list sessions by student", err)
	}
	defer rows.Close()
	return scanSessionListItems(rows)
}

func (r *SessionReadStore) FindByStudentKeyset(ctx context.Context, studentID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SessionListItem, error) {
	const query = `
		SELECT ` + sessionListColumns + `
		FROM sessions s
		JOIN offers o      ON o.id = s.offer_id
		JOIN time_slots ts ON ts.id = s.slot_id
		WHERE s.student_id = $1
		  AND (s.created_at, s.id) < ($2, $3)
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, studentID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list sessions by student keyset", err)
	}
	defer rows.Close()
	return scanSessionListItems(rows)
}

func (r *SessionReadStore) FindByTeacherFirstPage(ctx context.Context, teacherID uuid.UUID, limit int32) ([]*queries.SessionListItem, error) {
	const query = `
		SELECT ` + sessionListColumns + `
		FROM sessions s
		JOIN offers o      ON o.id = s.offer_id
		JOIN time_slots ts ON ts.id = s.slot_id
		WHERE s.teacher_id = $1
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, teacherID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list sessions by teacher", err)
	}
	defer rows.Close()
	return scanSessionListItems(rows)
}

func (r *SessionReadStore) FindByTeacherKeyset(ctx context.Context, teacherID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SessionListItem, error) {
	const query = `
		SELECT ` + sessionListColumns + `
		FROM sessions s
		JOIN offers o      ON o.id = s.offer_id
		JOIN time_slots ts ON ts.id = s.slot_id
		WHERE s.teacher_id = $1
		  AND (s.created_at, s.id) < ($2, $3)
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, teacherID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, wrapReadErr("failed to list sessions by teacher keyset", err)
	}
	defer rows.Close()
	return scanSessionListItems(rows)
}

func scanSessionListItems(rows pgx.Rows) ([]*queries.SessionListItem, error) {
	var result []*queries.SessionListItem
	for rows.Next() {
		var item queries.SessionListItem
		if err := rows.Scan(&item.ID, &item.Subject, &item.StartTime, &item.EndTime, &item.Status, &item.Price, &item.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan session row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read session rows", err)
	}
	return result, nil
}
