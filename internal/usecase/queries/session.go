package queries

import (
	"context"
	"time"

	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.New("session not found")
	ErrSessionAccess   = errs.New("session access denied")
	ErrInvalidCursor   = errs.New("invalid cursor")
)

// SessionView joins session, offer and party data for the read side.
type SessionView struct {
	ID                 uuid.UUID `json:"id"`
	SlotID             uuid.UUID `json:"slot_id"`
	OfferID            uuid.UUID `json:"offer_id"`
	Subject            string    `json:"subject"`
	StudentID          uuid.UUID `json:"student_id"`
	StudentDisplayName string    `json:"student_display_name"`
	TeacherID          uuid.UUID `json:"teacher_id"`
	TeacherDisplayName string    `json:"teacher_display_name"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	Price              int64     `json:"price"`
	Fee                int64     `json:"fee"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SessionListItem struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	FindByStudentFirstPage(ctx context.Context, studentID uuid.UUID, limit int32) ([]*SessionListItem, error)
	FindByStudentKeyset(ctx context.Context, studentID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SessionListItem, error)
	FindByTeacherFirstPage(ctx context.Context, teacherID uuid.UUID, limit int32) ([]*SessionListItem, error)
	FindByTeacherKeyset(ctx context.Context, teacherID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SessionListItem, error)
}

type SessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*SessionView, error)
	// GetByIDSystem bypasses the actor check; used for read-after-write
	// and idempotency replays where the caller is already authorized.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, cursor *Cursor, limit int) ([]*SessionListItem, *Cursor, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID, cursor *Cursor, limit int) ([]*SessionListItem, *Cursor, error)
}

type sessionQueriesImpl struct {
	repo SessionReadStore
}

func NewSessionQueries(repo SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{repo: repo}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*SessionView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != RoleAdmin && view.StudentID != actorID && view.TeacherID != actorID {
		return nil, ErrSessionAccess
	}
	return view, nil
}

func (q *sessionQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID, cursor *Cursor, limit int) ([]*SessionListItem, *Cursor, error) {
	return q.list(ctx, cursor, limit,
		func(limit int32) ([]*SessionListItem, error) {
			return q.repo.FindByStudentFirstPage(ctx, studentID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SessionListItem, error) {
			return q.repo.FindByStudentKeyset(ctx, studentID, lastCreatedAt, lastID, limit)
		})
}

func (q *sessionQueriesImpl) ListByTeacher(ctx context.Context, teacherID uuid.UUID, cursor *Cursor, limit int) ([]*SessionListItem, *Cursor, error) {
	return q.list(ctx, cursor, limit,
		func(limit int32) ([]*SessionListItem, error) {
			return q.repo.FindByTeacherFirstPage(ctx, teacherID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SessionListItem, error) {
			return q.repo.FindByTeacherKeyset(ctx, teacherID, lastCreatedAt, lastID, limit)
		})
}

func (q *sessionQueriesImpl) list(
	_ context.Context,
	cursor *Cursor,
	limit int,
	firstPage func(int32) ([]*SessionListItem, error),
	keyset func(time.Time, uuid.UUID, int32) ([]*SessionListItem, error),
) ([]*SessionListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*SessionListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = firstPage(int32(limit + 1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = keyset(lastCreatedAt, lastID, int32(limit+1))
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
