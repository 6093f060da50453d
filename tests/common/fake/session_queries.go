//go:build unit

package fake

import (
	"context"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

// SessionQueries adapts the fake store to the read-side interface so
// booking commands can do their read-after-write against it.
type SessionQueries struct {
	f *UnitOfWork
}

func (f *UnitOfWork) SessionQueries() *SessionQueries {
	return &SessionQueries{f: f}
}

func (q *SessionQueries) view(id uuid.UUID) (*queries.SessionView, error) {
	snap, ok := q.f.st.sessions[id]
	if !ok {
		return nil, queries.ErrSessionNotFound
	}
	slot := q.f.st.slots[snap.SlotID]
	view := &queries.SessionView{
		ID:        snap.ID,
		SlotID:    snap.SlotID,
		OfferID:   snap.OfferID,
		StudentID: snap.StudentID,
		TeacherID: snap.TeacherID,
		Status:    snap.Status,
		Price:     snap.Price,
		Fee:       snap.Fee,
	}
	if offer, ok := q.f.st.offers[snap.OfferID]; ok {
		view.Subject = offer.Subject
	}
	if slot != nil {
		view.StartTime = slot.Start
		view.EndTime = slot.End
	}
	return view, nil
}

func (q *SessionQueries) GetByID(_ context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*queries.SessionView, error) {
	view, err := q.view(id)
	if err != nil {
		return nil, err
	}
	if actorRole != queries.RoleAdmin && view.StudentID != actorID && view.TeacherID != actorID {
		return nil, queries.ErrSessionAccess
	}
	return view, nil
}

func (q *SessionQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.SessionView, error) {
	return q.view(id)
}

func (q *SessionQueries) ListByStudent(_ context.Context, studentID uuid.UUID, _ *queries.Cursor, _ int) ([]*queries.SessionListItem, *queries.Cursor, error) {
	var items []*queries.SessionListItem
	for id, s := range q.f.st.sessions {
		if s.StudentID == studentID {
			items = append(items, &queries.SessionListItem{ID: id, Status: s.Status, Price: s.Price})
		}
	}
	return items, nil, nil
}

func (q *SessionQueries) ListByTeacher(_ context.Context, teacherID uuid.UUID, _ *queries.Cursor, _ int) ([]*queries.SessionListItem, *queries.Cursor, error) {
	var items []*queries.SessionListItem
	for id, s := range q.f.st.sessions {
		if s.TeacherID == teacherID {
			items = append(items, &queries.SessionListItem{ID: id, Status: s.Status, Price: s.Price})
		}
	}
	return items, nil, nil
}
