//go:build unit || e2e

package builder

import (
	"time"

	"tutorlink/internal/domain/offer"
	domsession "tutorlink/internal/domain/session"
	reqdto "tutorlink/internal/handler/dto/request"
	"tutorlink/internal/usecase/queries"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID        uuid.UUID
	SlotID    uuid.UUID
	OfferID   uuid.UUID
	StudentID uuid.UUID
	TeacherID uuid.UUID
	Status    domsession.Status
	Price     int64
	Fee       int64
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

func NewSessionBuilder() *SessionBuilder {
	now := time.Now()
	return &SessionBuilder{
		ID:        uuid.New(),
		SlotID:    uuid.New(),
		OfferID:   uuid.New(),
		StudentID: uuid.New(),
		TeacherID: uuid.New(),
		Status:    domsession.StatusRequested,
		Price:     30,
		Fee:       3,
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(24*time.Hour + 90*time.Minute),
		CreatedAt: now,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithStatus(s domsession.Status) *SessionBuilder {
	b.Status = s
	return b
}

func (b *SessionBuilder) WithParties(studentID, teacherID uuid.UUID) *SessionBuilder {
	b.StudentID = studentID
	b.TeacherID = teacherID
	return b
}

func (b *SessionBuilder) WithPrice(price, fee int64) *SessionBuilder {
	b.Price = price
	b.Fee = fee
	return b
}

func (b *SessionBuilder) BuildDomain() (*domsession.Session, error) {
	price, err := offer.NewPoints(b.Price)
	if err != nil {
		return nil, err
	}
	fee, err := offer.NewPoints(b.Fee)
	if err != nil {
		return nil, err
	}
	return domsession.NewSession(b.SlotID, b.OfferID, b.StudentID, b.TeacherID, price, fee)
}

func (b *SessionBuilder) BuildReconstructed() *domsession.Session {
	price, _ := offer.NewPoints(b.Price)
	fee, _ := offer.NewPoints(b.Fee)
	return domsession.ReconstructSession(
		b.ID, b.SlotID, b.OfferID, b.StudentID, b.TeacherID,
		b.Status, price, fee, b.CreatedAt, b.CreatedAt,
	)
}

func (b *SessionBuilder) BuildSnapshot() shared.SessionSnapshot {
	return shared.SessionSnapshot{
		ID:        b.ID,
		SlotID:    b.SlotID,
		OfferID:   b.OfferID,
		StudentID: b.StudentID,
		TeacherID: b.TeacherID,
		Status:    b.Status.String(),
		Price:     b.Price,
		Fee:       b.Fee,
	}
}

func (b *SessionBuilder) BuildView() *queries.SessionView {
	return &queries.SessionView{
		ID:        b.ID,
		SlotID:    b.SlotID,
		OfferID:   b.OfferID,
		Subject:   "Algebra",
		StudentID: b.StudentID,
		TeacherID: b.TeacherID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status.String(),
		Price:     b.Price,
		Fee:       b.Fee,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *SessionBuilder) BuildBookRequestDTO() reqdto.BookSessionRequest {
	return reqdto.BookSessionRequest{
		OfferID: b.OfferID,
		SlotID:  b.SlotID,
	}
}
