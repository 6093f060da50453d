package response

import (
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	SlotID      uuid.UUID `json:"slotId"`
	OfferID     uuid.UUID `json:"offerId"`
	Subject     string    `json:"subject"`
	StudentID   uuid.UUID `json:"studentId"`
	StudentName string    `json:"studentName"`
	TeacherID   uuid.UUID `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	Price       int64     `json:"price"`
	Fee         int64     `json:"fee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SessionListResponse struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

type SessionPageResponse struct {
	Sessions   []*SessionListResponse `json:"sessions"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:          v.ID,
		SlotID:      v.SlotID,
		OfferID:     v.OfferID,
		Subject:     v.Subject,
		StudentID:   v.StudentID,
		StudentName: v.StudentDisplayName,
		TeacherID:   v.TeacherID,
		TeacherName: v.TeacherDisplayName,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		Status:      v.Status,
		Price:       v.Price,
		Fee:         v.Fee,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromSessionList(items []*queries.SessionListItem, next *queries.Cursor) *SessionPageResponse {
	res := &SessionPageResponse{Sessions: make([]*SessionListResponse, len(items))}
	for i, it := range items {
		res.Sessions[i] = &SessionListResponse{
			ID:        it.ID,
			Subject:   it.Subject,
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
			Status:    it.Status,
			Price:     it.Price,
			CreatedAt: it.CreatedAt,
		}
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}
