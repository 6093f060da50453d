package response

import (
	"time"

	"tutorlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID          uuid.UUID `json:"id"`
	TeacherID   uuid.UUID `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	HourlyRate  int64     `json:"hourlyRate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type OfferListResponse struct {
	ID          uuid.UUID `json:"id"`
	TeacherName string    `json:"teacherName"`
	Subject     string    `json:"subject"`
	HourlyRate  int64     `json:"hourlyRate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OfferPageResponse struct {
	Offers     []*OfferListResponse `json:"offers"`
	NextCursor *string              `json:"nextCursor,omitempty"`
}

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	OfferID   uuid.UUID `json:"offerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Booked    bool      `json:"booked"`
	CreatedAt time.Time `json:"createdAt"`
}

type OfferDetailResponse struct {
	Offer          *OfferResponse  `json:"offer"`
	AvailableSlots []*SlotResponse `json:"availableSlots"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:          v.ID,
		TeacherID:   v.TeacherID,
		TeacherName: v.TeacherDisplayName,
		Subject:     v.Subject,
		Description: v.Description,
		HourlyRate:  v.HourlyRate,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromOfferDetail(v *queries.OfferDetailView) *OfferDetailResponse {
	return &OfferDetailResponse{
		Offer:          FromOfferView(v.Offer),
		AvailableSlots: FromSlotList(v.AvailableSlots),
	}
}

func FromOfferList(items []*queries.OfferListItem, next *queries.Cursor) *OfferPageResponse {
	res := &OfferPageResponse{Offers: make([]*OfferListResponse, len(items))}
	for i, it := range items {
		res.Offers[i] = &OfferListResponse{
			ID:          it.ID,
			TeacherName: it.TeacherDisplayName,
			Subject:     it.Subject,
			HourlyRate:  it.HourlyRate,
			CreatedAt:   it.CreatedAt,
		}
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

func FromSlotList(items []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(items))
	for i, it := range items {
		res[i] = &SlotResponse{
			ID:        it.ID,
			OfferID:   it.OfferID,
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
			Booked:    it.Booked,
			CreatedAt: it.CreatedAt,
		}
	}
	return res
}
