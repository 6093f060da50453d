package commands

import (
	"context"
	"time"

	"tutorlink/internal/domain/offer"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotOfferOwner    = errs.New("offer not owned by user")
	ErrInvalidOffer     = errs.New("invalid offer")
	ErrInvalidSlot      = errs.New("invalid time slot")
	ErrSlotOverlap      = errs.New("time slot overlaps an existing slot")
	ErrOfferWriteFailed = errs.New("offer write failed")
)

type CreateOfferRequest struct {
	Subject     string
	Description string
	HourlyRate  int64
}

type CreateOfferResult struct {
	OfferID uuid.UUID
}

type AddSlotRequest struct {
	OfferID uuid.UUID
	Start   time.Time
	End     time.Time
}

type AddSlotResult struct {
	SlotID uuid.UUID
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, req CreateOfferRequest, teacherID uuid.UUID) (*CreateOfferResult, error)
	AddSlot(ctx context.Context, req AddSlotRequest, teacherID uuid.UUID) (*AddSlotResult, error)
	DeactivateOffer(ctx context.Context, offerID, teacherID uuid.UUID) error
}

type offerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferUseCase(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerUseCaseImpl{uow: uow, clock: clk}
}

func (uc *offerUseCaseImpl) CreateOffer(ctx context.Context, req CreateOfferRequest, teacherID uuid.UUID) (*CreateOfferResult, error) {
	subject, err := offer.NewSubject(req.Subject)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOffer)
	}
	rate, err := offer.NewPoints(req.HourlyRate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOffer)
	}

	entity, err := offer.NewOffer(teacherID, subject, req.Description, rate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOffer)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Offers().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return errs.Mark(derr, ErrOfferWriteFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateOfferResult{OfferID: createdID}, nil
}

func (uc *offerUseCaseImpl) AddSlot(ctx context.Context, req AddSlotRequest, teacherID uuid.UUID) (*AddSlotResult, error) {
	timeRange, err := offer.NewTimeRange(req.Start, req.End, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offerSnap, derr := tx.Reads().OfferByID(ctx, req.OfferID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return errs.Mark(derr, ErrOfferWriteFailed)
		}
		if offerSnap.TeacherID != teacherID {
			return ErrNotOfferOwner
		}
		if !offerSnap.IsActive {
			return ErrOfferInactive
		}

		overlap, derr := tx.Slots().HasOverlap(ctx, tx.DB(), req.OfferID, timeRange)
		if derr != nil {
			return errs.Mark(derr, ErrOfferWriteFailed)
		}
		if overlap {
			return ErrSlotOverlap
		}

		slot := offer.NewSlot(req.OfferID, timeRange)
		id, derr := tx.Slots().Create(ctx, tx.DB(), slot)
		if derr != nil {
			return errs.Mark(derr, ErrOfferWriteFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AddSlotResult{SlotID: createdID}, nil
}

func (uc *offerUseCaseImpl) DeactivateOffer(ctx context.Context, offerID, teacherID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, derr := tx.Offers().Deactivate(ctx, tx.DB(), offerID, teacherID)
		if derr != nil {
			return errs.Mark(derr, ErrOfferWriteFailed)
		}
		if affected == 0 {
			return ErrOfferNotFound
		}
		return nil
	})
}
