package commands

import (
	"context"
	"encoding/json"
	"errors"

	domreview "tutorlink/internal/domain/review"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotReviewable = errs.New("session is not eligible for review")
	ErrReviewerNotParty     = errs.New("reviewer is not a participant of this session")
	ErrDuplicateReview      = errs.New("duplicate review for session")
	ErrInvalidReview        = errs.New("invalid review")
	ErrReviewWriteFailed    = errs.New("review write failed")
)

type SubmitReviewRequest struct {
	SessionID uuid.UUID
	Rating    int
	Comment   string
}

type SubmitReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	Submit(ctx context.Context, req SubmitReviewRequest, reviewerID uuid.UUID) (*SubmitReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Submit(ctx context.Context, req SubmitReviewRequest, reviewerID uuid.UUID) (*SubmitReviewResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SessionByID(ctx, req.SessionID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSessionNotFound
			}
			return errs.Mark(derr, ErrReviewWriteFailed)
		}

		sess, derr := reconstructSession(snap)
		if derr != nil {
			return errs.Mark(derr, ErrReviewWriteFailed)
		}

		revieweeID, derr := domreview.CheckEligibility(sess, reviewerID)
		if derr != nil {
			return mapReviewDomainError(derr)
		}

		exists, derr := tx.Reads().ReviewExists(ctx, req.SessionID, reviewerID)
		if derr != nil {
			return errs.Mark(derr, ErrReviewWriteFailed)
		}
		if exists {
			return ErrDuplicateReview
		}

		rev, derr := domreview.NewReview(uuid.Nil, req.SessionID, reviewerID, revieweeID, req.Rating, req.Comment, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidReview)
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			// The unique constraint wins races the pre-check misses.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(derr, ErrReviewWriteFailed)
		}
		createdID = id

		if derr := tx.RatingStats().RecalcUserRatingStats(ctx, tx.DB(), revieweeID); derr != nil {
			return errs.Mark(derr, ErrReviewWriteFailed)
		}

		return uc.createReviewNotification(ctx, tx, id, revieweeID)
	})
	if err != nil {
		return nil, err
	}
	return &SubmitReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) createReviewNotification(ctx context.Context, tx shared.Tx, reviewID, revieweeID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"review_id":   reviewID,
		"reviewee_id": revieweeID,
		"type":        "review_posted",
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "review_posted", revieweeID, payload)
}

func mapReviewDomainError(err error) error {
	switch {
	case errors.Is(err, domreview.ErrSessionNotEligible):
		return ErrSessionNotReviewable
	case errors.Is(err, domreview.ErrReviewerNotParticipant):
		return ErrReviewerNotParty
	case errors.Is(err, domreview.ErrInvalidRating), errors.Is(err, domreview.ErrCommentTooLong):
		return errs.Mark(err, ErrInvalidReview)
	default:
		return errs.Mark(err, ErrReviewWriteFailed)
	}
}
