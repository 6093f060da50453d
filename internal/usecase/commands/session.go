package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"tutorlink/internal/domain/offer"
	"tutorlink/internal/domain/session"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/queries"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound          = errs.New("offer not found")
	ErrOfferInactive          = errs.New("offer is inactive")
	ErrSlotNotFound           = errs.New("time slot not found")
	ErrSlotOfferMismatch      = errs.New("time slot does not belong to offer")
	ErrSlotUnavailable        = errs.New("time slot is unavailable")
	ErrSessionNotFound        = errs.New("session not found")
	ErrSameParty              = errs.New("student and teacher must be different users")
	ErrNotParticipant         = errs.New("actor is not a participant of this session")
	ErrTeacherOnly            = errs.New("only the teacher can perform this action")
	ErrInvalidTransition      = errs.New("invalid session status transition")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrDuplicateRequest       = errs.New("duplicate request with different payload")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrUnpriceableSlot        = errs.New("slot is too short to price")
	ErrBookingFailed          = errs.New("booking failed")
)

const idempotencyEndpointBookSession = "POST /sessions"

type BookSessionRequest struct {
	OfferID uuid.UUID
	SlotID  uuid.UUID
}

type BookSessionResult struct {
	Session    *queries.SessionView
	IsReplayed bool
}

type SessionCommands interface {
	Book(ctx context.Context, req BookSessionRequest, studentID uuid.UUID, idempotencyKey uuid.UUID) (*BookSessionResult, error)
	Confirm(ctx context.Context, sessionID, actorID uuid.UUID) error
	Cancel(ctx context.Context, sessionID, actorID uuid.UUID) error
	Complete(ctx context.Context, sessionID, actorID uuid.UUID) error
}

type sessionUseCaseImpl struct {
	uow            shared.UnitOfWork
	ledger         *LedgerService
	calculator     session.PriceCalculator
	sessionQueries queries.SessionQueries
	clock          clock.Clock
}

func NewSessionUseCase(
	uow shared.UnitOfWork,
	ledger *LedgerService,
	calculator session.PriceCalculator,
	sessionQueries queries.SessionQueries,
	clk clock.Clock,
) SessionCommands {
	return &sessionUseCaseImpl{
		uow:            uow,
		ledger:         ledger,
		calculator:     calculator,
		sessionQueries: sessionQueries,
		clock:          clk,
	}
}

func (uc *sessionUseCaseImpl) Book(
	ctx context.Context,
	req BookSessionRequest,
	studentID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*BookSessionResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := uc.clock.Now().Add(24 * time.Hour)

	var (
		sessionID  uuid.UUID
		isReplayed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayedID, derr := uc.claimIdempotencyKey(ctx, tx, idempotencyKey, studentID, requestHash, expiresAt)
		if derr != nil {
			return derr
		}
		if replayedID != nil {
			sessionID = *replayedID
			isReplayed = true
			return nil
		}

		newID, derr := uc.bookInTx(ctx, tx, req, studentID, idempotencyKey)
		if derr != nil {
			return derr
		}
		sessionID = newID
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.sessionQueries.GetByIDSystem(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingFailed)
	}
	return &BookSessionResult{Session: view, IsReplayed: isReplayed}, nil
}

// claimIdempotencyKey inserts a processing row for the key. When the
// key already exists it returns the stored session ID for a completed
// replay, or an error for an in-flight or mismatched request.
func (uc *sessionUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*uuid.UUID, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, idempotencyEndpointBookSession, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted > 0 {
		return nil, nil
	}

	record, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch record.Status {
	case "completed":
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		if record.ResultSessionID == nil {
			return nil, errs.Mark(errs.New("completed request missing result session ID"), ErrIdempotencyCheckFailed)
		}
		return record.ResultSessionID, nil

	case "processing":
		if record.ExpiresAt.Before(uc.clock.Now()) {
			claimed, cerr := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
			if cerr != nil {
				return nil, errs.Mark(cerr, ErrIdempotencyCheckFailed)
			}
			if claimed > 0 {
				return nil, nil
			}
		}
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (uc *sessionUseCaseImpl) bookInTx(
	ctx context.Context,
	tx shared.Tx,
	req BookSessionRequest,
	studentID, idempotencyKey uuid.UUID,
) (uuid.UUID, error) {
	offerSnap, err := tx.Reads().OfferByID(ctx, req.OfferID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrOfferNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}
	if !offerSnap.IsActive {
		return uuid.Nil, ErrOfferInactive
	}
	if offerSnap.TeacherID == studentID {
		return uuid.Nil, ErrSameParty
	}

	slotSnap, err := tx.Reads().SlotByID(ctx, req.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrSlotNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}
	if slotSnap.OfferID != req.OfferID {
		return uuid.Nil, ErrSlotOfferMismatch
	}

	// The conditional UPDATE is the real race arbiter; concurrent
	// bookings of the same slot leave exactly one winner.
	claimed, err := tx.Slots().Claim(ctx, tx.DB(), req.SlotID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}
	if claimed == 0 {
		return uuid.Nil, ErrSlotUnavailable
	}

	hourlyRate, err := offer.NewPoints(offerSnap.HourlyRate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}
	timeRange := offer.ReconstructTimeRange(slotSnap.Start, slotSnap.End)
	price := uc.calculator.CalculatePrice(hourlyRate, timeRange.Duration())
	fee := uc.calculator.CalculateFee(price)

	sess, err := session.NewSession(req.SlotID, req.OfferID, studentID, offerSnap.TeacherID, price, fee)
	if err != nil {
		return uuid.Nil, mapSessionDomainError(err)
	}

	sessionID, err := tx.Sessions().Create(ctx, tx.DB(), sess)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}

	if err := uc.ledger.Transfer(ctx, tx, studentID, offerSnap.TeacherID, price.Value(), fee.Value(), sessionID); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, studentID, calculateIDHash(sessionID), sessionID); err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}

	if err := uc.createSessionNotification(ctx, tx, sessionID, offerSnap.TeacherID, "session_booked"); err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingFailed)
	}

	return sessionID, nil
}

func (uc *sessionUseCaseImpl) Confirm(ctx context.Context, sessionID, actorID uuid.UUID) error {
	return uc.transition(ctx, sessionID, actorID, "session_confirmed", func(sess *session.Session) error {
		return sess.Confirm(actorID)
	}, nil)
}

func (uc *sessionUseCaseImpl) Complete(ctx context.Context, sessionID, actorID uuid.UUID) error {
	return uc.transition(ctx, sessionID, actorID, "session_completed", func(sess *session.Session) error {
		return sess.Complete(actorID)
	}, nil)
}

func (uc *sessionUseCaseImpl) Cancel(ctx context.Context, sessionID, actorID uuid.UUID) error {
	return uc.transition(ctx, sessionID, actorID, "session_cancelled", func(sess *session.Session) error {
		return sess.Cancel(actorID)
	}, func(ctx context.Context, tx shared.Tx, sess *session.Session) error {
		if _, err := tx.Slots().Release(ctx, tx.DB(), sess.SlotID()); err != nil {
			return errs.Mark(err, ErrBookingFailed)
		}
		return uc.ledger.Reverse(ctx, tx, sess.StudentID(), sess.TeacherID(), sess.Price().Value(), sess.Fee().Value(), sess.ID())
	})
}

// transition loads the session, applies the domain transition, then
// persists it with a conditional UPDATE keyed on the loaded status so
// a concurrent transition loses cleanly.
func (uc *sessionUseCaseImpl) transition(
	ctx context.Context,
	sessionID, actorID uuid.UUID,
	notificationTopic string,
	apply func(*session.Session) error,
	sideEffects func(context.Context, shared.Tx, *session.Session) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SessionByID(ctx, sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSessionNotFound
			}
			return errs.Mark(err, ErrBookingFailed)
		}

		sess, err := reconstructSession(snap)
		if err != nil {
			return errs.Mark(err, ErrBookingFailed)
		}
		from := sess.Status()

		if err := apply(sess); err != nil {
			return mapSessionDomainError(err)
		}

		affected, err := tx.Sessions().UpdateStatus(ctx, tx.DB(), sessionID, from, sess.Status())
		if err != nil {
			return errs.Mark(err, ErrBookingFailed)
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		if sideEffects != nil {
			if err := sideEffects(ctx, tx, sess); err != nil {
				return err
			}
		}

		// The counterpart of whoever acted gets the notification.
		recipientID := sess.TeacherID()
		if actorID == sess.TeacherID() {
			recipientID = sess.StudentID()
		}
		return uc.createSessionNotification(ctx, tx, sessionID, recipientID, notificationTopic)
	})
}

func (uc *sessionUseCaseImpl) createSessionNotification(ctx context.Context, tx shared.Tx, sessionID, recipientID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"session_id": sessionID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, recipientID, payload)
}

func reconstructSession(snap *shared.SessionSnapshot) (*session.Session, error) {
	status := session.Status(snap.Status)
	if !status.IsValid() {
		return nil, errs.New("invalid session status in storage")
	}
	price, err := offer.NewPoints(snap.Price)
	if err != nil {
		return nil, err
	}
	fee, err := offer.NewPoints(snap.Fee)
	if err != nil {
		return nil, err
	}
	return session.ReconstructSession(
		snap.ID, snap.SlotID, snap.OfferID, snap.StudentID, snap.TeacherID,
		status, price, fee, time.Time{}, time.Time{},
	), nil
}

func mapSessionDomainError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotParticipant):
		return ErrNotParticipant
	case errors.Is(err, session.ErrTeacherOnly):
		return ErrTeacherOnly
	case errors.Is(err, session.ErrInvalidTransition):
		return ErrInvalidTransition
	case errors.Is(err, session.ErrSameParty):
		return ErrSameParty
	case errors.Is(err, session.ErrNonPositivePrice):
		return ErrUnpriceableSlot
	default:
		return errs.Mark(err, ErrBookingFailed)
	}
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
