package commands

import (
	"context"

	domledger "tutorlink/internal/domain/ledger"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInsufficientPoints = errs.New("insufficient points balance")
	ErrLedgerWriteFailed  = errs.New("ledger write failed")
)

// LedgerService moves points between the two parties of a session.
// All methods run inside the caller's transaction; the conditional
// debit is the only balance guard, the CHECK constraint backs it up.
type LedgerService struct{}

func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// Transfer debits the student for the full price, credits the teacher
// with the price minus the platform fee, and records the burned fee.
// A zero-row debit means the student cannot cover the price.
func (s *LedgerService) Transfer(ctx context.Context, tx shared.Tx, studentID, teacherID uuid.UUID, price, fee int64, sessionID uuid.UUID) error {
	affected, err := tx.Ledger().Debit(ctx, tx.DB(), studentID, price)
	if err != nil {
		return errs.Mark(err, ErrLedgerWriteFailed)
	}
	if affected == 0 {
		return ErrInsufficientPoints
	}

	payout := price - fee
	if err := tx.Ledger().Credit(ctx, tx.DB(), teacherID, payout); err != nil {
		return errs.Mark(err, ErrLedgerWriteFailed)
	}

	entries := []struct {
		userID uuid.UUID
		kind   domledger.EntryKind
		amount int64
	}{
		{studentID, domledger.KindBookingDebit, -price},
		{teacherID, domledger.KindPayoutCredit, payout},
		{studentID, domledger.KindFeeBurned, fee},
	}
	for _, e := range entries {
		if e.amount == 0 {
			continue
		}
		entry, derr := domledger.NewEntry(e.userID, &sessionID, e.kind, e.amount)
		if derr != nil {
			return errs.Mark(derr, ErrLedgerWriteFailed)
		}
		if _, err := tx.Ledger().InsertEntry(ctx, tx.DB(), entry); err != nil {
			return errs.Mark(err, ErrLedgerWriteFailed)
		}
	}
	return nil
}

// Reverse undoes a transfer: the student gets the full price back and
// the teacher gives up the payout. The refund_credit entry doubles as
// the idempotency guard; once it exists a replay changes nothing.
func (s *LedgerService) Reverse(ctx context.Context, tx shared.Tx, studentID, teacherID uuid.UUID, price, fee int64, sessionID uuid.UUID) error {
	refund, err := domledger.NewEntry(studentID, &sessionID, domledger.KindRefundCredit, price)
	if err != nil {
		return errs.Mark(err, ErrLedgerWriteFailed)
	}
	inserted, err := tx.Ledger().InsertEntry(ctx, tx.DB(), refund)
	if err != nil {
		return errs.Mark(err, ErrLedgerWriteFailed)
	}
	if inserted == 0 {
		// Already reversed.
		return nil
	}

	payout := price - fee
	affected, err := tx.Ledger().Debit(ctx, tx.DB(), teacherID, payout)
	if err != nil {
		return errs.Mark(err, ErrLedgerWriteFailed)
	}
	if affected == 0 {
		return ErrInsufficientPoints
	}
	if err := tx.Ledger().Credit(ctx, tx.DB(), studentID, price); err != nil {
		return errs.Mark(err, ErrLedgerWriteFailed)
	}

	if payout != 0 {
		reversal, derr := domledger.NewEntry(teacherID, &sessionID, domledger.KindReversalDebit, -payout)
		if derr != nil {
			return errs.Mark(derr, ErrLedgerWriteFailed)
		}
		if _, err := tx.Ledger().InsertEntry(ctx, tx.DB(), reversal); err != nil {
			return errs.Mark(err, ErrLedgerWriteFailed)
		}
	}
	return nil
}
