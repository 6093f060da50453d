//go:build unit

package ledger_test

import (
	"testing"

	"tutorlink/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()

	cases := []struct {
		name      string
		sessionID *uuid.UUID
		kind      ledger.EntryKind
		amount    int64
		errIs     error
	}{
		{name: "booking debit is negative", sessionID: &sessionID, kind: ledger.KindBookingDebit, amount: -30},
		{name: "booking debit rejects positive", sessionID: &sessionID, kind: ledger.KindBookingDebit, amount: 30, errIs: ledger.ErrWrongAmountSign},
		{name: "payout credit is positive", sessionID: &sessionID, kind: ledger.KindPayoutCredit, amount: 27},
		{name: "payout credit rejects negative", sessionID: &sessionID, kind: ledger.KindPayoutCredit, amount: -27, errIs: ledger.ErrWrongAmountSign},
		{name: "fee burned is a positive audit entry", sessionID: &sessionID, kind: ledger.KindFeeBurned, amount: 3},
		{name: "refund credit is positive", sessionID: &sessionID, kind: ledger.KindRefundCredit, amount: 30},
		{name: "reversal debit is negative", sessionID: &sessionID, kind: ledger.KindReversalDebit, amount: -27},
		{name: "signup bonus needs no session", kind: ledger.KindSignupBonus, amount: 100},
		{name: "zero amount rejected", sessionID: &sessionID, kind: ledger.KindPayoutCredit, amount: 0, errIs: ledger.ErrZeroAmount},
		{name: "session kinds require a session", kind: ledger.KindBookingDebit, amount: -30, errIs: ledger.ErrMissingSession},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entry, err := ledger.NewEntry(userID, c.sessionID, c.kind, c.amount)
			if c.errIs != nil {
				require.Nil(t, entry)
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.amount, entry.Amount())
			assert.Equal(t, c.kind, entry.Kind())
			assert.NotEqual(t, uuid.Nil, entry.ID())
		})
	}
}

func TestEntryKindIsValid(t *testing.T) {
	for _, k := range []ledger.EntryKind{
		ledger.KindBookingDebit, ledger.KindPayoutCredit, ledger.KindFeeBurned,
		ledger.KindRefundCredit, ledger.KindReversalDebit, ledger.KindSignupBonus,
	} {
		assert.True(t, k.IsValid())
	}
	assert.False(t, ledger.EntryKind("loyalty_bonus").IsValid())
}
