package ledger

type EntryKind string

// Ledger entry kinds. A session produces at most one entry per kind,
// which is what makes transfers and reversals replay-safe.
const (
	KindBookingDebit  EntryKind = "booking_debit"
	KindPayoutCredit  EntryKind = "payout_credit"
	KindFeeBurned     EntryKind = "fee_burned"
	KindRefundCredit  EntryKind = "refund_credit"
	KindReversalDebit EntryKind = "reversal_debit"
	KindSignupBonus   EntryKind = "signup_bonus"
)

func (k EntryKind) String() string {
	return string(k)
}

func (k EntryKind) IsValid() bool {
	switch k {
	case KindBookingDebit, KindPayoutCredit, KindFeeBurned,
		KindRefundCredit, KindReversalDebit, KindSignupBonus:
		return true
	default:
		return false
	}
}
