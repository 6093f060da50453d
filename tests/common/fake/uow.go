//go:build unit

// Package fake provides an in-memory UnitOfWork for exercising command
// use cases without a database. State mutations inside Within are
// rolled back when the callback returns an error, mirroring the
// transactional behavior of the real implementation.
package fake

import (
	"context"
	"log/slog"
	"time"

	"tutorlink/internal/domain/ledger"
	"tutorlink/internal/domain/offer"
	"tutorlink/internal/domain/review"
	"tutorlink/internal/domain/session"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra"
	"tutorlink/internal/infra/db"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type LedgerEntry struct {
	UserID    uuid.UUID
	SessionID *uuid.UUID
	Kind      string
	Amount    int64
}

type NotificationJob struct {
	Kind        string
	Topic       string
	RecipientID uuid.UUID
}

type ReviewRecord struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Rating     int
	Comment    string
}

type state struct {
	users         map[uuid.UUID]*shared.UserSnapshot
	offers        map[uuid.UUID]*shared.OfferSnapshot
	slots         map[uuid.UUID]*shared.SlotSnapshot
	sessions      map[uuid.UUID]*shared.SessionSnapshot
	balances      map[uuid.UUID]int64
	accounts      map[uuid.UUID]bool
	entries       []LedgerEntry
	idempotency   map[string]*shared.IdempotencyRecord
	reviews       []ReviewRecord
	notifications []NotificationJob
	statsRecalcs  []uuid.UUID
}

func newState() *state {
	return &state{
		users:       make(map[uuid.UUID]*shared.UserSnapshot),
		offers:      make(map[uuid.UUID]*shared.OfferSnapshot),
		slots:       make(map[uuid.UUID]*shared.SlotSnapshot),
		sessions:    make(map[uuid.UUID]*shared.SessionSnapshot),
		balances:    make(map[uuid.UUID]int64),
		accounts:    make(map[uuid.UUID]bool),
		idempotency: make(map[string]*shared.IdempotencyRecord),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		u := *v
		c.users[k] = &u
	}
	for k, v := range s.offers {
		o := *v
		c.offers[k] = &o
	}
	for k, v := range s.slots {
		sl := *v
		c.slots[k] = &sl
	}
	for k, v := range s.sessions {
		ss := *v
		c.sessions[k] = &ss
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.idempotency {
		r := *v
		c.idempotency[k] = &r
	}
	c.entries = append(c.entries, s.entries...)
	c.reviews = append(c.reviews, s.reviews...)
	c.notifications = append(c.notifications, s.notifications...)
	c.statsRecalcs = append(c.statsRecalcs, s.statsRecalcs...)
	return c
}

// UnitOfWork is the in-memory double of shared.UnitOfWork. Seed state
// through the exported helpers, run commands, then assert on the
// exported accessors.
type UnitOfWork struct {
	st *state
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{st: newState()}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

func idemKey(key, userID uuid.UUID) string {
	return key.String() + "/" + userID.String()
}

// --- seeding helpers ---

func (f *UnitOfWork) SeedUser(id uuid.UUID, email, role string) {
	f.st.users[id] = &shared.UserSnapshot{ID: id, Email: email, Role: role, IsActive: true}
}

func (f *UnitOfWork) SeedOffer(id, teacherID uuid.UUID, hourlyRate int64, active bool) {
	f.st.offers[id] = &shared.OfferSnapshot{ID: id, TeacherID: teacherID, Subject: "Algebra", HourlyRate: hourlyRate, IsActive: active}
}

func (f *UnitOfWork) SeedSlot(id, offerID uuid.UUID, start, end time.Time, booked bool) {
	f.st.slots[id] = &shared.SlotSnapshot{ID: id, OfferID: offerID, Start: start, End: end, Booked: booked}
}

func (f *UnitOfWork) SeedSession(snap shared.SessionSnapshot) {
	s := snap
	f.st.sessions[snap.ID] = &s
}

func (f *UnitOfWork) SeedAccount(userID uuid.UUID, balance int64) {
	f.st.accounts[userID] = true
	f.st.balances[userID] = balance
}

func (f *UnitOfWork) SeedIdempotency(key, userID uuid.UUID, status, requestHash string, resultSessionID *uuid.UUID, expiresAt time.Time) {
	f.st.idempotency[idemKey(key, userID)] = &shared.IdempotencyRecord{
		Key:             key,
		UserID:          userID,
		Status:          status,
		RequestHash:     requestHash,
		ResultSessionID: resultSessionID,
		ExpiresAt:       expiresAt,
	}
}

// --- assertion accessors ---

func (f *UnitOfWork) Balance(userID uuid.UUID) int64 { return f.st.balances[userID] }

func (f *UnitOfWork) Slot(id uuid.UUID) *shared.SlotSnapshot { return f.st.slots[id] }

func (f *UnitOfWork) Session(id uuid.UUID) *shared.SessionSnapshot { return f.st.sessions[id] }

func (f *UnitOfWork) Sessions() []*shared.SessionSnapshot {
	out := make([]*shared.SessionSnapshot, 0, len(f.st.sessions))
	for _, s := range f.st.sessions {
		out = append(out, s)
	}
	return out
}

func (f *UnitOfWork) Entries() []LedgerEntry { return f.st.entries }

func (f *UnitOfWork) EntriesByKind(kind ledger.EntryKind) []LedgerEntry {
	var out []LedgerEntry
	for _, e := range f.st.entries {
		if e.Kind == kind.String() {
			out = append(out, e)
		}
	}
	return out
}

func (f *UnitOfWork) Reviews() []ReviewRecord { return f.st.reviews }

func (f *UnitOfWork) Notifications() []NotificationJob { return f.st.notifications }

func (f *UnitOfWork) StatsRecalcs() []uuid.UUID { return f.st.statsRecalcs }

// --- shared.UnitOfWork ---

func (f *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backup := f.st.clone()
	if err := fn(ctx, &fakeTx{f: f}); err != nil {
		f.st = backup
		return err
	}
	return nil
}

func (f *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *UnitOfWork) CommandReads() shared.CommandReads {
	return &fakeReads{f: f}
}

// --- shared.Tx ---

type fakeTx struct {
	f *UnitOfWork
}

func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUsers{f: t.f} }
func (t *fakeTx) Offers() shared.OfferRepository               { return &fakeOffers{f: t.f} }
func (t *fakeTx) Slots() shared.SlotRepository                 { return &fakeSlots{f: t.f} }
func (t *fakeTx) Sessions() shared.SessionRepository           { return &fakeSessions{f: t.f} }
func (t *fakeTx) Ledger() shared.LedgerRepository              { return &fakeLedger{f: t.f} }
func (t *fakeTx) Reviews() shared.ReviewRepository             { return &fakeReviews{f: t.f} }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository    { return &fakeStats{f: t.f} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository    { return &fakeIdempotency{f: t.f} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotifications{f: t.f} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{f: t.f} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

// --- shared.CommandReads ---

type fakeReads struct {
	f *UnitOfWork
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := r.f.st.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, notFound("user not found")
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.f.st.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *fakeReads) OfferByID(_ context.Context, id uuid.UUID) (*shared.OfferSnapshot, error) {
	if o, ok := r.f.st.offers[id]; ok {
		c := *o
		return &c, nil
	}
	return nil, notFound("offer not found")
}

func (r *fakeReads) SlotByID(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	if s, ok := r.f.st.slots[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, notFound("slot not found")
}

func (r *fakeReads) SessionByID(_ context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	if s, ok := r.f.st.sessions[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, notFound("session not found")
}

func (r *fakeReads) AccountByUserID(_ context.Context, userID uuid.UUID) (*shared.AccountSnapshot, error) {
	if !r.f.st.accounts[userID] {
		return nil, notFound("account not found")
	}
	return &shared.AccountSnapshot{UserID: userID, Balance: r.f.st.balances[userID]}, nil
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if rec, ok := r.f.st.idempotency[idemKey(key, userID)]; ok {
		c := *rec
		return &c, nil
	}
	return nil, notFound("idempotency key not found")
}

func (r *fakeReads) ReviewExists(_ context.Context, sessionID, reviewerID uuid.UUID) (bool, error) {
	for _, rev := range r.f.st.reviews {
		if rev.SessionID == sessionID && rev.ReviewerID == reviewerID {
			return true, nil
		}
	}
	return false, nil
}

// --- repositories ---

type fakeUsers struct{ f *UnitOfWork }

func (r *fakeUsers) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.f.st.users {
		if existing.Email == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "duplicate email", nil)
		}
	}
	r.f.st.users[u.ID()] = &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName().Value(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
	return u.ID(), nil
}

func (r *fakeUsers) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error { return nil }

type fakeOffers struct{ f *UnitOfWork }

func (r *fakeOffers) Create(_ context.Context, _ db.DBTX, o *offer.Offer) (uuid.UUID, error) {
	r.f.st.offers[o.ID()] = &shared.OfferSnapshot{
		ID:         o.ID(),
		TeacherID:  o.TeacherID(),
		Subject:    o.Subject().Value(),
		HourlyRate: o.HourlyRate().Value(),
		IsActive:   o.IsActive(),
	}
	return o.ID(), nil
}

func (r *fakeOffers) Deactivate(_ context.Context, _ db.DBTX, offerID, teacherID uuid.UUID) (int64, error) {
	o, ok := r.f.st.offers[offerID]
	if !ok || o.TeacherID != teacherID || !o.IsActive {
		return 0, nil
	}
	o.IsActive = false
	return 1, nil
}

type fakeSlots struct{ f *UnitOfWork }

func (r *fakeSlots) Create(_ context.Context, _ db.DBTX, s *offer.Slot) (uuid.UUID, error) {
	r.f.st.slots[s.ID()] = &shared.SlotSnapshot{
		ID:      s.ID(),
		OfferID: s.OfferID(),
		Start:   s.TimeRange().Start(),
		End:     s.TimeRange().End(),
		Booked:  s.Booked(),
	}
	return s.ID(), nil
}

func (r *fakeSlots) Claim(_ context.Context, _ db.DBTX, slotID uuid.UUID) (int64, error) {
	s, ok := r.f.st.slots[slotID]
	if !ok || s.Booked {
		return 0, nil
	}
	s.Booked = true
	return 1, nil
}

func (r *fakeSlots) Release(_ context.Context, _ db.DBTX, slotID uuid.UUID) (int64, error) {
	s, ok := r.f.st.slots[slotID]
	if !ok || !s.Booked {
		return 0, nil
	}
	s.Booked = false
	return 1, nil
}

func (r *fakeSlots) HasOverlap(_ context.Context, _ db.DBTX, offerID uuid.UUID, tr offer.TimeRange) (bool, error) {
	for _, s := range r.f.st.slots {
		if s.OfferID != offerID {
			continue
		}
		if s.Start.Before(tr.End()) && tr.Start().Before(s.End) {
			return true, nil
		}
	}
	return false, nil
}

type fakeSessions struct{ f *UnitOfWork }

func (r *fakeSessions) Create(_ context.Context, _ db.DBTX, s *session.Session) (uuid.UUID, error) {
	r.f.st.sessions[s.ID()] = &shared.SessionSnapshot{
		ID:        s.ID(),
		SlotID:    s.SlotID(),
		OfferID:   s.OfferID(),
		StudentID: s.StudentID(),
		TeacherID: s.TeacherID(),
		Status:    s.Status().String(),
		Price:     s.Price().Value(),
		Fee:       s.Fee().Value(),
	}
	return s.ID(), nil
}

func (r *fakeSessions) UpdateStatus(_ context.Context, _ db.DBTX, sessionID uuid.UUID, from, to session.Status) (int64, error) {
	s, ok := r.f.st.sessions[sessionID]
	if !ok || s.Status != from.String() {
		return 0, nil
	}
	s.Status = to.String()
	return 1, nil
}

type fakeLedger struct{ f *UnitOfWork }

func (r *fakeLedger) CreateAccount(_ context.Context, _ db.DBTX, userID uuid.UUID, initialBalance int64) error {
	r.f.st.accounts[userID] = true
	r.f.st.balances[userID] = initialBalance
	return nil
}

func (r *fakeLedger) Debit(_ context.Context, _ db.DBTX, userID uuid.UUID, amount int64) (int64, error) {
	if !r.f.st.accounts[userID] || r.f.st.balances[userID] < amount {
		return 0, nil
	}
	r.f.st.balances[userID] -= amount
	return 1, nil
}

func (r *fakeLedger) Credit(_ context.Context, _ db.DBTX, userID uuid.UUID, amount int64) error {
	if !r.f.st.accounts[userID] {
		return notFound("account not found")
	}
	r.f.st.balances[userID] += amount
	return nil
}

func (r *fakeLedger) InsertEntry(_ context.Context, _ db.DBTX, e *ledger.Entry) (int64, error) {
	if e.SessionID() != nil {
		for _, existing := range r.f.st.entries {
			if existing.SessionID != nil && *existing.SessionID == *e.SessionID() && existing.Kind == e.Kind().String() {
				return 0, nil
			}
		}
	}
	r.f.st.entries = append(r.f.st.entries, LedgerEntry{
		UserID:    e.UserID(),
		SessionID: e.SessionID(),
		Kind:      e.Kind().String(),
		Amount:    e.Amount(),
	})
	return 1, nil
}

type fakeReviews struct{ f *UnitOfWork }

func (r *fakeReviews) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	for _, existing := range r.f.st.reviews {
		if existing.SessionID == rev.SessionID() && existing.ReviewerID == rev.ReviewerID() {
			return uuid.Nil, infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "duplicate review", nil)
		}
	}
	r.f.st.reviews = append(r.f.st.reviews, ReviewRecord{
		ID:         rev.ID(),
		SessionID:  rev.SessionID(),
		ReviewerID: rev.ReviewerID(),
		RevieweeID: rev.RevieweeID(),
		Rating:     rev.Rating().Value(),
		Comment:    rev.Comment().String(),
	})
	return rev.ID(), nil
}

type fakeStats struct{ f *UnitOfWork }

func (r *fakeStats) RecalcUserRatingStats(_ context.Context, _ db.DBTX, revieweeID uuid.UUID) error {
	r.f.st.statsRecalcs = append(r.f.st.statsRecalcs, revieweeID)
	return nil
}

type fakeIdempotency struct{ f *UnitOfWork }

func (r *fakeIdempotency) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error) {
	k := idemKey(key, userID)
	if _, ok := r.f.st.idempotency[k]; ok {
		return 0, nil
	}
	r.f.st.idempotency[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return 1, nil
}

func (r *fakeIdempotency) UpdateStatusCompleted(_ context.Context, _ db.DBTX, key, userID uuid.UUID, _ string, sessionID uuid.UUID) error {
	rec, ok := r.f.st.idempotency[idemKey(key, userID)]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = "completed"
	id := sessionID
	rec.ResultSessionID = &id
	return nil
}

func (r *fakeIdempotency) ClaimExpiredIdempotencyKey(_ context.Context, _ db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	rec, ok := r.f.st.idempotency[idemKey(key, userID)]
	if !ok || rec.Status != "processing" || !rec.ExpiresAt.Before(time.Now()) {
		return 0, nil
	}
	rec.RequestHash = requestHash
	rec.ExpiresAt = expiresAt
	return 1, nil
}

type fakeNotifications struct{ f *UnitOfWork }

func (r *fakeNotifications) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, recipientID uuid.UUID, _ []byte) error {
	r.f.st.notifications = append(r.f.st.notifications, NotificationJob{Kind: kind, Topic: topic, RecipientID: recipientID})
	return nil
}
