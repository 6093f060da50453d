//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tutorlink/internal/infra"
	"tutorlink/internal/usecase/queries"
	queriesmock "tutorlink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *queriesmock.MockLedgerReadStore
	q        queries.LedgerQueries
	userID   uuid.UUID
}

func (s *LedgerQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockLedgerReadStore(s.mockCtrl)
	s.q = queries.NewLedgerQueries(s.repo)
	s.userID = uuid.New()
}

func (s *LedgerQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerQueriesSuite(t *testing.T) {
	suite.Run(t, new(LedgerQueriesTestSuite))
}

func (s *LedgerQueriesTestSuite) entries(n int) []*queries.LedgerEntryView {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	out := make([]*queries.LedgerEntryView, n)
	for i := range out {
		out[i] = &queries.LedgerEntryView{
			ID:        uuid.New(),
			Kind:      "signup_bonus",
			Amount:    100,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func (s *LedgerQueriesTestSuite) TestGetBalance() {
	s.Run("returns the balance from the read store", func() {
		view := &queries.BalanceView{UserID: s.userID, Balance: 70}
		s.repo.EXPECT().FindBalance(gomock.Any(), s.userID).Return(view, nil).Times(1)

		got, err := s.q.GetBalance(context.Background(), s.userID)
		s.Require().NoError(err)
		s.Equal(int64(70), got.Balance)
	})

	s.Run("maps a missing account to ErrAccountNotFound", func() {
		s.repo.EXPECT().FindBalance(gomock.Any(), s.userID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound}).Times(1)

		_, err := s.q.GetBalance(context.Background(), s.userID)
		s.ErrorIs(err, queries.ErrAccountNotFound)
	})
}

func (s *LedgerQueriesTestSuite) TestListEntries() {
	s.Run("first page: fetches limit+1 rows and returns no cursor when short", func() {
		rows := s.entries(3)
		s.repo.EXPECT().FindEntriesFirstPage(gomock.Any(), s.userID, int32(21)).
			Return(rows, nil).Times(1)

		got, next, err := s.q.ListEntries(context.Background(), s.userID, nil, 20)
		s.Require().NoError(err)
		s.Len(got, 3)
		s.Nil(next)
	})

	s.Run("first page: trims to limit and emits a cursor for the last row", func() {
		rows := s.entries(4)
		s.repo.EXPECT().FindEntriesFirstPage(gomock.Any(), s.userID, int32(4)).
			Return(rows, nil).Times(1)

		got, next, err := s.q.ListEntries(context.Background(), s.userID, nil, 3)
		s.Require().NoError(err)
		s.Len(got, 3)
		s.Require().NotNil(next)

		lastCreatedAt, lastID, derr := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(derr)
		s.Equal(rows[2].ID, lastID)
		s.Equal(rows[2].CreatedAt.UnixMicro(), lastCreatedAt.UnixMicro())
	})

	s.Run("keyset page: decodes the cursor and forwards its position", func() {
		// Matches the decoder output exactly, including the location.
		lastCreatedAt := time.UnixMicro(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC).UnixMicro())
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastCreatedAt, lastID)}

		s.repo.EXPECT().FindEntriesKeyset(gomock.Any(), s.userID, lastCreatedAt, lastID, int32(21)).
			Return(s.entries(1), nil).Times(1)

		got, next, err := s.q.ListEntries(context.Background(), s.userID, cursor, 20)
		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("broken cursor yields ErrInvalidCursor without touching the store", func() {
		_, _, err := s.q.ListEntries(context.Background(), s.userID, &queries.Cursor{After: "garbage"}, 20)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})

	s.Run("out-of-range limits fall back to the defaults", func() {
		s.repo.EXPECT().FindEntriesFirstPage(gomock.Any(), s.userID, int32(21)).
			Return(nil, nil).Times(1)

		_, _, err := s.q.ListEntries(context.Background(), s.userID, nil, -1)
		s.Require().NoError(err)
	})
}
