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

type ReviewQueriesTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	repo       *queriesmock.MockReviewReadStore
	q          queries.ReviewQueries
	revieweeID uuid.UUID
}

func (s *ReviewQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockReviewReadStore(s.mockCtrl)
	s.q = queries.NewReviewQueries(s.repo)
	s.revieweeID = uuid.New()
}

func (s *ReviewQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReviewQueriesTestSuite))
}

func (s *ReviewQueriesTestSuite) items(n int) []*queries.ReviewListItem {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	out := make([]*queries.ReviewListItem, n)
	for i := range out {
		out[i] = &queries.ReviewListItem{
			ID:                  uuid.New(),
			ReviewerDisplayName: "Reviewer",
			Rating:              5,
			CreatedAt:           base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func (s *ReviewQueriesTestSuite) TestGetByID() {
	s.Run("returns the review from the read store", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&queries.ReviewView{ID: id, Rating: 4}, nil).Times(1)

		got, err := s.q.GetByID(context.Background(), id)
		s.Require().NoError(err)
		s.Equal(int32(4), got.Rating)
	})

	s.Run("maps a missing review to ErrReviewNotFound", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound}).Times(1)

		_, err := s.q.GetByID(context.Background(), id)
		s.ErrorIs(err, queries.ErrReviewNotFound)
	})
}

func (s *ReviewQueriesTestSuite) TestListByReviewee() {
	s.Run("forwards rating filters to the first-page query", func() {
		minRating, maxRating := 3, 5
		filters := queries.ReviewFilters{MinRating: &minRating, MaxRating: &maxRating}

		s.repo.EXPECT().FindByRevieweeFirstPage(gomock.Any(), s.revieweeID, int32(21), &minRating, &maxRating).
			Return(s.items(2), nil).Times(1)

		got, next, err := s.q.ListByReviewee(context.Background(), s.revieweeID, filters, nil, 20)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Nil(next)
	})

	s.Run("trims to limit and emits a cursor when more rows exist", func() {
		rows := s.items(3)
		s.repo.EXPECT().FindByRevieweeFirstPage(gomock.Any(), s.revieweeID, int32(3), nil, nil).
			Return(rows, nil).Times(1)

		got, next, err := s.q.ListByReviewee(context.Background(), s.revieweeID, queries.ReviewFilters{}, nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)

		_, lastID, derr := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(derr)
		s.Equal(rows[1].ID, lastID)
	})

	s.Run("keyset page: decodes the cursor and keeps the filters", func() {
		minRating := 4
		lastCreatedAt := time.UnixMicro(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC).UnixMicro())
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastCreatedAt, lastID)}

		s.repo.EXPECT().FindByRevieweeKeyset(gomock.Any(), s.revieweeID, lastCreatedAt, lastID, int32(21), &minRating, nil).
			Return(s.items(1), nil).Times(1)

		got, next, err := s.q.ListByReviewee(context.Background(), s.revieweeID,
			queries.ReviewFilters{MinRating: &minRating}, cursor, 20)
		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("broken cursor yields ErrInvalidCursor", func() {
		_, _, err := s.q.ListByReviewee(context.Background(), s.revieweeID, queries.ReviewFilters{}, &queries.Cursor{After: "garbage"}, 20)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})
}
