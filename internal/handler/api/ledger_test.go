//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tutorlink/internal/domain/user"
	"tutorlink/internal/handler/api"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/usecase/queries"
	"tutorlink/tests/common/httptest"
	queriesmock "tutorlink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLedgerQueries
	handler     *api.LedgerHandler
	userID      uuid.UUID
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.handler = api.NewLedgerHandler(s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.GET("/ledger/balance", authMiddleware, s.handler.GetBalance)
	s.router.GET("/ledger/entries", authMiddleware, s.handler.ListEntries)
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

// ================================================================================
// TestGetBalance
// ================================================================================

func (s *LedgerHandlerTestSuite) TestGetBalance() {
	url := "/ledger/balance"

	s.Run("success: returns 200 OK with the current balance", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID).
			Return(&queries.BalanceView{UserID: s.userID, Balance: 70, UpdatedAt: time.Now()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.UserID)
		s.Equal(int64(70), response.Balance)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for a missing account", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID).
			Return(nil, queries.ErrAccountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Points account not found")
	})
}

// ================================================================================
// TestListEntries
// ================================================================================

func (s *LedgerHandlerTestSuite) TestListEntries() {
	url := "/ledger/entries"

	sessionID := uuid.New()
	items := []*queries.LedgerEntryView{
		{ID: uuid.New(), SessionID: &sessionID, Kind: "booking_debit", Amount: -30, CreatedAt: time.Now()},
		{ID: uuid.New(), Kind: "signup_bonus", Amount: 100, CreatedAt: time.Now()},
	}

	s.Run("success: lists entries with default paging", func() {
		s.mockQueries.EXPECT().ListEntries(gomock.Any(), s.userID, (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.LedgerPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Entries, 2)
		s.Equal("booking_debit", response.Entries[0].Kind)
		s.Equal(int64(-30), response.Entries[0].Amount)
		s.Nil(response.NextCursor)
	})

	s.Run("success: pagination parameters are forwarded", func() {
		nextCursor := &queries.Cursor{After: "next_cursor456"}
		s.mockQueries.EXPECT().ListEntries(gomock.Any(), s.userID, &queries.Cursor{After: "cursor123"}, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10&after=cursor123", nil, "bearer-token")

		var response resdto.LedgerPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Entries, 1)
		s.Equal("next_cursor456", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request on a broken cursor", func() {
		s.mockQueries.EXPECT().ListEntries(gomock.Any(), s.userID, &queries.Cursor{After: "garbage"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
