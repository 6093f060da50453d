//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tutorlink/internal/domain/user"
	"tutorlink/internal/handler/api"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"
	"tutorlink/tests/common/builder"
	"tutorlink/tests/common/httptest"
	"tutorlink/tests/common/testutil"
	commandsmock "tutorlink/tests/mock/commands"
	queriesmock "tutorlink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.SessionHandler
	actorID      uuid.UUID
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.POST("/sessions", authMiddleware, s.handler.Book)
	s.router.GET("/sessions", authMiddleware, s.handler.ListMine)
	s.router.GET("/sessions/:id", authMiddleware, s.handler.Get)
	s.router.POST("/sessions/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/sessions/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/sessions/:id/complete", authMiddleware, s.handler.Complete)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

// ================================================================================
// TestBook
// ================================================================================

func (s *SessionHandlerTestSuite) TestBook() {
	url := "/sessions"

	b := builder.NewSessionBuilder()
	reqBody := b.BuildBookRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for a fresh booking", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), s.actorID, gomock.Any()).
			Return(&commands.BookSessionResult{Session: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.Price, response.Price)
	})

	s.Run("success: returns 200 OK on an idempotent replay", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), s.actorID, gomock.Any()).
			Return(&commands.BookSessionResult{Session: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request without Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 Bad Request on malformed Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"offer_id", "slot_id"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"offer not found", commands.ErrOfferNotFound, http.StatusNotFound, "Offer not found"},
			{"slot not found", commands.ErrSlotNotFound, http.StatusNotFound, "Slot not found"},
			{"slot belongs to another offer", commands.ErrSlotOfferMismatch, http.StatusBadRequest, "Slot does not belong to offer"},
			{"own offer", commands.ErrSameParty, http.StatusBadRequest, "Cannot book your own offer"},
			{"unpriceable slot", commands.ErrUnpriceableSlot, http.StatusBadRequest, "Slot is too short to book"},
			{"inactive offer", commands.ErrOfferInactive, http.StatusConflict, "Offer is no longer active"},
			{"slot already booked", commands.ErrSlotUnavailable, http.StatusConflict, "Slot is already booked"},
			{"insufficient points", commands.ErrInsufficientPoints, http.StatusUnprocessableEntity, "Insufficient points balance"},
			{"payload mismatch on replay", commands.ErrDuplicateRequest, http.StatusConflict, "Duplicate booking request"},
			{"request in flight", commands.ErrIdempotencyInProgress, http.StatusConflict, "currently being processed"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), s.actorID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *SessionHandlerTestSuite) TestTransitions() {
	sessionID := uuid.New()

	ops := []struct {
		name   string
		url    string
		expect func() *gomock.Call
	}{
		{
			name: "confirm",
			url:  "/sessions/" + sessionID.String() + "/confirm",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Confirm(gomock.Any(), sessionID, s.actorID)
			},
		},
		{
			name: "cancel",
			url:  "/sessions/" + sessionID.String() + "/cancel",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Cancel(gomock.Any(), sessionID, s.actorID)
			},
		},
		{
			name: "complete",
			url:  "/sessions/" + sessionID.String() + "/complete",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Complete(gomock.Any(), sessionID, s.actorID)
			},
		},
	}

	for _, op := range ops {
		s.Run("success: "+op.name+" returns 204 No Content", func() {
			op.expect().Return(nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, op.url, nil, "bearer-token")
			s.Equal(http.StatusNoContent, rec.Code)
		})
	}

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions/invalid-uuid/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, ops[0].url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"session not found", commands.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
			{"not a participant", commands.ErrNotParticipant, http.StatusForbidden, "Not a session participant"},
			{"teacher only", commands.ErrTeacherOnly, http.StatusForbidden, "Only the teacher may confirm"},
			{"invalid transition", commands.ErrInvalidTransition, http.StatusConflict, "Invalid session state transition"},
			{"payout already spent", commands.ErrInsufficientPoints, http.StatusUnprocessableEntity, "Payout already spent"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), sessionID, s.actorID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, ops[1].url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SessionHandlerTestSuite) TestGet() {
	sessionID := uuid.New()
	url := "/sessions/" + sessionID.String()

	returnView := builder.NewSessionBuilder().BuildView()
	returnView.ID = sessionID

	s.Run("success: returns 200 OK with SessionResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), sessionID, s.actorID, string(user.RoleStudent)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(sessionID, response.ID)
		s.Equal(returnView.Subject, response.Subject)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID format")
	})

	s.Run("error: 404 Not Found for missing session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), sessionID, s.actorID, string(user.RoleStudent)).
			Return(nil, queries.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})

	s.Run("error: 403 Forbidden for outsiders", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), sessionID, s.actorID, string(user.RoleStudent)).
			Return(nil, queries.ErrSessionAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *SessionHandlerTestSuite) TestListMine() {
	url := "/sessions"

	items := []*queries.SessionListItem{
		{ID: uuid.New(), Subject: "Algebra", Status: "requested", Price: 30},
		{ID: uuid.New(), Subject: "Calculus", Status: "confirmed", Price: 45},
	}

	s.Run("success: students list their own sessions", func() {
		s.mockQueries.EXPECT().ListByStudent(gomock.Any(), s.actorID, (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.SessionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Sessions, 2)
		s.Nil(response.NextCursor)
	})

	s.Run("success: pagination parameters are forwarded", func() {
		nextCursor := &queries.Cursor{After: "next_cursor456"}
		s.mockQueries.EXPECT().ListByStudent(gomock.Any(), s.actorID, &queries.Cursor{After: "cursor123"}, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10&after=cursor123", nil, "bearer-token")

		var response resdto.SessionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Sessions, 1)
		s.Equal("next_cursor456", *response.NextCursor)
	})

	s.Run("success: teachers list by teacher", func() {
		teacherRouter := gin.New()
		teacherID := uuid.New()
		teacherAuth := func(c *gin.Context) {
			c.Set("user_id", teacherID)
			c.Set("user_role", user.RoleTeacher)
			c.Next()
		}
		teacherRouter.GET("/sessions", teacherAuth, s.handler.ListMine)

		s.mockQueries.EXPECT().ListByTeacher(gomock.Any(), teacherID, (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), teacherRouter, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on a broken cursor", func() {
		s.mockQueries.EXPECT().ListByStudent(gomock.Any(), s.actorID, &queries.Cursor{After: "garbage"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
