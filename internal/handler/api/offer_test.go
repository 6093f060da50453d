//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"tutorlink/internal/domain/user"
	"tutorlink/internal/handler/api"
	reqdto "tutorlink/internal/handler/dto/request"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"
	"tutorlink/tests/common/httptest"
	"tutorlink/tests/common/testutil"
	commandsmock "tutorlink/tests/mock/commands"
	queriesmock "tutorlink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	clk          *clock.MockClock
	handler      *api.OfferHandler
	teacherID    uuid.UUID
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries, s.clk)
	s.teacherID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.teacherID)
		c.Set("user_role", user.RoleTeacher)
		c.Next()
	}

	s.router.POST("/offers", authMiddleware, s.handler.Create)
	s.router.POST("/offers/:id/slots", authMiddleware, s.handler.AddSlot)
	s.router.DELETE("/offers/:id", authMiddleware, s.handler.Deactivate)
	s.router.GET("/offers", s.handler.List)
	s.router.GET("/offers/:id", s.handler.Get)
	s.router.GET("/offers/:id/slots", s.handler.ListSlots)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) offerView(id uuid.UUID) *queries.OfferView {
	now := s.clk.Now()
	return &queries.OfferView{
		ID:                 id,
		TeacherID:          s.teacherID,
		TeacherDisplayName: "Test Teacher",
		Subject:            "Algebra",
		Description:        "Linear equations and beyond",
		HourlyRate:         20,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OfferHandlerTestSuite) TestCreate() {
	url := "/offers"

	reqBody := reqdto.CreateOfferRequest{
		Subject:     "Algebra",
		Description: "Linear equations and beyond",
		HourlyRate:  20,
	}
	offerID := uuid.New()

	s.Run("success: returns 201 Created with the new offer", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), s.teacherID).
			Return(&commands.CreateOfferResult{OfferID: offerID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID, s.clk.Now()).
			Return(&queries.OfferDetailView{Offer: s.offerView(offerID)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(offerID, response.ID)
		s.Equal("Algebra", response.Subject)
		s.Equal(int64(20), response.HourlyRate)
	})

	s.Run("error: 400 Bad Request on validation failures", func() {
		testCases := []struct {
			name     string
			mutation func(map[string]any)
		}{
			{"missing subject", testutil.Field("subject", nil)},
			{"missing hourly_rate", testutil.Field("hourly_rate", nil)},
			{"zero hourly_rate", testutil.Field("hourly_rate", 0)},
			{"negative hourly_rate", testutil.Field("hourly_rate", -5)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutation)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request when the usecase rejects the offer", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), s.teacherID).
			Return(nil, commands.ErrInvalidOffer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer data")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestAddSlot
// ================================================================================

func (s *OfferHandlerTestSuite) TestAddSlot() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String() + "/slots"

	start := s.clk.Now().Add(24 * time.Hour)
	reqBody := reqdto.AddSlotRequest{
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
	}

	s.Run("success: returns 201 Created with the slot ID", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().AddSlot(gomock.Any(), gomock.Any(), s.teacherID).
			Return(&commands.AddSlotResult{SlotID: slotID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(slotID.String(), response["slot_id"])
	})

	s.Run("error: 400 Bad Request for invalid offer UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/invalid-uuid/slots", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID format")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"start_time", "end_time"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
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
			{"not the owner", commands.ErrNotOfferOwner, http.StatusForbidden, "Not the offer owner"},
			{"inactive offer", commands.ErrOfferInactive, http.StatusConflict, "Offer is no longer active"},
			{"overlapping slot", commands.ErrSlotOverlap, http.StatusConflict, "Slot overlaps an existing slot"},
			{"invalid slot times", commands.ErrInvalidSlot, http.StatusBadRequest, "Invalid slot times"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddSlot(gomock.Any(), gomock.Any(), s.teacherID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *OfferHandlerTestSuite) TestDeactivate() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivateOffer(gomock.Any(), offerID, s.teacherID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/offers/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when nothing was deactivated", func() {
		s.mockCommands.EXPECT().DeactivateOffer(gomock.Any(), offerID, s.teacherID).
			Return(commands.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *OfferHandlerTestSuite) TestList() {
	url := "/offers"

	items := []*queries.OfferListItem{
		{ID: uuid.New(), TeacherDisplayName: "Alice", Subject: "Algebra", HourlyRate: 20, CreatedAt: s.clk.Now()},
		{ID: uuid.New(), TeacherDisplayName: "Bob", Subject: "Physics", HourlyRate: 35, CreatedAt: s.clk.Now()},
	}

	s.Run("success: lists active offers with default paging", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any(), (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OfferPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Offers, 2)
		s.Nil(response.NextCursor)
	})

	s.Run("success: pagination parameters are forwarded", func() {
		nextCursor := &queries.Cursor{After: "next_cursor456"}
		s.mockQueries.EXPECT().ListActive(gomock.Any(), &queries.Cursor{After: "cursor123"}, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10&after=cursor123", nil, "")

		var response resdto.OfferPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Offers, 1)
		s.Equal("next_cursor456", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request on a broken cursor", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any(), &queries.Cursor{After: "garbage"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OfferHandlerTestSuite) TestGet() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String()

	s.Run("success: returns 200 OK with offer and available slots", func() {
		detail := &queries.OfferDetailView{
			Offer: s.offerView(offerID),
			AvailableSlots: []*queries.SlotView{
				{ID: uuid.New(), OfferID: offerID, StartTime: s.clk.Now().Add(24 * time.Hour), EndTime: s.clk.Now().Add(25 * time.Hour)},
			},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID, s.clk.Now()).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OfferDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offerID, response.Offer.ID)
		s.Len(response.AvailableSlots, 1)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID format")
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID, s.clk.Now()).
			Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}

// ================================================================================
// TestListSlots
// ================================================================================

func (s *OfferHandlerTestSuite) TestListSlots() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String() + "/slots"

	s.Run("success: returns 200 OK with upcoming unbooked slots", func() {
		slots := []*queries.SlotView{
			{ID: uuid.New(), OfferID: offerID, StartTime: s.clk.Now().Add(24 * time.Hour), EndTime: s.clk.Now().Add(25 * time.Hour)},
			{ID: uuid.New(), OfferID: offerID, StartTime: s.clk.Now().Add(48 * time.Hour), EndTime: s.clk.Now().Add(49 * time.Hour)},
		}
		s.mockQueries.EXPECT().ListAvailableSlots(gomock.Any(), offerID, s.clk.Now()).
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(offerID, response[0].OfferID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/invalid-uuid/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID format")
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockQueries.EXPECT().ListAvailableSlots(gomock.Any(), offerID, s.clk.Now()).
			Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}
