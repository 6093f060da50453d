package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "tutorlink/internal/handler/dto/request"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/handler/httperr"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/pkg/clock"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds  commands.OfferCommands
	q     queries.OfferQueries
	clock clock.Clock
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries, clk clock.Clock) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create offer
// @Description Create a tutoring offer; teachers only
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Create offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateOffer(c.Request.Context(), commands.CreateOfferRequest{
		Subject:     req.Subject,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
	}, teacherID)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidOffer) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.OfferID, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOfferView(view.Offer))
}

// @Summary Add time slot
// @Description Add an available time slot to an offer; owner only
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.AddSlotRequest true "Add slot request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id}/slots [post]
func (h *OfferHandler) AddSlot(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer ID format", nil)
		return
	}
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.AddSlot(c.Request.Context(), commands.AddSlotRequest{
		OfferID: offerID,
		Start:   req.StartTime,
		End:     req.EndTime,
	}, teacherID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, commands.ErrNotOfferOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the offer owner", nil)
		case errors.Is(err, commands.ErrOfferInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Offer is no longer active", nil)
		case errors.Is(err, commands.ErrSlotOverlap):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot overlaps an existing slot", nil)
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot times", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slot_id": result.SlotID.String()})
}

// @Summary Deactivate offer
// @Description Deactivate an offer so no new slots can be booked; owner only
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [delete]
func (h *OfferHandler) Deactivate(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer ID format", nil)
		return
	}
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.DeactivateOffer(c.Request.Context(), offerID, teacherID); err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, commands.ErrNotOfferOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the offer owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List active offers
// @Description List active offers with keyset pagination
// @Tags offers
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OfferPageResponse
// @Failure 400 {object} map[string]string
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListActive(c.Request.Context(), cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferList(items, next))
}

// @Summary Get offer
// @Description Get an offer with its upcoming available slots
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer ID format", nil)
		return
	}

	detail, err := h.q.GetByID(c.Request.Context(), offerID, h.clock.Now())
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferDetail(detail))
}

// @Summary List available slots
// @Description List an offer's upcoming unbooked slots
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id}/slots [get]
func (h *OfferHandler) ListSlots(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer ID format", nil)
		return
	}

	slots, err := h.q.ListAvailableSlots(c.Request.Context(), offerID, h.clock.Now())
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(slots))
}
