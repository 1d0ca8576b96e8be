package api

import (
	"errors"
	"net/http"

	"hiburan-booking-gateway/internal/domain/booking"
	reqdto "hiburan-booking-gateway/internal/handler/dto/request"
	resdto "hiburan-booking-gateway/internal/handler/dto/response"
	"hiburan-booking-gateway/internal/handler/middleware"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/usecase/commands"
	"hiburan-booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	backendBaseURL  string
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	cfg config.Config,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		backendBaseURL:  cfg.Backend.BaseURL,
	}
}

// @Summary Preview booking price
// @Description Get the backend's price breakdown for the current booking inputs
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewBookingRequest true "Booking inputs"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/preview [post]
func (h *BookingHandler) PreviewBooking(c *gin.Context) {
	token, ok := middleware.GetAuthToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PreviewBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.bookingCommands.RequestPreview(c.Request.Context(), token, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking session not found",
			})
		case errors.Is(err, commands.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, booking.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be at least 1",
			})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking inputs can no longer be changed",
			})
		default:
			respondBackendError(c, err, h.backendBaseURL)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(session))
}

// @Summary Submit booking
// @Description Confirm the previewed booking and start the payment countdown
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitBookingRequest true "Session to submit"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	token, ok := middleware.GetAuthToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.bookingCommands.SubmitBooking(c.Request.Context(), token, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking session not found",
			})
		case errors.Is(err, booking.ErrPreviewRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A price preview is required before submitting",
			})
		case errors.Is(err, booking.ErrPointsNotUsable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Points cannot be used for this booking",
			})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking has already been submitted",
			})
		case errors.Is(err, booking.ErrMissingDeadline):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Backend returned a booking without a payment deadline",
			})
		default:
			respondBackendError(c, err, h.backendBaseURL)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSession(session))
}

// @Summary Get booking session
// @Description Get the session state with its payment countdown
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/sessions/{id} [get]
func (h *BookingHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetSession(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking session not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}
