package api

import (
	"net/http"
	"strconv"

	resdto "hiburan-booking-gateway/internal/handler/dto/response"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	bookingQueries queries.BookingQueries
	backendBaseURL string
}

func NewEventHandler(bookingQueries queries.BookingQueries, cfg config.Config) *EventHandler {
	return &EventHandler{
		bookingQueries: bookingQueries,
		backendBaseURL: cfg.Backend.BaseURL,
	}
}

// @Summary Get event
// @Description Get event details with a display-formatted price
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	ev, err := h.bookingQueries.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondBackendError(c, err, h.backendBaseURL)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEvent(ev))
}
