package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"hiburan-booking-gateway/internal/handler/middleware"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PaymentProofHandler fronts the backend's payment proof endpoint. The
// gateway validates the image before anything touches the network, then
// re-emits whatever the backend answered, status and body untouched.
type PaymentProofHandler struct {
	bookingCommands commands.BookingCommands
	backendBaseURL  string
}

func NewPaymentProofHandler(bookingCommands commands.BookingCommands, cfg config.Config) *PaymentProofHandler {
	return &PaymentProofHandler{
		bookingCommands: bookingCommands,
		backendBaseURL:  cfg.Backend.BaseURL,
	}
}

// @Summary Upload payment proof
// @Description Validate and forward a payment proof image to the backend
// @Tags bookings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bookingId path int true "Booking ID"
// @Param payment_proof formData file true "Proof image (JPG, JPEG, PNG)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /enhanced/bookings/{bookingId}/payment-proof [post]
func (h *PaymentProofHandler) UploadPaymentProof(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid booking ID format",
		})
		return
	}

	token, _ := middleware.GetAuthToken(c)

	fileHeader, err := c.FormFile("payment_proof")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Payment proof file is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Failed to read uploaded file",
		})
		return
	}

	upload := commands.ProofUpload{
		Filename:     fileHeader.Filename,
		DeclaredType: fileHeader.Header.Get("Content-Type"),
		Data:         data,
	}

	resp, err := h.bookingCommands.AttachPaymentProof(c.Request.Context(), token, bookingID, upload)
	if err != nil {
		var vErr *commands.ProofValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": vErr.Reason,
			})
			return
		}
		respondBackendError(c, err, h.backendBaseURL)
		return
	}

	c.Data(resp.Status, "application/json", resp.Body)
}
