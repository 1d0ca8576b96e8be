package api

import (
	"errors"
	"fmt"
	"net/http"

	"hiburan-booking-gateway/internal/handler/httperr"
	"hiburan-booking-gateway/internal/infra/backendapi"

	"github.com/gin-gonic/gin"
)

// respondBackendError translates a backend client failure into the response
// the backend itself would have produced, so the frontend sees one error
// contract regardless of where the failure happened. The original error is
// kept on the context for the logging middleware.
//
// Non-2xx backend replies keep their original status and message. Transport
// failures become 503 with a hint about the backend address. Everything else
// is a 500.
func respondBackendError(c *gin.Context, err error, backendBaseURL string) {
	var apiErr *backendapi.APIError

	switch {
	case errors.As(err, &apiErr):
		httperr.AbortWithError(c, apiErr.StatusCode, err, apiErr.Message, nil)
	case errors.Is(err, backendapi.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			fmt.Sprintf("Backend server is not available. Please make sure the backend server is running on %s", backendBaseURL),
			"Connection refused to backend server")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", err.Error())
	}
}
