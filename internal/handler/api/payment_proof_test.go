//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hiburan-booking-gateway/internal/handler"
	"hiburan-booking-gateway/internal/handler/api"
	"hiburan-booking-gateway/internal/handler/middleware"
	"hiburan-booking-gateway/internal/infra/backendapi"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/pkg/errs"
	"hiburan-booking-gateway/internal/pkg/jwt"
	"hiburan-booking-gateway/internal/usecase/commands"
	"hiburan-booking-gateway/tests/common/httptest"
	commandsmock "hiburan-booking-gateway/tests/mock/commands"
	queriesmock "hiburan-booking-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentProofHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
}

func (s *PaymentProofHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	mockQueries := queriesmock.NewMockBookingQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	authMiddleware := middleware.NewAuthMiddleware(jwt.NewService("", time.Hour))
	handler.NewRouter(
		s.router,
		cfg,
		api.NewEventHandler(mockQueries, cfg),
		api.NewBookingHandler(s.mockCommands, mockQueries, cfg),
		api.NewPaymentProofHandler(s.mockCommands, cfg),
		authMiddleware,
	)
}

func (s *PaymentProofHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentProofHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentProofHandlerTestSuite))
}

const proofURL = "/api/v1/enhanced/bookings/777/payment-proof"

func proofPart(contentType string, data []byte) []httptest.MultipartFile {
	return []httptest.MultipartFile{{
		Field:       "payment_proof",
		Filename:    "proof.jpg",
		ContentType: contentType,
		Data:        data,
	}}
}

func (s *PaymentProofHandlerTestSuite) TestUploadPaymentProof() {
	jpegData := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}

	s.Run("success: backend status and body are re-emitted verbatim", func() {
		backendBody := json.RawMessage(`{"id":777,"status":"waiting_verification"}`)
		s.mockCommands.EXPECT().
			AttachPaymentProof(gomock.Any(), "token-abc", int64(777), commands.ProofUpload{
				Filename:     "proof.jpg",
				DeclaredType: "image/jpeg",
				Data:         jpegData,
			}).
			Return(&backendapi.ProofUploadResponse{Status: 200, Body: backendBody}, nil)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			proofPart("image/jpeg", jpegData), "token-abc")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(string(backendBody), rec.Body.String())
	})

	s.Run("error: 401 without Authorization header, backend untouched", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			proofPart("image/jpeg", jpegData), "")

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"message":"Authorization header required"}`, rec.Body.String())
	})

	s.Run("error: 400 when multipart field is missing", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			[]httptest.MultipartFile{{Field: "other", Filename: "x.jpg", ContentType: "image/jpeg", Data: jpegData}},
			"token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment proof file is required")
	})

	s.Run("error: 400 with allowed-types message on rejected file", func() {
		s.mockCommands.EXPECT().
			AttachPaymentProof(gomock.Any(), "token-abc", int64(777), gomock.Any()).
			Return(nil, errs.Mark(&commands.ProofValidationError{
				Reason: "File type not allowed. Allowed types: JPG, JPEG, PNG",
			}, commands.ErrProofTypeNotAllowed))

		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			proofPart("application/pdf", []byte("%PDF-1.4")), "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Allowed types: JPG, JPEG, PNG")
	})

	s.Run("error: backend rejection keeps its status and message", func() {
		s.mockCommands.EXPECT().
			AttachPaymentProof(gomock.Any(), "token-abc", int64(777), gomock.Any()).
			Return(nil, &backendapi.APIError{StatusCode: 422, Message: "Booking is not awaiting payment"})

		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			proofPart("image/jpeg", jpegData), "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Booking is not awaiting payment")
	})

	s.Run("error: 503 when the backend is unreachable", func() {
		s.mockCommands.EXPECT().
			AttachPaymentProof(gomock.Any(), "token-abc", int64(777), gomock.Any()).
			Return(nil, backendapi.ErrBackendUnavailable)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			proofPart("image/jpeg", jpegData), "token-abc")

		s.Equal(http.StatusServiceUnavailable, rec.Code)

		var body struct {
			Message string `json:"message"`
			Details string `json:"details"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Contains(body.Message, "Backend server is not available")
		s.Contains(body.Message, "http://localhost:18000")
		s.Equal("Connection refused to backend server", body.Details)
	})

	s.Run("error: unexpected failure becomes 500 with details", func() {
		s.mockCommands.EXPECT().
			AttachPaymentProof(gomock.Any(), "token-abc", int64(777), gomock.Any()).
			Return(nil, errs.New("session store exploded"))

		rec := httptest.PerformMultipartRequest(s.T(), s.router, proofURL,
			proofPart("image/jpeg", jpegData), "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router,
			"/api/v1/enhanced/bookings/abc/payment-proof",
			proofPart("image/jpeg", jpegData), "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}
