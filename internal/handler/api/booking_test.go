//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hiburan-booking-gateway/internal/countdown"
	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/domain/event"
	"hiburan-booking-gateway/internal/handler"
	"hiburan-booking-gateway/internal/handler/api"
	reqdto "hiburan-booking-gateway/internal/handler/dto/request"
	resdto "hiburan-booking-gateway/internal/handler/dto/response"
	"hiburan-booking-gateway/internal/handler/middleware"
	"hiburan-booking-gateway/internal/infra/backendapi"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/pkg/jwt"
	"hiburan-booking-gateway/internal/usecase/commands"
	"hiburan-booking-gateway/internal/usecase/queries"
	"hiburan-booking-gateway/tests/common/httptest"
	commandsmock "hiburan-booking-gateway/tests/mock/commands"
	queriesmock "hiburan-booking-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	authMiddleware := middleware.NewAuthMiddleware(jwt.NewService("", time.Hour))
	handler.NewRouter(
		s.router,
		cfg,
		api.NewEventHandler(s.mockQueries, cfg),
		api.NewBookingHandler(s.mockCommands, s.mockQueries, cfg),
		api.NewPaymentProofHandler(s.mockCommands, cfg),
		authMiddleware,
	)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func testSession() *booking.Session {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	session := booking.NewSession(42, now)
	session.Event = &event.Event{
		ID: 42, Title: "Jakarta Jazz Festival", Price: 500000, Currency: "IDR", AvailableSeats: 10,
	}
	_ = session.SetInputs(2, 0, "", now)
	session.ApplyPreview(1, booking.PricePreview{
		OriginalPrice: 1000000, FinalPrice: 1000000, Currency: "IDR",
	}, now)
	return session
}

func snapshotPtr(hours, minutes, seconds int, expired, urgent bool) *countdown.Snapshot {
	return &countdown.Snapshot{Hours: hours, Minutes: minutes, Seconds: seconds, Expired: expired, Urgent: urgent}
}

func (s *BookingHandlerTestSuite) TestGetEvent() {
	s.Run("success: returns event with formatted price", func() {
		s.mockQueries.EXPECT().GetEvent(gomock.Any(), int64(42)).
			Return(&event.Event{
				ID: 42, Title: "Jakarta Jazz Festival", Price: 500000, Currency: "IDR", AvailableSeats: 120,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/events/42", nil, "")

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Jakarta Jazz Festival", response.Title)
		s.Equal("Rp500.000", response.PriceDisplay)
		s.Equal(120, response.AvailableSeats)
	})

	s.Run("error: 404 relayed from backend", func() {
		s.mockQueries.EXPECT().GetEvent(gomock.Any(), int64(99)).
			Return(nil, &backendapi.APIError{StatusCode: 404, Message: "Event not found"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/events/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/events/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})
}

func (s *BookingHandlerTestSuite) TestPreviewBooking() {
	url := "/api/v1/bookings/preview"
	reqBody := reqdto.PreviewBookingRequest{EventID: 42, Quantity: 2}

	s.Run("success: returns session with preview", func() {
		session := testSession()
		s.mockCommands.EXPECT().
			RequestPreview(gomock.Any(), "token-abc", commands.PreviewParams{EventID: 42, Quantity: 2}).
			Return(session, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token-abc")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(session.ID, response.SessionID)
		s.Equal("booking", response.Stage)
		s.Require().NotNil(response.Preview)
		s.Equal("Rp1.000.000", response.Preview.FinalPriceDisplay)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 on missing quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"event_id": 42}, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 relayed from backend for a bad coupon", func() {
		s.mockCommands.EXPECT().
			RequestPreview(gomock.Any(), "token-abc", gomock.Any()).
			Return(nil, &backendapi.APIError{StatusCode: 422, Message: "Coupon has expired"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon has expired")
	})
}

func (s *BookingHandlerTestSuite) TestSubmitBooking() {
	url := "/api/v1/bookings"

	s.Run("success: returns payment stage session", func() {
		session := testSession()
		deadline := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		s.Require().NoError(session.BeginPayment(booking.Result{
			ID: 777, EventTitle: "Jakarta Jazz Festival", Quantity: 2,
			TotalPrice: 1000000, Currency: "IDR", Status: "pending_payment",
			PaymentDeadline: deadline,
		}, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))

		s.mockCommands.EXPECT().
			SubmitBooking(gomock.Any(), "token-abc", session.ID).
			Return(session, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.SubmitBookingRequest{SessionID: session.ID}, "token-abc")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("payment", response.Stage)
		s.Require().NotNil(response.Booking)
		s.Equal(int64(777), response.Booking.ID)
		s.Equal("Rp1.000.000", response.Booking.TotalDisplay)
		s.True(deadline.Equal(response.Booking.PaymentDeadline))
	})

	s.Run("error: 400 when no preview was requested", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			SubmitBooking(gomock.Any(), "token-abc", id).
			Return(nil, booking.ErrPreviewRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.SubmitBookingRequest{SessionID: id}, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "price preview is required")
	})

	s.Run("error: 409 on double submission", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			SubmitBooking(gomock.Any(), "token-abc", id).
			Return(nil, booking.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.SubmitBookingRequest{SessionID: id}, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been submitted")
	})

	s.Run("error: 404 for unknown session", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			SubmitBooking(gomock.Any(), "token-abc", id).
			Return(nil, commands.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.SubmitBookingRequest{SessionID: id}, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "session not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetSession() {
	s.Run("success: payment stage includes countdown", func() {
		session := testSession()
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		s.Require().NoError(session.BeginPayment(booking.Result{
			ID: 777, TotalPrice: 1000000, Currency: "IDR",
			Status: "pending_payment", PaymentDeadline: now.Add(29 * time.Minute),
		}, now))

		s.mockQueries.EXPECT().GetSession(gomock.Any(), session.ID).
			Return(&queries.SessionView{
				Session:      session,
				Countdown:    snapshotPtr(0, 29, 0, false, true),
				TotalDisplay: "Rp1.000.000",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/v1/bookings/sessions/"+session.ID.String(), nil, "token-abc")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Booking)
		s.Require().NotNil(response.Booking.Countdown)
		s.Equal(29, response.Booking.Countdown.Minutes)
		s.True(response.Booking.Countdown.Urgent)
	})

	s.Run("error: 404 for unknown session", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetSession(gomock.Any(), id).
			Return(nil, queries.ErrSessionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/v1/bookings/sessions/"+id.String(), nil, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "session not found")
	})

	s.Run("error: 400 on malformed session ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/v1/bookings/sessions/not-a-uuid", nil, "token-abc")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID")
	})
}
