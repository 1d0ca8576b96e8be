package response

import (
	"time"

	"hiburan-booking-gateway/internal/countdown"
	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/domain/event"
	"hiburan-booking-gateway/internal/pkg/currency"
	"hiburan-booking-gateway/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	PriceDisplay    string  `json:"price_display"`
	Currency        string  `json:"currency"`
	AvailableSeats  int     `json:"available_seats"`
	SeatsOptimistic bool    `json:"seats_optimistic,omitempty"`
}

type PreviewResponse struct {
	OriginalPrice       float64 `json:"original_price"`
	PointsDiscount      float64 `json:"points_discount"`
	CouponDiscount      float64 `json:"coupon_discount"`
	FinalPrice          float64 `json:"final_price"`
	FinalPriceDisplay   string  `json:"final_price_display"`
	Currency            string  `json:"currency"`
	CanUsePoints        bool    `json:"can_use_points"`
	MaxPointsUsable     int     `json:"max_points_usable"`
	UserAvailablePoints int     `json:"user_available_points"`
	CouponValid         bool    `json:"coupon_valid"`
}

type BookingResultResponse struct {
	ID              int64               `json:"id"`
	EventTitle      string              `json:"event_title"`
	Quantity        int                 `json:"quantity"`
	TotalPrice      float64             `json:"total_price"`
	TotalDisplay    string              `json:"total_display"`
	PointsUsed      int                 `json:"points_used"`
	CouponDiscount  float64             `json:"coupon_discount"`
	Currency        string              `json:"currency"`
	Status          string              `json:"status"`
	PaymentDeadline time.Time           `json:"payment_deadline"`
	Countdown       *countdown.Snapshot `json:"countdown,omitempty"`
}

type SessionResponse struct {
	SessionID uuid.UUID              `json:"session_id"`
	Stage     string                 `json:"stage"`
	Message   string                 `json:"message,omitempty"`
	Event     *EventResponse         `json:"event,omitempty"`
	Preview   *PreviewResponse       `json:"preview,omitempty"`
	Booking   *BookingResultResponse `json:"booking,omitempty"`
}

func FromEvent(ev *event.Event) *EventResponse {
	return &EventResponse{
		ID:              ev.ID,
		Title:           ev.Title,
		Date:            ev.Date,
		Time:            ev.Time,
		Location:        ev.Location,
		Price:           ev.Price,
		PriceDisplay:    ev.PriceDisplay(),
		Currency:        string(ev.Currency),
		AvailableSeats:  ev.AvailableSeats,
		SeatsOptimistic: ev.SeatsOptimistic,
	}
}

func fromPreview(p *booking.PricePreview) *PreviewResponse {
	return &PreviewResponse{
		OriginalPrice:       p.OriginalPrice,
		PointsDiscount:      p.PointsDiscount,
		CouponDiscount:      p.CouponDiscount,
		FinalPrice:          p.FinalPrice,
		FinalPriceDisplay:   currency.FormatCurrency(p.FinalPrice, currency.Code(p.Currency)),
		Currency:            p.Currency,
		CanUsePoints:        p.CanUsePoints,
		MaxPointsUsable:     p.MaxPointsUsable,
		UserAvailablePoints: p.UserAvailablePoints,
		CouponValid:         p.CouponValid,
	}
}

func fromResult(r *booking.Result, snap *countdown.Snapshot) *BookingResultResponse {
	return &BookingResultResponse{
		ID:              r.ID,
		EventTitle:      r.EventTitle,
		Quantity:        r.Quantity,
		TotalPrice:      r.TotalPrice,
		TotalDisplay:    currency.FormatCurrency(r.TotalPrice, currency.Code(r.Currency)),
		PointsUsed:      r.PointsUsed,
		CouponDiscount:  r.CouponDiscount,
		Currency:        r.Currency,
		Status:          r.Status,
		PaymentDeadline: r.PaymentDeadline,
		Countdown:       snap,
	}
}

func FromSession(s *booking.Session) *SessionResponse {
	resp := &SessionResponse{
		SessionID: s.ID,
		Stage:     string(s.Stage),
		Message:   s.Message,
	}
	if s.Event != nil {
		resp.Event = FromEvent(s.Event)
	}
	if s.Preview != nil {
		resp.Preview = fromPreview(s.Preview)
	}
	if s.Result != nil {
		resp.Booking = fromResult(s.Result, nil)
	}
	return resp
}

func FromSessionView(view *queries.SessionView) *SessionResponse {
	resp := FromSession(view.Session)
	if resp.Booking != nil {
		resp.Booking.Countdown = view.Countdown
	}
	return resp
}
