package booking

import (
	"errors"
	"time"

	"hiburan-booking-gateway/internal/domain/event"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid booking stage transition")
	ErrMissingDeadline   = errors.New("booking result has no payment deadline")
	ErrPreviewRequired   = errors.New("price preview required before submission")
	ErrPointsNotUsable   = errors.New("points are not usable for this booking")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

// ExpiredMessage is shown after the payment deadline lapses and the session
// regresses to the booking stage.
const ExpiredMessage = "Payment time expired. Please start a new booking."

// Stage is the booking flow step a session is in. Transitions are linear
// (booking → payment → confirmation) with a single regression: payment falls
// back to booking when the deadline expires.
type Stage string

const (
	StageBooking      Stage = "booking"
	StagePayment      Stage = "payment"
	StageConfirmation Stage = "confirmation"
)

// PricePreview mirrors the backend's discount computation for display. The
// gateway never recomputes these numbers; it trusts the backend's invariant
// final_price = original_price - points_discount - coupon_discount.
type PricePreview struct {
	OriginalPrice       float64 `json:"original_price"`
	PointsDiscount      float64 `json:"points_discount"`
	CouponDiscount      float64 `json:"coupon_discount"`
	FinalPrice          float64 `json:"final_price"`
	Currency            string  `json:"currency"`
	CanUsePoints        bool    `json:"can_use_points"`
	MaxPointsUsable     int     `json:"max_points_usable"`
	UserAvailablePoints int     `json:"user_available_points"`
	CouponValid         bool    `json:"coupon_valid"`
}

// Result is the backend's response to a booking submission. PaymentDeadline
// is the sole driver of the countdown.
type Result struct {
	ID              int64     `json:"id"`
	EventTitle      string    `json:"event_title"`
	Quantity        int       `json:"quantity"`
	TotalPrice      float64   `json:"total_price"`
	PointsUsed      int       `json:"points_used"`
	CouponDiscount  float64   `json:"coupon_discount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentDeadline time.Time `json:"payment_deadline"`
}

// Session holds one user's in-flight booking attempt. A session in the
// payment stage always carries a non-nil Result; the constructor and the
// transition methods are the only way to move between stages, so an illegal
// combination cannot be built.
type Session struct {
	ID    uuid.UUID `json:"id"`
	Stage Stage     `json:"stage"`

	EventID    int64        `json:"event_id"`
	Event      *event.Event `json:"event,omitempty"`
	Quantity   int          `json:"quantity"`
	UsePoints  int          `json:"use_points"`
	CouponCode string       `json:"coupon_code,omitempty"`

	// PreviewSeq tags the latest applied price preview so a slow, older
	// response can never overwrite a newer one.
	PreviewSeq uint64        `json:"preview_seq"`
	Preview    *PricePreview `json:"preview,omitempty"`

	Result  *Result `json:"result,omitempty"`
	Message string  `json:"message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(eventID int64, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Stage:     StageBooking,
		EventID:   eventID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetInputs records the user's current selections. Changing inputs while in
// the booking stage invalidates nothing by itself; the next preview response
// carries the updated numbers.
func (s *Session) SetInputs(quantity, usePoints int, couponCode string, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	s.Quantity = quantity
	s.UsePoints = usePoints
	s.CouponCode = couponCode
	s.UpdatedAt = now
	return nil
}

// ApplyPreview stores a preview response tagged with its request sequence
// number. Stale responses (a lower sequence than the newest applied) are
// dropped and the method reports false.
func (s *Session) ApplyPreview(seq uint64, preview PricePreview, now time.Time) bool {
	if seq < s.PreviewSeq {
		return false
	}
	s.PreviewSeq = seq
	s.Preview = &preview
	s.UpdatedAt = now
	return true
}

// ValidateSubmit gates the booking submission the same way the confirm
// control is disabled client-side: a preview must have been received, and
// requested points must be usable per the latest preview.
func (s *Session) ValidateSubmit() error {
	if s.Stage != StageBooking {
		return ErrInvalidTransition
	}
	if s.Preview == nil {
		return ErrPreviewRequired
	}
	if s.UsePoints > 0 && !s.Preview.CanUsePoints {
		return ErrPointsNotUsable
	}
	return nil
}

// BeginPayment moves booking → payment, storing the backend's result with
// its payment deadline.
func (s *Session) BeginPayment(result Result, now time.Time) error {
	if s.Stage != StageBooking {
		return ErrInvalidTransition
	}
	if result.PaymentDeadline.IsZero() {
		return ErrMissingDeadline
	}
	s.Stage = StagePayment
	s.Result = &result
	s.Message = ""
	s.UpdatedAt = now
	if s.Event != nil {
		s.Event.ApplyOptimisticBooking(result.Quantity)
	}
	return nil
}

// ConfirmPayment moves payment → confirmation once the payment proof upload
// succeeds. Confirmation is terminal for the session.
func (s *Session) ConfirmPayment(now time.Time) error {
	if s.Stage != StagePayment {
		return ErrInvalidTransition
	}
	s.Stage = StageConfirmation
	s.UpdatedAt = now
	return nil
}

// Expire regresses payment → booking after the deadline lapses, discarding
// the result and recording the user-facing message.
func (s *Session) Expire(now time.Time) error {
	if s.Stage != StagePayment {
		return ErrInvalidTransition
	}
	s.Stage = StageBooking
	s.Result = nil
	s.Message = ExpiredMessage
	s.UpdatedAt = now
	return nil
}

// DeadlinePassed reports whether the session sits in the payment stage with
// a lapsed deadline. Used for lazy expiry on reads, backing up the in-process
// watcher across restarts.
func (s *Session) DeadlinePassed(now time.Time) bool {
	return s.Stage == StagePayment && s.Result != nil && !now.Before(s.Result.PaymentDeadline)
}
