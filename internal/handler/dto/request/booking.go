package request

import (
	"strings"

	"hiburan-booking-gateway/internal/usecase/commands"

	"github.com/google/uuid"
)

type PreviewBookingRequest struct {
	SessionID  *uuid.UUID `json:"session_id,omitempty"`
	EventID    int64      `json:"event_id" binding:"required"`
	Quantity   int        `json:"quantity" binding:"required,min=1"`
	UsePoints  int        `json:"use_points" binding:"min=0"`
	CouponCode *string    `json:"coupon_code,omitempty"`
}

func (r PreviewBookingRequest) ToParams() commands.PreviewParams {
	couponCode := ""
	if r.CouponCode != nil {
		couponCode = strings.TrimSpace(*r.CouponCode)
	}
	return commands.PreviewParams{
		SessionID:  r.SessionID,
		EventID:    r.EventID,
		Quantity:   r.Quantity,
		UsePoints:  r.UsePoints,
		CouponCode: couponCode,
	}
}

type SubmitBookingRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
}
