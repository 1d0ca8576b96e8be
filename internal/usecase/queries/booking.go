package queries

import (
	"context"

	"hiburan-booking-gateway/internal/countdown"
	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/domain/event"
	"hiburan-booking-gateway/internal/infra/sessionstore"
	"hiburan-booking-gateway/internal/pkg/clock"
	"hiburan-booking-gateway/internal/pkg/currency"
	"hiburan-booking-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.New("booking session not found")

type Gateway interface {
	GetEvent(ctx context.Context, id int64) (*event.Event, error)
}

type SessionStore interface {
	Find(ctx context.Context, id uuid.UUID) (*booking.Session, error)
	Save(ctx context.Context, session *booking.Session) error
}

// SessionView is the session as the frontend renders it: the raw state plus
// the derived countdown and the display-formatted total.
type SessionView struct {
	Session      *booking.Session    `json:"session"`
	Countdown    *countdown.Snapshot `json:"countdown,omitempty"`
	TotalDisplay string              `json:"total_display,omitempty"`
}

type BookingQueries interface {
	GetEvent(ctx context.Context, id int64) (*event.Event, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)
}

type bookingQueriesImpl struct {
	gateway Gateway
	store   SessionStore
	clock   clock.Clock
}

func NewBookingQueries(gateway Gateway, store SessionStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{gateway: gateway, store: store, clock: clk}
}

func (q *bookingQueriesImpl) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	return q.gateway.GetEvent(ctx, id)
}

// GetSession returns the session with its countdown snapshot. A payment-stage
// session whose deadline already passed is expired here, so a reader never
// sees a live countdown for a dead deadline even if the watcher was lost to
// a restart.
func (q *bookingQueriesImpl) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	session, err := q.store.Find(ctx, id)
	if err != nil {
		if errs.Is(err, sessionstore.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	if session.DeadlinePassed(now) {
		if err := session.Expire(now); err == nil {
			if saveErr := q.store.Save(ctx, session); saveErr != nil {
				return nil, saveErr
			}
		}
	}

	view := &SessionView{Session: session}

	if session.Stage == booking.StagePayment && session.Result != nil {
		snap := countdown.Compute(session.Result.PaymentDeadline, now)
		view.Countdown = &snap
	}

	switch {
	case session.Result != nil:
		view.TotalDisplay = currency.FormatCurrency(session.Result.TotalPrice, currency.Code(session.Result.Currency))
	case session.Preview != nil:
		view.TotalDisplay = currency.FormatCurrency(session.Preview.FinalPrice, currency.Code(session.Preview.Currency))
	}

	return view, nil
}
