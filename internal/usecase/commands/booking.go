package commands

import (
	"context"
	"log/slog"
	"time"

	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/domain/event"
	"hiburan-booking-gateway/internal/infra/backendapi"
	"hiburan-booking-gateway/internal/infra/sessionstore"
	"hiburan-booking-gateway/internal/pkg/clock"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.New("booking session not found")
	ErrEventNotFound   = errs.New("event not found")
)

// Gateway is the slice of the backend client the booking commands need.
type Gateway interface {
	GetEvent(ctx context.Context, id int64) (*event.Event, error)
	PreviewBooking(ctx context.Context, token string, req backendapi.PreviewRequest) (*booking.PricePreview, error)
	CreateBooking(ctx context.Context, token string, req backendapi.CreateBookingRequest) (*booking.Result, error)
	UploadPaymentProof(ctx context.Context, token string, bookingID int64, proof backendapi.ProofFile) (*backendapi.ProofUploadResponse, error)
}

type SessionStore interface {
	Find(ctx context.Context, id uuid.UUID) (*booking.Session, error)
	FindByBookingID(ctx context.Context, bookingID int64) (*booking.Session, error)
	Save(ctx context.Context, session *booking.Session) error
	SavePreviewIfNewer(ctx context.Context, session *booking.Session) error
	NextPreviewSeq(ctx context.Context, id uuid.UUID) (uint64, error)
}

// DeadlineScheduler tracks payment deadlines and fires once per session when
// one lapses. Satisfied by countdown.Registry.
type DeadlineScheduler interface {
	Watch(key string, deadline time.Time, onExpire func())
	Cancel(key string)
}

type PreviewParams struct {
	SessionID  *uuid.UUID
	EventID    int64
	Quantity   int
	UsePoints  int
	CouponCode string
}

type BookingCommands interface {
	RequestPreview(ctx context.Context, token string, params PreviewParams) (*booking.Session, error)
	SubmitBooking(ctx context.Context, token string, sessionID uuid.UUID) (*booking.Session, error)
	AttachPaymentProof(ctx context.Context, token string, bookingID int64, upload ProofUpload) (*backendapi.ProofUploadResponse, error)
	ExpireBooking(ctx context.Context, sessionID uuid.UUID) error
}

type bookingCommandsImpl struct {
	gateway   Gateway
	store     SessionStore
	deadlines DeadlineScheduler
	clock     clock.Clock
	upload    config.UploadConfig
}

func NewBookingCommands(
	gateway Gateway,
	store SessionStore,
	deadlines DeadlineScheduler,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		gateway:   gateway,
		store:     store,
		deadlines: deadlines,
		clock:     clk,
		upload:    cfg.Upload,
	}
}

// RequestPreview relays the user's current inputs to the backend's price
// preview endpoint and stores the response on the session. Each request gets
// a sequence number before it leaves, and the save is conditional on no
// higher sequence having been stored meanwhile, so a slow response for stale
// inputs can never overwrite the preview the user is actually looking at.
func (c *bookingCommandsImpl) RequestPreview(ctx context.Context, token string, params PreviewParams) (*booking.Session, error) {
	now := c.clock.Now()

	var session *booking.Session
	if params.SessionID != nil {
		found, err := c.store.Find(ctx, *params.SessionID)
		if err != nil {
			if errs.Is(err, sessionstore.ErrNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, err
		}
		session = found
	} else {
		session = booking.NewSession(params.EventID, now)
		ev, err := c.gateway.GetEvent(ctx, params.EventID)
		if err != nil {
			var apiErr *backendapi.APIError
			if errs.As(err, &apiErr) && apiErr.StatusCode == 404 {
				return nil, ErrEventNotFound
			}
			return nil, err
		}
		session.Event = ev
	}

	if err := session.SetInputs(params.Quantity, params.UsePoints, params.CouponCode, now); err != nil {
		return nil, err
	}

	seq, err := c.store.NextPreviewSeq(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	preview, err := c.gateway.PreviewBooking(ctx, token, backendapi.PreviewRequest{
		EventID:    session.EventID,
		Quantity:   session.Quantity,
		UsePoints:  session.UsePoints,
		CouponCode: session.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	if !session.ApplyPreview(seq, *preview, c.clock.Now()) {
		slog.Debug("dropped stale price preview", "session_id", session.ID, "seq", seq)
		return c.reloadNewer(ctx, session)
	}

	// The local guard above only sees the copy this request loaded; a
	// concurrent request may have stored a newer preview since. The store
	// re-checks the sequence against the stored copy at write time.
	if err := c.store.SavePreviewIfNewer(ctx, session); err != nil {
		if errs.Is(err, sessionstore.ErrStalePreview) {
			slog.Debug("dropped stale price preview", "session_id", session.ID, "seq", seq)
			return c.reloadNewer(ctx, session)
		}
		return nil, err
	}
	return session, nil
}

// reloadNewer returns the stored session after a preview write lost to a
// newer one, so the caller sees the preview the user is actually looking at.
func (c *bookingCommandsImpl) reloadNewer(ctx context.Context, session *booking.Session) (*booking.Session, error) {
	stored, err := c.store.Find(ctx, session.ID)
	if err != nil {
		if errs.Is(err, sessionstore.ErrNotFound) {
			return session, nil
		}
		return nil, err
	}
	return stored, nil
}

// SubmitBooking confirms the booking with the backend and moves the session
// into the payment stage, scheduling the deadline watcher that regresses it
// if the payment proof never arrives.
func (c *bookingCommandsImpl) SubmitBooking(ctx context.Context, token string, sessionID uuid.UUID) (*booking.Session, error) {
	session, err := c.store.Find(ctx, sessionID)
	if err != nil {
		if errs.Is(err, sessionstore.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if err := session.ValidateSubmit(); err != nil {
		return nil, err
	}

	result, err := c.gateway.CreateBooking(ctx, token, backendapi.CreateBookingRequest{
		EventID:    session.EventID,
		Quantity:   session.Quantity,
		UsePoints:  session.UsePoints,
		CouponCode: session.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	if err := session.BeginPayment(*result, c.clock.Now()); err != nil {
		return nil, err
	}
	if err := c.store.Save(ctx, session); err != nil {
		return nil, err
	}

	id := session.ID
	c.deadlines.Watch(id.String(), result.PaymentDeadline, func() {
		if expireErr := c.ExpireBooking(context.Background(), id); expireErr != nil {
			slog.Error("failed to expire booking session", "session_id", id, "error", expireErr)
		}
	})

	return session, nil
}

// AttachPaymentProof validates the uploaded image and forwards it to the
// backend. Validation failures never reach the network. On upload success the
// owning session, if one is known for the booking, advances to confirmation.
func (c *bookingCommandsImpl) AttachPaymentProof(ctx context.Context, token string, bookingID int64, upload ProofUpload) (*backendapi.ProofUploadResponse, error) {
	proof, err := c.validateProof(upload)
	if err != nil {
		return nil, err
	}

	resp, err := c.gateway.UploadPaymentProof(ctx, token, bookingID, *proof)
	if err != nil {
		return nil, err
	}

	c.confirmSession(ctx, bookingID)
	return resp, nil
}

// ExpireBooking regresses a session to the booking stage once its payment
// deadline has passed. A session that already confirmed or expired is left
// alone; the watcher and the lazy check on reads may both get here.
func (c *bookingCommandsImpl) ExpireBooking(ctx context.Context, sessionID uuid.UUID) error {
	session, err := c.store.Find(ctx, sessionID)
	if err != nil {
		if errs.Is(err, sessionstore.ErrNotFound) {
			return nil
		}
		return err
	}

	if !session.DeadlinePassed(c.clock.Now()) {
		return nil
	}

	if err := session.Expire(c.clock.Now()); err != nil {
		return err
	}
	return c.store.Save(ctx, session)
}

// The proxy upload works standalone too: an upload for a booking this
// gateway never saw is forwarded without touching any session.
func (c *bookingCommandsImpl) confirmSession(ctx context.Context, bookingID int64) {
	session, err := c.store.FindByBookingID(ctx, bookingID)
	if err != nil {
		if !errs.Is(err, sessionstore.ErrNotFound) {
			slog.Warn("failed to load session for uploaded proof", "booking_id", bookingID, "error", err)
		}
		return
	}

	if err := session.ConfirmPayment(c.clock.Now()); err != nil {
		slog.Warn("session not in payment stage after proof upload", "session_id", session.ID, "error", err)
		return
	}

	c.deadlines.Cancel(session.ID.String())
	if err := c.store.Save(ctx, session); err != nil {
		slog.Error("failed to save confirmed session", "session_id", session.ID, "error", err)
	}
}
