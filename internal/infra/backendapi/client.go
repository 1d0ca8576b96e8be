package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"hiburan-booking-gateway/internal/domain/booking"
	"hiburan-booking-gateway/internal/domain/event"
	"hiburan-booking-gateway/internal/pkg/config"
	"hiburan-booking-gateway/internal/pkg/errs"

	circuit "github.com/rubyist/circuitbreaker"
)

// ErrBackendUnavailable marks connection-level failures reaching the
// ticketing backend, as opposed to an error response the backend produced
// itself. Handlers turn it into a 503 with a "service is down" message so
// users can tell it apart from "your input was wrong".
var ErrBackendUnavailable = errs.New("backend server is not available")

// APIError carries a non-2xx response from the backend: its status code and
// the message parsed from the JSON body (raw text when the body is not JSON).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

type PreviewRequest struct {
	EventID    int64  `json:"event_id"`
	Quantity   int    `json:"quantity"`
	UsePoints  int    `json:"use_points"`
	CouponCode string `json:"coupon_code,omitempty"`
}

type CreateBookingRequest struct {
	EventID    int64  `json:"event_id"`
	Quantity   int    `json:"quantity"`
	UsePoints  int    `json:"use_points"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// ProofFile is a validated payment proof ready to be forwarded upstream.
type ProofFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProofUploadResponse carries the backend's status and raw JSON body so the
// proxy route can re-emit them verbatim.
type ProofUploadResponse struct {
	Status int
	Body   json.RawMessage
}

// Client talks to the ticketing backend over its REST API. Calls go through
// a circuit breaker so a dead backend trips fast instead of piling up
// timeouts.
type Client struct {
	http    *circuit.HTTPClient
	baseURL string
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		http:    circuit.NewHTTPClient(cfg.Timeout, cfg.BreakerThreshold, nil),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// GetEvent fetches a public event view. No bearer token required.
func (c *Client) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	var ev event.Event
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/v1/events/%d", id), "", nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// PreviewBooking asks the backend to recompute discounts for the current
// inputs. The gateway only relays the numbers; it never recomputes them.
func (c *Client) PreviewBooking(ctx context.Context, token string, req PreviewRequest) (*booking.PricePreview, error) {
	var preview booking.PricePreview
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/enhanced/bookings/preview", token, req, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// CreateBooking submits the booking and returns the backend's result,
// including the payment deadline that drives the countdown.
func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (*booking.Result, error) {
	var result booking.Result
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/enhanced/bookings", token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadPaymentProof forwards a validated proof image as a multipart POST
// with the caller's Authorization header. On 2xx the backend's body is
// returned verbatim; a non-2xx becomes an *APIError carrying the backend's
// status and message.
func (c *Client) UploadPaymentProof(ctx context.Context, token string, bookingID int64, proof ProofFile) (*ProofUploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="payment_proof"; filename=%q`, proof.Filename))
	header.Set("Content-Type", proof.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build multipart body")
	}
	if _, err = part.Write(proof.Data); err != nil {
		return nil, errs.Wrap(err, "failed to write proof data")
	}
	if err = writer.Close(); err != nil {
		return nil, errs.Wrap(err, "failed to finalize multipart body")
	}

	url := fmt.Sprintf("%s/api/v1/enhanced/bookings/%d/payment-proof", c.baseURL, bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.markUnavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return &ProofUploadResponse{Status: resp.StatusCode, Body: body}, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to build backend request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.markUnavailable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Wrap(err, "failed to decode backend response")
		}
	}
	return nil
}

// Transport-level failures (connection refused, timeouts, an open breaker)
// all collapse into ErrBackendUnavailable; anything the backend answered is
// an APIError instead.
func (c *Client) markUnavailable(err error) error {
	if errors.Is(err, circuit.ErrBreakerOpen) {
		slog.Warn("backend circuit breaker is open")
	}
	return errs.Mark(err, ErrBackendUnavailable)
}

func parseAPIError(status int, body []byte) *APIError {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &APIError{StatusCode: status, Message: parsed.Message}
	}
	return &APIError{StatusCode: status, Message: string(body)}
}
