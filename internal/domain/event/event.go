package event

import (
	"hiburan-booking-gateway/internal/pkg/currency"
)

// Event is the view model served by the ticketing backend. The gateway never
// owns event data; it only caches a snapshot per booking session.
type Event struct {
	ID             int64         `json:"id"`
	Title          string        `json:"title"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Location       string        `json:"location"`
	Price          float64       `json:"price"`
	Currency       currency.Code `json:"currency"`
	AvailableSeats int           `json:"available_seats"`

	// SeatsOptimistic marks AvailableSeats as a locally decremented guess
	// that has not been reconciled with the backend's count. A fresh fetch
	// always resets it.
	SeatsOptimistic bool `json:"seats_optimistic,omitempty"`
}

// ApplyOptimisticBooking decrements the cached seat count after a successful
// booking without waiting for the backend's authoritative number.
func (e *Event) ApplyOptimisticBooking(quantity int) {
	if quantity <= 0 {
		return
	}
	e.AvailableSeats -= quantity
	if e.AvailableSeats < 0 {
		e.AvailableSeats = 0
	}
	e.SeatsOptimistic = true
}

// PriceDisplay renders the ticket price in the event's currency.
func (e *Event) PriceDisplay() string {
	return currency.FormatCurrency(e.Price, e.Currency)
}
