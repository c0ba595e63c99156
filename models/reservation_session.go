package models

import "time"

// Step identifies where a reservation session is in the booking flow.
type Step string

const (
	StepSelection       Step = "selection"
	StepParticipants    Step = "participants"
	StepContact         Step = "contact"
	StepSubmitting      Step = "submitting"
	StepPaymentRedirect Step = "payment_redirect"
	StepSuccess         Step = "success"
)

// Terminal reports whether no further transitions are possible.
func (s Step) Terminal() bool {
	return s == StepPaymentRedirect || s == StepSuccess
}

// ReservationSession holds one customer's booking flow state between requests.
// It is cached with a TTL and keyed by SessionID; the activity snapshot is
// taken once at session start so pricing stays consistent for the session.
type ReservationSession struct {
	SessionID    string             `json:"sessionId"`
	Step         Step               `json:"step"`
	Activity     Activity           `json:"activity"`
	Draft        ReservationDraft   `json:"draft"`
	Quote        PriceBreakdown     `json:"quote"`
	Availability *DayAvailability   `json:"availability,omitempty"` // snapshot for Draft.Date
	Result       *ReservationResult `json:"result,omitempty"`
	PaymentURL   string             `json:"paymentUrl,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}
