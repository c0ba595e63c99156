package models

// Payment types a reservation can resolve to.
const (
	PaymentTypeNone    = "none"
	PaymentTypePartial = "partial"
	PaymentTypeFull    = "full"
)

// SelectedExtra is an extra the customer picked, with its own quantity.
// Quantity is always kept within [1, participantCount].
type SelectedExtra struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Participant holds the per-person details collected in the participants step.
type Participant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"` // "YYYY-MM-DD"
}

// Complete reports whether all required participant fields are filled.
func (p Participant) Complete() bool {
	return p.FirstName != "" && p.LastName != "" && p.BirthDate != ""
}

// ReservationDraft is the mutable working state of one booking session. It is
// owned exclusively by the reservation flow and lives until submit or reset.
type ReservationDraft struct {
	ActivityID       string          `json:"activityId"`
	Date             string          `json:"date,omitempty"` // "YYYY-MM-DD"
	Time             string          `json:"time,omitempty"` // "HH:MM"
	ParticipantCount int             `json:"participantCount"`
	SelectedExtras   []SelectedExtra `json:"selectedExtras,omitempty"`
	Participants     []Participant   `json:"participants,omitempty"`
	HasTransfer      bool            `json:"hasTransfer"`
	TransferZone     string          `json:"transferZone,omitempty"`
	HotelName        string          `json:"hotelName,omitempty"`
	CustomerName     string          `json:"customerName,omitempty"`
	CustomerPhone    string          `json:"customerPhone,omitempty"`
	CustomerEmail    string          `json:"customerEmail,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// PriceBreakdown is the derived price view recomputed on every draft mutation.
type PriceBreakdown struct {
	BasePriceTotal   float64 `json:"basePriceTotal"`
	ExtrasTotal      float64 `json:"extrasTotal"`
	GrandTotal       float64 `json:"grandTotal"`
	DepositRequired  float64 `json:"depositRequired"`
	RemainingPayment float64 `json:"remainingPayment"`
	PaymentType      string  `json:"paymentType"`
}

// ReservationResult is returned by the reservation API on submit.
type ReservationResult struct {
	ID               string  `json:"id"`
	TrackingToken    string  `json:"trackingToken"`
	TotalPrice       float64 `json:"totalPrice"`
	DepositRequired  float64 `json:"depositRequired"`
	PaymentType      string  `json:"paymentType"` // "none", "partial" or "full"
	RemainingPayment float64 `json:"remainingPayment"`
}

// NeedsPayment reports whether the customer must be redirected to a payment page.
func (r ReservationResult) NeedsPayment() bool {
	return r.DepositRequired > 0 || r.PaymentType == PaymentTypeFull
}
