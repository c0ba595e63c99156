package models

// Reservation statuses reported by the reservation API.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// Customer request types accepted by the tracking flow.
const (
	RequestTypeDateChange   = "date_change"
	RequestTypeCancellation = "cancellation"
	RequestTypeOther        = "other"
)

// TrackedReservation is the read-only view fetched by tracking token.
type TrackedReservation struct {
	ID                    string  `json:"id"`
	TrackingToken         string  `json:"trackingToken"`
	ActivityID            string  `json:"activityId"`
	ActivityTitle         string  `json:"activityTitle,omitempty"`
	Date                  string  `json:"date"` // "YYYY-MM-DD"
	Time                  string  `json:"time"` // "HH:MM"
	ParticipantCount      int     `json:"participantCount"`
	TotalPrice            float64 `json:"totalPrice"`
	DepositRequired       float64 `json:"depositRequired"`
	PaymentType           string  `json:"paymentType"`
	RemainingPayment      float64 `json:"remainingPayment"`
	Status                string  `json:"status"`
	PaymentStatus         string  `json:"paymentStatus,omitempty"`
	FreeCancellationHours int     `json:"freeCancellationHours"`
}

// CancellationEligibility gates the cancel/date-change actions in the
// tracking UI and feeds its countdown.
type CancellationEligibility struct {
	Allowed             bool   `json:"allowed"`
	HoursUntilActivity  int    `json:"hoursUntilActivity"`
	FreeCancellationHrs int    `json:"freeCancellationHours"`
	Reason              string `json:"reason,omitempty"`
}

// CustomerRequest is sent to the reservation API's customer-requests endpoint.
type CustomerRequest struct {
	Token          string `json:"token"`
	RequestType    string `json:"requestType"` // "date_change", "cancellation" or "other"
	PreferredDate  string `json:"preferredDate,omitempty"`
	PreferredTime  string `json:"preferredTime,omitempty"`
	RequestDetails string `json:"requestDetails,omitempty"`
}
