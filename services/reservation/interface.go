package reservation

import (
	"context"

	"tourify/clients"
	"tourify/models"

	"go.uber.org/zap"
)

// CatalogClient is the read API for activities and their availability.
type CatalogClient interface {
	GetActivity(ctx context.Context, activityID string) (*models.Activity, error)
	GetDayAvailability(ctx context.Context, activityID, date string) (*models.AvailabilityDay, error)
}

// ReservationClient is the write API that owns reservations.
type ReservationClient interface {
	CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.ReservationResult, error)
}

// SelectionUpdate mutates the selection step of a draft. Zero values leave the
// corresponding field untouched.
type SelectionUpdate struct {
	Date             string `json:"date"`
	Time             string `json:"time"`
	ParticipantCount int    `json:"participantCount"`
}

// ExtraSelection picks an activity extra by name. Unit prices are always
// resolved from the activity snapshot, never trusted from the caller.
type ExtraSelection struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ContactUpdate mutates the contact step of a draft.
type ContactUpdate struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	HasTransfer   bool   `json:"hasTransfer"`
	TransferZone  string `json:"transferZone"`
	HotelName     string `json:"hotelName"`
	Notes         string `json:"notes"`
}

// FlowService drives one customer's reservation from selection to submit.
type FlowService interface {
	StartSession(ctx context.Context, activityID string) (*models.ReservationSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.ReservationSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	UpdateSelection(ctx context.Context, sessionID string, update SelectionUpdate) (*models.ReservationSession, error)
	UpdateExtras(ctx context.Context, sessionID string, extras []ExtraSelection) (*models.ReservationSession, error)
	UpdateParticipants(ctx context.Context, sessionID string, participants []models.Participant) (*models.ReservationSession, error)
	UpdateContact(ctx context.Context, sessionID string, update ContactUpdate) (*models.ReservationSession, error)

	Advance(ctx context.Context, sessionID string) (*models.ReservationSession, error)
	Back(ctx context.Context, sessionID string) (*models.ReservationSession, error)
	Submit(ctx context.Context, sessionID string) (*models.ReservationSession, error)

	DayAvailability(ctx context.Context, sessionID, date string) (*models.DayAvailability, error)
}

// DefaultFlowService implements FlowService. All collaborators are injected;
// there is no ambient client state.
type DefaultFlowService struct {
	Catalog      CatalogClient
	Reservations ReservationClient
	Payments     clients.PaymentGateway
	Store        SessionStore
	Logger       *zap.Logger
}

// NewFlowService wires a flow service from its collaborators.
func NewFlowService(
	catalog CatalogClient,
	reservations ReservationClient,
	payments clients.PaymentGateway,
	store SessionStore,
	logger *zap.Logger,
) *DefaultFlowService {
	return &DefaultFlowService{
		Catalog:      catalog,
		Reservations: reservations,
		Payments:     payments,
		Store:        store,
		Logger:       logger,
	}
}
