package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourify/clients"
	"tourify/models"
	"tourify/services/reservation"

	"go.uber.org/zap"
)

// TrackingClient is the slice of the reservation API used by the tracking flow.
type TrackingClient interface {
	GetTrackedReservation(ctx context.Context, token string) (*models.TrackedReservation, error)
	GetTrackingCalendar(ctx context.Context, token string) ([]models.AvailabilityDay, error)
	SubmitCustomerRequest(ctx context.Context, request models.CustomerRequest) error
}

// RequestInput is a customer request filed from the tracking page.
type RequestInput struct {
	RequestType    string `json:"requestType"`
	PreferredDate  string `json:"preferredDate"`
	PreferredTime  string `json:"preferredTime"`
	RequestDetails string `json:"requestDetails"`
}

// Service is the read-mostly tracking flow: look a reservation up by its
// opaque token, gate cancel/date-change actions on the free-cancellation
// window, and file customer requests.
type Service interface {
	Get(ctx context.Context, token string) (*models.TrackedReservation, error)
	Eligibility(reservation models.TrackedReservation) models.CancellationEligibility
	Calendar(ctx context.Context, token string) ([]models.DayAvailability, error)
	SubmitRequest(ctx context.Context, reservation models.TrackedReservation, input RequestInput) error
}

// DefaultService implements Service. Now is injectable for tests and
// defaults to time.Now.
type DefaultService struct {
	Client TrackingClient
	Logger *zap.Logger
	Now    func() time.Time
}

// NewService wires a tracking service.
func NewService(client TrackingClient, logger *zap.Logger) *DefaultService {
	return &DefaultService{Client: client, Logger: logger, Now: time.Now}
}

// Get fetches a reservation by tracking token.
func (s *DefaultService) Get(ctx context.Context, token string) (*models.TrackedReservation, error) {
	tracked, err := s.Client.GetTrackedReservation(ctx, token)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		s.Logger.Error("tracking: lookup failed", zap.Error(err))
		return nil, s.classifyUpstreamError(err, "looking up the reservation")
	}
	return tracked, nil
}

// Eligibility evaluates the free-cancellation window against the current
// time. Cancellation is allowed while at least freeCancellationHours remain
// before the activity starts; the countdown floors to whole hours.
func (s *DefaultService) Eligibility(reservation models.TrackedReservation) models.CancellationEligibility {
	eligibility := models.CancellationEligibility{
		FreeCancellationHrs: reservation.FreeCancellationHours,
	}

	if reservation.Status == models.ReservationStatusCancelled ||
		reservation.Status == models.ReservationStatusCompleted {
		eligibility.Reason = fmt.Sprintf("the reservation is already %s", reservation.Status)
		return eligibility
	}

	startsAt, err := reservationStartTime(reservation)
	if err != nil {
		eligibility.Reason = "the reservation date could not be determined"
		return eligibility
	}

	until := startsAt.Sub(s.now())
	if until > 0 {
		eligibility.HoursUntilActivity = int(until.Hours())
	}

	window := time.Duration(reservation.FreeCancellationHours) * time.Hour
	if until >= window {
		eligibility.Allowed = true
		return eligibility
	}

	eligibility.Reason = fmt.Sprintf(
		"free cancellation closed %d hours before the activity", reservation.FreeCancellationHours)
	return eligibility
}

// Calendar returns the computed availability for each day the reservation
// API offers for rescheduling.
func (s *DefaultService) Calendar(ctx context.Context, token string) ([]models.DayAvailability, error) {
	days, err := s.Client.GetTrackingCalendar(ctx, token)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		s.Logger.Error("tracking: calendar fetch failed", zap.Error(err))
		return nil, s.classifyUpstreamError(err, "loading the reschedule calendar")
	}

	computed := make([]models.DayAvailability, 0, len(days))
	for _, day := range days {
		computed = append(computed, reservation.ComputeDay(day))
	}
	return computed, nil
}

// SubmitRequest files a customer request. Cancellation and date-change
// requests are gated on the already-fetched reservation before any network
// call; an ineligible attempt never reaches the reservation API.
func (s *DefaultService) SubmitRequest(ctx context.Context, reservation models.TrackedReservation, input RequestInput) error {
	switch input.RequestType {
	case models.RequestTypeCancellation, models.RequestTypeDateChange:
		if eligibility := s.Eligibility(reservation); !eligibility.Allowed {
			return NewIneligibleError("%s", eligibility.Reason)
		}
	case models.RequestTypeOther:
		if input.RequestDetails == "" {
			return NewValidationError("request details are required")
		}
	default:
		return NewValidationError("unknown request type %q", input.RequestType)
	}

	if input.RequestType == models.RequestTypeDateChange && input.PreferredDate == "" {
		return NewValidationError("a preferred date is required for a date change")
	}

	err := s.Client.SubmitCustomerRequest(ctx, models.CustomerRequest{
		Token:          reservation.TrackingToken,
		RequestType:    input.RequestType,
		PreferredDate:  input.PreferredDate,
		PreferredTime:  input.PreferredTime,
		RequestDetails: input.RequestDetails,
	})
	if err != nil {
		s.Logger.Error("tracking: customer request failed",
			zap.String("requestType", input.RequestType), zap.Error(err))
		return s.classifyUpstreamError(err, "filing the request")
	}

	s.Logger.Info("tracking: customer request filed",
		zap.String("requestType", input.RequestType), zap.String("reservationId", reservation.ID))
	return nil
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) classifyUpstreamError(err error, action string) error {
	if apiErr, ok := clients.AsAPIError(err); ok {
		return NewExternalServiceError("%s", apiErr.Message)
	}
	return NewNetworkError("%s failed: the service is temporarily unreachable, please try again", action)
}

// reservationStartTime combines the reservation's date and time in the
// service's local calendar.
func reservationStartTime(reservation models.TrackedReservation) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04",
		fmt.Sprintf("%s %s", reservation.Date, reservation.Time), time.Local)
}
