package reservation

import (
	"context"
	"errors"
	"time"

	"tourify/clients"
	"tourify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession snapshots the activity and opens a fresh draft in the
// selection step. The draft starts with a single unnamed participant so the
// participants list always matches the participant count.
func (s *DefaultFlowService) StartSession(ctx context.Context, activityID string) (*models.ReservationSession, error) {
	activity, err := s.Catalog.GetActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, NewValidationError("activity %q does not exist", activityID)
		}
		s.Logger.Error("flow: failed to fetch activity", zap.String("activityId", activityID), zap.Error(err))
		return nil, s.classifyUpstreamError(err, "loading the activity")
	}

	session := &models.ReservationSession{
		SessionID: uuid.New().String(),
		Step:      models.StepSelection,
		Activity:  *activity,
		Draft: models.ReservationDraft{
			ActivityID:       activity.ID,
			ParticipantCount: 1,
			Participants:     make([]models.Participant, 1),
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("flow: session started",
		zap.String("sessionId", session.SessionID), zap.String("activityId", activity.ID))
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultFlowService) GetSession(ctx context.Context, sessionID string) (*models.ReservationSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// CancelSession destroys the draft, as when the customer navigates away.
func (s *DefaultFlowService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// UpdateSelection applies date/time/participant-count changes while in the
// selection step. Participant count is clamped to [1, maxParticipants], every
// selected extra is clamped to the new count, and the participants list is
// resized preserving entries by index. A date change refreshes the
// availability snapshot.
func (s *DefaultFlowService) UpdateSelection(ctx context.Context, sessionID string, update SelectionUpdate) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelection {
		return nil, NewValidationError("the selection can only be changed in the selection step")
	}

	dateChanged := update.Date != "" && update.Date != session.Draft.Date
	if update.Date != "" {
		if _, err := time.Parse(dateLayout, update.Date); err != nil {
			return nil, NewValidationError("invalid date %q, expected YYYY-MM-DD", update.Date)
		}
		session.Draft.Date = update.Date
	}

	if update.ParticipantCount > 0 {
		count := update.ParticipantCount
		if limit := session.Activity.MaxParticipants; limit > 0 && count > limit {
			count = limit
		}
		session.Draft.ParticipantCount = count
		clampExtras(&session.Draft)
		resizeParticipants(&session.Draft)
	}

	if dateChanged {
		s.refreshAvailability(ctx, session)
	}

	if update.Time != "" {
		if session.Availability != nil && !timeIsBookable(session.Availability, update.Time) {
			return nil, NewValidationError("time %s is not available on %s", update.Time, session.Draft.Date)
		}
		session.Draft.Time = update.Time
	}

	if err := s.recomputeQuote(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateExtras replaces the selected extras. Names must reference the
// activity's extras; unit prices come from the activity snapshot. Quantities
// are clamped to the participant count, and flat-priced extras always carry a
// quantity of one.
func (s *DefaultFlowService) UpdateExtras(ctx context.Context, sessionID string, extras []ExtraSelection) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelection {
		return nil, NewValidationError("extras can only be changed in the selection step")
	}

	selected := make([]models.SelectedExtra, 0, len(extras))
	for _, choice := range extras {
		extra, ok := session.Activity.ExtraByName(choice.Name)
		if !ok {
			return nil, NewValidationError("extra %q is not offered for this activity", choice.Name)
		}
		if choice.Quantity < 1 {
			return nil, NewValidationError("quantity for extra %q must be at least 1", choice.Name)
		}
		quantity := choice.Quantity
		if quantity > session.Draft.ParticipantCount {
			quantity = session.Draft.ParticipantCount
		}
		if extra.Pricing == models.ExtraPricingFlat {
			quantity = 1
		}
		selected = append(selected, models.SelectedExtra{
			Name:      extra.Name,
			UnitPrice: extra.PriceAmount,
			Quantity:  quantity,
		})
	}
	session.Draft.SelectedExtras = selected

	if err := s.recomputeQuote(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateParticipants stores the participant details entered in the
// participants step. The list length must match the participant count.
func (s *DefaultFlowService) UpdateParticipants(ctx context.Context, sessionID string, participants []models.Participant) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepParticipants {
		return nil, NewValidationError("participants can only be entered in the participants step")
	}
	if len(participants) != session.Draft.ParticipantCount {
		return nil, NewValidationError("expected %d participants, got %d",
			session.Draft.ParticipantCount, len(participants))
	}

	session.Draft.Participants = participants
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateContact stores the contact details entered in the contact step.
func (s *DefaultFlowService) UpdateContact(ctx context.Context, sessionID string, update ContactUpdate) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepContact {
		return nil, NewValidationError("contact details can only be entered in the contact step")
	}

	session.Draft.CustomerName = update.CustomerName
	session.Draft.CustomerPhone = update.CustomerPhone
	session.Draft.CustomerEmail = update.CustomerEmail
	session.Draft.HasTransfer = update.HasTransfer
	session.Draft.TransferZone = update.TransferZone
	session.Draft.HotelName = update.HotelName
	session.Draft.Notes = update.Notes

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the session forward one step, enforcing the entry guard of
// the target step. The contact step is left through Submit, not Advance.
func (s *DefaultFlowService) Advance(ctx context.Context, sessionID string) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepSelection:
		if err := canEnterParticipants(session.Draft); err != nil {
			return nil, err
		}
		session.Step = models.StepParticipants
	case models.StepParticipants:
		if err := canEnterContact(session.Draft); err != nil {
			return nil, err
		}
		session.Step = models.StepContact
	case models.StepContact:
		return nil, NewValidationError("submit the reservation to continue")
	default:
		return nil, NewValidationError("the reservation flow is already finished")
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the session one step backwards without touching any entered data.
func (s *DefaultFlowService) Back(ctx context.Context, sessionID string) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepParticipants:
		session.Step = models.StepSelection
	case models.StepContact:
		session.Step = models.StepParticipants
	default:
		return nil, NewValidationError("cannot go back from this step")
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit creates the reservation and branches on the payment decision: a
// reservation with money due gets a payment page URL and ends in the
// payment-redirect state, anything else ends in success. Failures roll the
// session back to the contact step with the draft intact so the customer can
// retry; a reservation that was already created is not created twice.
func (s *DefaultFlowService) Submit(ctx context.Context, sessionID string) (*models.ReservationSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepSubmitting {
		return nil, NewValidationError("a submission is already in progress")
	}
	if session.Step != models.StepContact {
		return nil, NewValidationError("the reservation is not ready to submit")
	}
	if err := canSubmit(session.Activity, session.Draft); err != nil {
		return nil, err
	}

	session.Step = models.StepSubmitting
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	if session.Result == nil {
		result, err := s.Reservations.CreateReservation(ctx, session.Draft)
		if err != nil {
			s.Logger.Error("flow: reservation submit failed",
				zap.String("sessionId", session.SessionID), zap.Error(err))
			s.rollbackToContact(ctx, session)
			return nil, s.classifyUpstreamError(err, "submitting the reservation")
		}
		session.Result = result
	}

	if !session.Result.NeedsPayment() {
		session.Step = models.StepSuccess
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		s.Logger.Info("flow: reservation confirmed without payment",
			zap.String("sessionId", session.SessionID), zap.String("reservationId", session.Result.ID))
		return session, nil
	}

	amount := session.Result.DepositRequired
	if amount <= 0 {
		amount = session.Result.TotalPrice
	}
	paymentURL, err := s.Payments.InitializePayment(ctx, clients.InitializePaymentRequest{
		ReservationID: session.Result.ID,
		Amount:        amount,
		CustomerName:  session.Draft.CustomerName,
		CustomerEmail: session.Draft.CustomerEmail,
		CustomerPhone: session.Draft.CustomerPhone,
	})
	if err != nil {
		s.Logger.Error("flow: payment initialize failed",
			zap.String("sessionId", session.SessionID),
			zap.String("reservationId", session.Result.ID), zap.Error(err))
		// The reservation exists; keep it on the session so a retry goes
		// straight to payment initialization.
		s.rollbackToContact(ctx, session)
		return nil, s.classifyUpstreamError(err, "starting the payment")
	}

	session.PaymentURL = paymentURL
	session.Step = models.StepPaymentRedirect
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("flow: redirecting to payment",
		zap.String("sessionId", session.SessionID), zap.String("reservationId", session.Result.ID))
	return session, nil
}

// DayAvailability computes the bookable view of a date for the session's
// activity. Without a catalog snapshot the activity's default times are
// offered optimistically, capacity unknown.
func (s *DefaultFlowService) DayAvailability(ctx context.Context, sessionID, date string) (*models.DayAvailability, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("invalid date %q, expected YYYY-MM-DD", date)
	}

	day, err := s.Catalog.GetDayAvailability(ctx, session.Activity.ID, date)
	if err != nil {
		s.Logger.Error("flow: availability fetch failed",
			zap.String("activityId", session.Activity.ID), zap.String("date", date), zap.Error(err))
		return nil, s.classifyUpstreamError(err, "loading availability")
	}
	if day == nil {
		fallback := fallbackDay(session.Activity, date)
		return &fallback, nil
	}

	computed := ComputeDay(*day)
	return &computed, nil
}

// refreshAvailability re-fetches the snapshot for the draft's date. The
// snapshot is eventually stale by design, so a fetch failure degrades to the
// default-times fallback instead of blocking the selection.
func (s *DefaultFlowService) refreshAvailability(ctx context.Context, session *models.ReservationSession) {
	session.Availability = nil
	if session.Draft.Date == "" {
		return
	}

	day, err := s.Catalog.GetDayAvailability(ctx, session.Activity.ID, session.Draft.Date)
	if err != nil {
		s.Logger.Warn("flow: availability refresh failed, falling back to default times",
			zap.String("activityId", session.Activity.ID),
			zap.String("date", session.Draft.Date), zap.Error(err))
		return
	}
	if day == nil {
		return
	}
	computed := ComputeDay(*day)
	session.Availability = &computed
}

func (s *DefaultFlowService) recomputeQuote(session *models.ReservationSession) error {
	if session.Draft.Date == "" {
		session.Quote = models.PriceBreakdown{}
		return nil
	}
	quote, err := ComputeTotal(session.Activity, session.Draft)
	if err != nil {
		return err
	}
	session.Quote = quote
	return nil
}

func (s *DefaultFlowService) rollbackToContact(ctx context.Context, session *models.ReservationSession) {
	session.Step = models.StepContact
	if err := s.Store.Save(ctx, session); err != nil {
		s.Logger.Error("flow: failed to roll session back to contact",
			zap.String("sessionId", session.SessionID), zap.Error(err))
	}
}

// classifyUpstreamError turns client errors into the flow taxonomy: a
// structured upstream failure is surfaced verbatim, everything else is a
// retryable network error.
func (s *DefaultFlowService) classifyUpstreamError(err error, action string) error {
	if apiErr, ok := clients.AsAPIError(err); ok {
		return NewExternalServiceError("%s", apiErr.Message)
	}
	return NewNetworkError("%s failed: the service is temporarily unreachable, please try again", action)
}

func clampExtras(draft *models.ReservationDraft) {
	for i := range draft.SelectedExtras {
		if draft.SelectedExtras[i].Quantity > draft.ParticipantCount {
			draft.SelectedExtras[i].Quantity = draft.ParticipantCount
		}
		if draft.SelectedExtras[i].Quantity < 1 {
			draft.SelectedExtras[i].Quantity = 1
		}
	}
}

func resizeParticipants(draft *models.ReservationDraft) {
	current := len(draft.Participants)
	switch {
	case current < draft.ParticipantCount:
		grown := make([]models.Participant, draft.ParticipantCount)
		copy(grown, draft.Participants)
		draft.Participants = grown
	case current > draft.ParticipantCount:
		draft.Participants = draft.Participants[:draft.ParticipantCount]
	}
}

func timeIsBookable(day *models.DayAvailability, slotTime string) bool {
	for _, slot := range day.AvailableSlots {
		if slot.Time == slotTime {
			return !slot.IsFull
		}
	}
	// Unknown slot times are left to the reservation API to reject.
	return true
}

// fallbackDay offers every default time of the activity when the catalog has
// no day-specific data. Capacity is unknown, so slots are reported open with
// zero known availability.
func fallbackDay(activity models.Activity, date string) models.DayAvailability {
	slots := make([]models.SlotAvailability, 0, len(activity.DefaultTimes))
	for _, t := range activity.DefaultTimes {
		slots = append(slots, models.SlotAvailability{Time: t, Available: 0, IsFull: false})
	}
	return models.DayAvailability{
		Date:           date,
		AvailableSlots: slots,
		Band:           models.BandOpen,
	}
}
