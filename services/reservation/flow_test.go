package reservation

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"tourify/clients"
	"tourify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memorySessionStore keeps sessions as JSON blobs, mirroring the Redis
// round-trip so mutations after Save are not visible until the next Save.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string][]byte)}
}

func (s *memorySessionStore) Save(_ context.Context, session *models.ReservationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = data
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (*models.ReservationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.ReservationSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

type fakeCatalog struct {
	activity        *models.Activity
	activityErr     error
	day             *models.AvailabilityDay
	availabilityErr error
}

func (f *fakeCatalog) GetActivity(_ context.Context, activityID string) (*models.Activity, error) {
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	if f.activity == nil || f.activity.ID != activityID {
		return nil, clients.ErrNotFound
	}
	copied := *f.activity
	return &copied, nil
}

func (f *fakeCatalog) GetDayAvailability(_ context.Context, _, _ string) (*models.AvailabilityDay, error) {
	if f.availabilityErr != nil {
		return nil, f.availabilityErr
	}
	return f.day, nil
}

type fakeReservations struct {
	result *models.ReservationResult
	err    error
	calls  int
}

func (f *fakeReservations) CreateReservation(_ context.Context, _ models.ReservationDraft) (*models.ReservationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	copied := *f.result
	return &copied, nil
}

type fakePayments struct {
	url   string
	err   error
	calls int
	last  clients.InitializePaymentRequest
}

func (f *fakePayments) InitializePayment(_ context.Context, req clients.InitializePaymentRequest) (string, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func diveActivity() *models.Activity {
	return &models.Activity{
		ID:                     "act-dive",
		Title:                  "Reef Dive",
		BasePrice:              1000,
		SeasonalPricingEnabled: true,
		SeasonalPrices:         map[int]float64{6: 1500},
		MaxParticipants:        6,
		DefaultTimes:           []string{"09:00", "14:00"},
		Extras: []models.ActivityExtra{
			{Name: "lunch", PriceAmount: 50, Pricing: models.ExtraPricingPerPerson},
			{Name: "photos", PriceAmount: 120, Pricing: models.ExtraPricingFlat},
		},
		HasFreeHotelTransfer: true,
		TransferZones: []models.TransferZone{
			{ZoneName: "marina", MinutesBefore: 30},
		},
	}
}

func newTestFlow(catalog *fakeCatalog, reservations *fakeReservations, payments *fakePayments) *DefaultFlowService {
	return NewFlowService(catalog, reservations, payments, newMemorySessionStore(), zap.NewNop())
}

func fillToContact(t *testing.T, svc *DefaultFlowService, sessionID string, count int) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.UpdateSelection(ctx, sessionID, SelectionUpdate{
		Date: "2025-06-15", Time: "09:00", ParticipantCount: count,
	})
	require.NoError(t, err)

	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)

	participants := make([]models.Participant, count)
	for i := range participants {
		participants[i] = models.Participant{FirstName: "Ana", LastName: "Reyes", BirthDate: "1990-04-02"}
	}
	_, err = svc.UpdateParticipants(ctx, sessionID, participants)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, sessionID)
	require.NoError(t, err)

	_, err = svc.UpdateContact(ctx, sessionID, ContactUpdate{
		CustomerName:  "Ana Reyes",
		CustomerPhone: "+52 555 0100",
		CustomerEmail: "ana@example.com",
	})
	require.NoError(t, err)
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a selection draft with one participant", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		assert.NotEmpty(t, session.SessionID)
		assert.Equal(t, models.StepSelection, session.Step)
		assert.Equal(t, "act-dive", session.Draft.ActivityID)
		assert.Equal(t, 1, session.Draft.ParticipantCount)
		assert.Len(t, session.Draft.Participants, 1)

		stored, err := svc.GetSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, session.SessionID, stored.SessionID)
	})

	t.Run("unknown activity is a validation error", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{}, &fakeReservations{}, &fakePayments{})

		_, err := svc.StartSession(ctx, "act-missing")
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
	})
}

func TestUpdateSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("participant count is clamped to the activity maximum", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		updated, err := svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
			Date: "2025-06-15", ParticipantCount: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, updated.Draft.ParticipantCount)
		assert.Len(t, updated.Draft.Participants, 6)
	})

	t.Run("lowering the count clamps extras and truncates participants", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
			Date: "2025-06-15", ParticipantCount: 4,
		})
		require.NoError(t, err)

		_, err = svc.UpdateExtras(ctx, session.SessionID, []ExtraSelection{{Name: "lunch", Quantity: 4}})
		require.NoError(t, err)

		updated, err := svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{ParticipantCount: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Draft.ParticipantCount)
		require.Len(t, updated.Draft.SelectedExtras, 1)
		assert.Equal(t, 2, updated.Draft.SelectedExtras[0].Quantity)
		assert.Len(t, updated.Draft.Participants, 2)
	})

	t.Run("quote is recomputed on every change", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		updated, err := svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
			Date: "2025-06-15", ParticipantCount: 2,
		})
		require.NoError(t, err)
		// June carries the seasonal price.
		assert.Equal(t, 3000.0, updated.Quote.BasePriceTotal)
		assert.Equal(t, 3000.0, updated.Quote.GrandTotal)
	})

	t.Run("a full slot cannot be selected", func(t *testing.T) {
		catalog := &fakeCatalog{
			activity: diveActivity(),
			day: &models.AvailabilityDay{
				Date: "2025-06-15",
				TimeSlots: []models.AvailabilitySlot{
					{Time: "09:00", TotalCapacity: 4, BookedCount: 4},
					{Time: "14:00", TotalCapacity: 4, BookedCount: 1},
				},
			},
		}
		svc := newTestFlow(catalog, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
			Date: "2025-06-15", Time: "09:00",
		})
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))

		updated, err := svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{Time: "14:00"})
		require.NoError(t, err)
		assert.Equal(t, "14:00", updated.Draft.Time)
	})

	t.Run("rejected outside the selection step", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
			Date: "2025-06-15", Time: "09:00", ParticipantCount: 1,
		})
		require.NoError(t, err)
		_, err = svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)

		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{ParticipantCount: 3})
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
	})
}

func TestUpdateExtras(t *testing.T) {
	ctx := context.Background()
	svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
	session, err := svc.StartSession(ctx, "act-dive")
	require.NoError(t, err)
	_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
		Date: "2025-06-15", ParticipantCount: 3,
	})
	require.NoError(t, err)

	t.Run("unit prices come from the activity, flat extras keep quantity one", func(t *testing.T) {
		updated, err := svc.UpdateExtras(ctx, session.SessionID, []ExtraSelection{
			{Name: "lunch", Quantity: 5},
			{Name: "photos", Quantity: 3},
		})
		require.NoError(t, err)
		require.Len(t, updated.Draft.SelectedExtras, 2)

		lunch := updated.Draft.SelectedExtras[0]
		assert.Equal(t, 50.0, lunch.UnitPrice)
		assert.Equal(t, 3, lunch.Quantity, "clamped to participant count")

		photos := updated.Draft.SelectedExtras[1]
		assert.Equal(t, 120.0, photos.UnitPrice)
		assert.Equal(t, 1, photos.Quantity)

		// 3x1500 base + 3x50 lunch + 120 photos.
		assert.Equal(t, 4770.0, updated.Quote.GrandTotal)
	})

	t.Run("unknown extras are rejected", func(t *testing.T) {
		_, err := svc.UpdateExtras(ctx, session.SessionID, []ExtraSelection{{Name: "helicopter", Quantity: 1}})
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
	})
}

func TestAdvanceGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("selection needs date, time and a participant", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		_, err = svc.Advance(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))

		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{Date: "2025-06-15"})
		require.NoError(t, err)
		_, err = svc.Advance(ctx, session.SessionID)
		require.Error(t, err, "still missing a time")

		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{Time: "09:00"})
		require.NoError(t, err)
		advanced, err := svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepParticipants, advanced.Step)
	})

	t.Run("participants must all be complete before contact", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		_, err = svc.UpdateSelection(ctx, session.SessionID, SelectionUpdate{
			Date: "2025-06-15", Time: "09:00", ParticipantCount: 2,
		})
		require.NoError(t, err)
		_, err = svc.Advance(ctx, session.SessionID)
		require.NoError(t, err)

		_, err = svc.UpdateParticipants(ctx, session.SessionID, []models.Participant{
			{FirstName: "Ana", LastName: "Reyes", BirthDate: "1990-04-02"},
			{FirstName: "Luis"},
		})
		require.NoError(t, err)

		_, err = svc.Advance(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()
	svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
	session, err := svc.StartSession(ctx, "act-dive")
	require.NoError(t, err)
	fillToContact(t, svc, session.SessionID, 2)

	back, err := svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepParticipants, back.Step)
	require.Len(t, back.Draft.Participants, 2)
	assert.Equal(t, "Ana", back.Draft.Participants[0].FirstName, "entered data survives going back")
	assert.Equal(t, "Ana Reyes", back.Draft.CustomerName, "contact data survives going back")

	back, err = svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelection, back.Step)
	assert.Equal(t, "2025-06-15", back.Draft.Date)

	_, err = svc.Back(ctx, session.SessionID)
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("no payment due ends in success", func(t *testing.T) {
		reservations := &fakeReservations{result: &models.ReservationResult{
			ID:            "res-1",
			TrackingToken: "tok-1",
			TotalPrice:    3000,
			PaymentType:   models.PaymentTypeNone,
		}}
		payments := &fakePayments{url: "https://pay.example.com/x"}
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, reservations, payments)

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 2)

		submitted, err := svc.Submit(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepSuccess, submitted.Step)
		require.NotNil(t, submitted.Result)
		assert.Equal(t, "tok-1", submitted.Result.TrackingToken)
		assert.Equal(t, 0, payments.calls, "no payment gateway call without money due")
	})

	t.Run("deposit due ends in payment redirect", func(t *testing.T) {
		reservations := &fakeReservations{result: &models.ReservationResult{
			ID:               "res-2",
			TrackingToken:    "tok-2",
			TotalPrice:       1500,
			DepositRequired:  200,
			RemainingPayment: 1300,
			PaymentType:      models.PaymentTypePartial,
		}}
		payments := &fakePayments{url: "https://pay.example.com/res-2"}
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, reservations, payments)

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)

		submitted, err := svc.Submit(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepPaymentRedirect, submitted.Step)
		assert.Equal(t, "https://pay.example.com/res-2", submitted.PaymentURL)
		assert.Equal(t, 200.0, payments.last.Amount, "deposit amount is charged, not the total")
		assert.Equal(t, "res-2", payments.last.ReservationID)
	})

	t.Run("full payment charges the total", func(t *testing.T) {
		reservations := &fakeReservations{result: &models.ReservationResult{
			ID:          "res-3",
			TotalPrice:  1500,
			PaymentType: models.PaymentTypeFull,
		}}
		payments := &fakePayments{url: "https://pay.example.com/res-3"}
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, reservations, payments)

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)

		submitted, err := svc.Submit(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepPaymentRedirect, submitted.Step)
		assert.Equal(t, 1500.0, payments.last.Amount)
	})

	t.Run("creation failure rolls back to contact with the draft intact", func(t *testing.T) {
		reservations := &fakeReservations{err: context.DeadlineExceeded}
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, reservations, &fakePayments{})

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 2)

		_, err = svc.Submit(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeNetwork, ErrorCode(err))

		current, err := svc.GetSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepContact, current.Step)
		assert.Equal(t, "Ana Reyes", current.Draft.CustomerName)
		assert.Nil(t, current.Result)

		// A retry after the upstream recovers succeeds.
		reservations.err = nil
		reservations.result = &models.ReservationResult{ID: "res-4", PaymentType: models.PaymentTypeNone}
		retried, err := svc.Submit(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepSuccess, retried.Step)
	})

	t.Run("upstream rejection surfaces its message", func(t *testing.T) {
		reservations := &fakeReservations{err: &clients.APIError{
			StatusCode: 409, Code: "slot_taken", Message: "the selected time was just booked out",
		}}
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, reservations, &fakePayments{})

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)

		_, err = svc.Submit(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeExternal, ErrorCode(err))
		assert.Contains(t, err.Error(), "the selected time was just booked out")
	})

	t.Run("payment failure keeps the created reservation for retry", func(t *testing.T) {
		reservations := &fakeReservations{result: &models.ReservationResult{
			ID:              "res-5",
			DepositRequired: 300,
			TotalPrice:      900,
			PaymentType:     models.PaymentTypePartial,
		}}
		payments := &fakePayments{err: context.DeadlineExceeded}
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, reservations, payments)

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)

		_, err = svc.Submit(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeNetwork, ErrorCode(err))

		current, err := svc.GetSession(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepContact, current.Step)
		require.NotNil(t, current.Result, "the created reservation is kept")

		payments.err = nil
		payments.url = "https://pay.example.com/res-5"
		retried, err := svc.Submit(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.StepPaymentRedirect, retried.Step)
		assert.Equal(t, 1, reservations.calls, "the reservation is not created twice")
	})

	t.Run("a submission already in progress is rejected", func(t *testing.T) {
		store := newMemorySessionStore()
		reservations := &fakeReservations{result: &models.ReservationResult{ID: "res-6"}}
		svc := NewFlowService(&fakeCatalog{activity: diveActivity()}, reservations, &fakePayments{}, store, zap.NewNop())

		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)

		current, err := store.Get(ctx, session.SessionID)
		require.NoError(t, err)
		current.Step = models.StepSubmitting
		require.NoError(t, store.Save(ctx, current))

		_, err = svc.Submit(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
		assert.Equal(t, 0, reservations.calls)
	})

	t.Run("missing contact details block submit", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)
		_, err = svc.UpdateContact(ctx, session.SessionID, ContactUpdate{CustomerName: "Ana Reyes"})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
	})

	t.Run("transfer requires a served zone and a hotel", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)
		fillToContact(t, svc, session.SessionID, 1)

		_, err = svc.UpdateContact(ctx, session.SessionID, ContactUpdate{
			CustomerName:  "Ana Reyes",
			CustomerPhone: "+52 555 0100",
			HasTransfer:   true,
			TransferZone:  "downtown",
			HotelName:     "Hotel Sol",
		})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, session.SessionID)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
		assert.Contains(t, err.Error(), "downtown")
	})
}

func TestDayAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("computed from the catalog snapshot", func(t *testing.T) {
		catalog := &fakeCatalog{
			activity: diveActivity(),
			day: &models.AvailabilityDay{
				Date: "2025-06-20",
				TimeSlots: []models.AvailabilitySlot{
					{Time: "09:00", TotalCapacity: 10, BookedCount: 9},
				},
			},
		}
		svc := newTestFlow(catalog, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		day, err := svc.DayAvailability(ctx, session.SessionID, "2025-06-20")
		require.NoError(t, err)
		assert.Equal(t, 90, day.OccupancyPercent)
		assert.Equal(t, models.BandNearFull, day.Band)
	})

	t.Run("no snapshot offers the default times optimistically", func(t *testing.T) {
		svc := newTestFlow(&fakeCatalog{activity: diveActivity()}, &fakeReservations{}, &fakePayments{})
		session, err := svc.StartSession(ctx, "act-dive")
		require.NoError(t, err)

		day, err := svc.DayAvailability(ctx, session.SessionID, "2025-06-20")
		require.NoError(t, err)
		assert.False(t, day.IsClosed)
		assert.Equal(t, models.BandOpen, day.Band)
		require.Len(t, day.AvailableSlots, 2)
		assert.Equal(t, "09:00", day.AvailableSlots[0].Time)
		assert.False(t, day.AvailableSlots[0].IsFull)
	})
}
