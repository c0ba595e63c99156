package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tourify/models"

	"go.uber.org/zap"
)

// ReservationClient talks to the externally-owned Reservation write API,
// which also serves the tracking endpoints.
type ReservationClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewReservationClient creates a client for the reservation API.
func NewReservationClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ReservationClient {
	return &ReservationClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// createReservationRequest mirrors the reservation API's POST body.
type createReservationRequest struct {
	ActivityID     string                 `json:"activityId"`
	Date           string                 `json:"date"`
	Time           string                 `json:"time"`
	Quantity       int                    `json:"quantity"`
	SelectedExtras []models.SelectedExtra `json:"selectedExtras,omitempty"`
	Participants   []models.Participant   `json:"participants,omitempty"`
	CustomerName   string                 `json:"customerName"`
	CustomerPhone  string                 `json:"customerPhone"`
	CustomerEmail  string                 `json:"customerEmail,omitempty"`
	HotelName      string                 `json:"hotelName,omitempty"`
	HasTransfer    bool                   `json:"hasTransfer,omitempty"`
	TransferZone   string                 `json:"transferZone,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
}

// CreateReservation submits a completed draft and returns the created reservation.
func (c *ReservationClient) CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.ReservationResult, error) {
	payload := createReservationRequest{
		ActivityID:     draft.ActivityID,
		Date:           draft.Date,
		Time:           draft.Time,
		Quantity:       draft.ParticipantCount,
		SelectedExtras: draft.SelectedExtras,
		Participants:   draft.Participants,
		CustomerName:   draft.CustomerName,
		CustomerPhone:  draft.CustomerPhone,
		CustomerEmail:  draft.CustomerEmail,
		HotelName:      draft.HotelName,
		HasTransfer:    draft.HasTransfer,
		TransferZone:   draft.TransferZone,
		Notes:          draft.Notes,
	}

	var result models.ReservationResult
	if err := c.post(ctx, "/reservations", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTrackedReservation fetches a reservation by its opaque tracking token.
func (c *ReservationClient) GetTrackedReservation(ctx context.Context, token string) (*models.TrackedReservation, error) {
	endpoint := fmt.Sprintf("%s/track/%s", c.baseURL, url.PathEscape(token))

	var tracked models.TrackedReservation
	if err := c.get(ctx, endpoint, &tracked); err != nil {
		return nil, err
	}
	return &tracked, nil
}

// GetTrackingCalendar fetches the availability calendar used by the
// reschedule UI for the reservation behind the token.
func (c *ReservationClient) GetTrackingCalendar(ctx context.Context, token string) ([]models.AvailabilityDay, error) {
	endpoint := fmt.Sprintf("%s/track/%s/availability", c.baseURL, url.PathEscape(token))

	var days []models.AvailabilityDay
	if err := c.get(ctx, endpoint, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// SubmitCustomerRequest files a date-change/cancellation/other request.
func (c *ReservationClient) SubmitCustomerRequest(ctx context.Context, request models.CustomerRequest) error {
	return c.post(ctx, "/customer-requests", request, nil)
}

func (c *ReservationClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("reservation: request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *ReservationClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("reservation: request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// checkStatus maps upstream status codes onto the client error taxonomy.
// 4xx responses carry a structured body that must reach the customer verbatim.
func (c *ReservationClient) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var upstream struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		raw, _ := io.ReadAll(resp.Body)
		message := string(raw)
		if err := json.Unmarshal(raw, &upstream); err == nil {
			if upstream.Message != "" {
				message = upstream.Message
			} else if upstream.Error != "" {
				message = upstream.Error
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Code: upstream.Code, Message: message}
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}
}
