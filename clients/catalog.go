package clients

import (
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

// CatalogClient talks to the externally-owned Activity/Availability read API.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCatalogClient creates a client for the catalog API.
func NewCatalogClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// GetActivity fetches a single activity by ID.
func (c *CatalogClient) GetActivity(ctx context.Context, activityID string) (*models.Activity, error) {
	endpoint := fmt.Sprintf("%s/activities/%s", c.baseURL, url.PathEscape(activityID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog: activity request failed", zap.String("activityId", activityID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var activity models.Activity
	if err := json.NewDecoder(resp.Body).Decode(&activity); err != nil {
		return nil, fmt.Errorf("%w: failed to decode activity: %v", ErrInvalidResponse, err)
	}
	return &activity, nil
}

// GetDayAvailability fetches the availability snapshot for one activity+date.
// A 404 or an empty slot list means the catalog has no day-specific data; the
// caller falls back to the activity's default times, so (nil, nil) is returned.
func (c *CatalogClient) GetDayAvailability(ctx context.Context, activityID, date string) (*models.AvailabilityDay, error) {
	endpoint := fmt.Sprintf("%s/availability?activityId=%s&date=%s",
		c.baseURL, url.QueryEscape(activityID), url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog: availability request failed",
			zap.String("activityId", activityID), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var slots []models.AvailabilitySlot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability: %v", ErrInvalidResponse, err)
	}
	if len(slots) == 0 {
		return nil, nil
	}
	return &models.AvailabilityDay{Date: date, TimeSlots: slots}, nil
}
