package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/fittrack/internal/domain"
)

// Profile fetches the caller's profile.
func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, req domain.ProfileUpdateRequest) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.put(ctx, "/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ChangeHistory lists recorded profile and measurement changes.
func (c *Client) ChangeHistory(ctx context.Context) ([]domain.ChangeHistoryEntry, error) {
	var entries []domain.ChangeHistoryEntry
	if err := c.get(ctx, "/profile/history", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateMeasurement records a body measurement snapshot.
func (c *Client) CreateMeasurement(ctx context.Context, req domain.MeasurementRequest) (*domain.Measurement, error) {
	var m domain.Measurement
	if err := c.post(ctx, "/measurements", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Measurements lists all recorded measurements, newest first.
func (c *Client) Measurements(ctx context.Context) ([]domain.Measurement, error) {
	var ms []domain.Measurement
	if err := c.get(ctx, "/measurements", &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

// LatestMeasurement returns the most recent measurement, or nil when none
// has been recorded (the backend answers 204).
func (c *Client) LatestMeasurement(ctx context.Context) (*domain.Measurement, error) {
	var m domain.Measurement
	status, err := c.do(ctx, http.MethodGet, "/measurements/latest", nil, &m)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &m, nil
}

// DeleteMeasurement removes one measurement by id.
func (c *Client) DeleteMeasurement(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/measurements/%d", id))
}
