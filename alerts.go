package tenderly

import (
	"context"
	"net/http"

	"github.com/simforge/tenderly-go/types"
)

// AlertsClient exposes the alerting API.
type AlertsClient struct {
	client *Client
}

// Alerts returns the alert sub-client.
func (c *Client) Alerts() *AlertsClient {
	return &AlertsClient{client: c}
}

// Create creates a new alert.
func (a *AlertsClient) Create(ctx context.Context, req *types.CreateAlertRequest) (*types.Alert, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Alert
	err := a.client.do(ctx, http.MethodPost, a.client.projectPath("/alerts"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// List returns the project's alerts.
func (a *AlertsClient) List(ctx context.Context) ([]types.Alert, error) {
	var out types.AlertList
	err := a.client.do(ctx, http.MethodGet, a.client.projectPath("/alerts"), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return out.Alerts, nil
}

// Get returns an alert by id.
func (a *AlertsClient) Get(ctx context.Context, id string) (*types.Alert, error) {
	var out types.Alert
	path := a.client.projectPath("/alerts/" + encodePathSegment(id))
	if err := a.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes mutable fields of an alert.
func (a *AlertsClient) Update(ctx context.Context, id string, req *types.UpdateAlertRequest) (*types.Alert, error) {
	var out types.Alert
	path := a.client.projectPath("/alerts/" + encodePathSegment(id))
	if err := a.client.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an alert.
func (a *AlertsClient) Delete(ctx context.Context, id string) error {
	path := a.client.projectPath("/alerts/" + encodePathSegment(id))
	return a.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Enable turns an alert on.
func (a *AlertsClient) Enable(ctx context.Context, id string) error {
	path := a.client.projectPath("/alerts/" + encodePathSegment(id) + "/enable")
	return a.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}

// Disable turns an alert off without deleting it.
func (a *AlertsClient) Disable(ctx context.Context, id string) error {
	path := a.client.projectPath("/alerts/" + encodePathSegment(id) + "/disable")
	return a.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}
