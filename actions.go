package tenderly

import (
	"context"
	"net/http"

	"github.com/simforge/tenderly-go/types"
)

// ActionsClient exposes the web3 actions API.
type ActionsClient struct {
	client *Client
}

// Actions returns the action sub-client.
func (c *Client) Actions() *ActionsClient {
	return &ActionsClient{client: c}
}

// Create creates a new action.
func (a *ActionsClient) Create(ctx context.Context, req *types.CreateActionRequest) (*types.Action, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Action
	err := a.client.do(ctx, http.MethodPost, a.client.projectPath("/actions"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// List returns the project's actions.
func (a *ActionsClient) List(ctx context.Context) ([]types.Action, error) {
	var out types.ActionList
	err := a.client.do(ctx, http.MethodGet, a.client.projectPath("/actions"), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return out.Actions, nil
}

// Get returns an action by id.
func (a *ActionsClient) Get(ctx context.Context, id string) (*types.Action, error) {
	var out types.Action
	path := a.client.projectPath("/actions/" + encodePathSegment(id))
	if err := a.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes mutable fields of an action.
func (a *ActionsClient) Update(ctx context.Context, id string, req *types.UpdateActionRequest) (*types.Action, error) {
	var out types.Action
	path := a.client.projectPath("/actions/" + encodePathSegment(id))
	if err := a.client.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an action.
func (a *ActionsClient) Delete(ctx context.Context, id string) error {
	path := a.client.projectPath("/actions/" + encodePathSegment(id))
	return a.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Enable starts the action's trigger.
func (a *ActionsClient) Enable(ctx context.Context, id string) error {
	path := a.client.projectPath("/actions/" + encodePathSegment(id) + "/enable")
	return a.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}

// Disable stops the action's trigger without deleting the action.
func (a *ActionsClient) Disable(ctx context.Context, id string) error {
	path := a.client.projectPath("/actions/" + encodePathSegment(id) + "/disable")
	return a.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}
