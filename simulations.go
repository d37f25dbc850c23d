package tenderly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/simforge/tenderly-go/types"
)

// SimulatorClient exposes the transaction simulation API.
type SimulatorClient struct {
	client *Client
}

// Simulator returns the simulation sub-client.
func (c *Client) Simulator() *SimulatorClient {
	return &SimulatorClient{client: c}
}

// Simulate dry-runs a single transaction against the requested chain state
// and returns its effects without committing anything on-chain.
func (s *SimulatorClient) Simulate(ctx context.Context, req *types.SimulationRequest) (*types.SimulationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.SimulationResult
	err := s.client.do(ctx, http.MethodPost, s.client.projectPath("/simulate"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// SimulateBundle dry-runs a sequence of transactions; each one executes on
// top of the state changes produced by the previous ones.
func (s *SimulatorClient) SimulateBundle(ctx context.Context, req *types.BundleRequest) ([]types.SimulationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.BundleResult
	err := s.client.do(ctx, http.MethodPost, s.client.projectPath("/simulate-bundle"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return out.SimulationResults, nil
}

// List returns saved simulations, page-indexed from zero. The endpoint
// uses camelCase for perPage, unlike the rest of the API.
func (s *SimulatorClient) List(ctx context.Context, page, perPage uint) (*types.SimulationList, error) {
	query := url.Values{}
	query.Set("page", strconv.FormatUint(uint64(page), 10))
	query.Set("perPage", strconv.FormatUint(uint64(perPage), 10))

	var out types.SimulationList
	err := s.client.do(ctx, http.MethodGet, s.client.projectPath("/simulations"), query, nil, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a saved simulation by id.
func (s *SimulatorClient) Get(ctx context.Context, id string) (*types.SimulationResult, error) {
	var out types.SimulationResult
	path := s.client.projectPath("/simulations/" + encodePathSegment(id))
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Info returns extended details of a saved simulation, decoded call
// traces and logs included. The shape varies with the simulation type, so
// it is returned raw.
func (s *SimulatorClient) Info(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	path := s.client.projectPath("/simulations/" + encodePathSegment(id) + "/info")
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Share makes a saved simulation publicly viewable and returns its public
// dashboard URL.
func (s *SimulatorClient) Share(ctx context.Context, id string) (string, error) {
	path := s.client.projectPath("/simulations/" + encodePathSegment(id) + "/share")
	if err := s.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://dashboard.tenderly.co/shared/simulation/%s", encodePathSegment(id)), nil
}

// Unshare makes a previously shared simulation private again.
func (s *SimulatorClient) Unshare(ctx context.Context, id string) error {
	path := s.client.projectPath("/simulations/" + encodePathSegment(id) + "/unshare")
	return s.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}

// Trace returns the execution trace of an already mined transaction. The
// trace shape varies widely, so it is returned raw.
func (s *SimulatorClient) Trace(ctx context.Context, txHash string) (json.RawMessage, error) {
	var out json.RawMessage
	path := s.client.projectPath("/trace/" + encodePathSegment(txHash))
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
