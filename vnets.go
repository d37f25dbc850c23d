package tenderly

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/simforge/tenderly-go/types"
)

// VNetsClient exposes the virtual testnet API.
type VNetsClient struct {
	client *Client
}

// VNets returns the virtual testnet sub-client.
func (c *Client) VNets() *VNetsClient {
	return &VNetsClient{client: c}
}

// Create provisions a new virtual testnet.
func (v *VNetsClient) Create(ctx context.Context, req *types.CreateVNetRequest) (*types.VNet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.VNet
	err := v.client.do(ctx, http.MethodPost, v.client.projectPath("/vnets"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// List returns the project's virtual testnets. The endpoint returns a bare
// JSON array, not a wrapper object. A nil query lists everything.
func (v *VNetsClient) List(ctx context.Context, query *types.ListVNetsQuery) ([]types.VNet, error) {
	values := url.Values{}
	if query != nil {
		if query.Slug != "" {
			values.Set("slug", query.Slug)
		}
		if query.Page > 0 {
			values.Set("page", strconv.FormatUint(uint64(query.Page), 10))
		}
		if query.PerPage > 0 {
			values.Set("per_page", strconv.FormatUint(uint64(query.PerPage), 10))
		}
	}

	var out []types.VNet
	err := v.client.do(ctx, http.MethodGet, v.client.projectPath("/vnets"), values, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Get returns a virtual testnet by id.
func (v *VNetsClient) Get(ctx context.Context, id string) (*types.VNet, error) {
	var out types.VNet
	path := v.client.projectPath("/vnets/" + encodePathSegment(id))
	if err := v.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes mutable fields of a virtual testnet.
func (v *VNetsClient) Update(ctx context.Context, id string, req *types.UpdateVNetRequest) (*types.VNet, error) {
	var out types.VNet
	path := v.client.projectPath("/vnets/" + encodePathSegment(id))
	if err := v.client.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a single virtual testnet.
func (v *VNetsClient) Delete(ctx context.Context, id string) error {
	path := v.client.projectPath("/vnets/" + encodePathSegment(id))
	return v.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// DeleteMany removes multiple virtual testnets in a single request. The
// ids travel in the body of a DELETE to the collection endpoint; the
// service ignores query parameters here.
func (v *VNetsClient) DeleteMany(ctx context.Context, ids []string) error {
	body := types.VNetIDs{IDs: ids}
	return v.client.do(ctx, http.MethodDelete, v.client.projectPath("/vnets"), nil, body, nil)
}

// Stop halts block production on a virtual testnet.
func (v *VNetsClient) Stop(ctx context.Context, id string) error {
	path := v.client.projectPath("/vnets/" + encodePathSegment(id) + "/stop")
	return v.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}

// Resume restarts a stopped virtual testnet.
func (v *VNetsClient) Resume(ctx context.Context, id string) error {
	path := v.client.projectPath("/vnets/" + encodePathSegment(id) + "/resume")
	return v.client.do(ctx, http.MethodPost, path, nil, emptyBody, nil)
}

// StopMany halts multiple virtual testnets in a single request, ids in the
// body.
func (v *VNetsClient) StopMany(ctx context.Context, ids []string) error {
	body := types.VNetIDs{IDs: ids}
	return v.client.do(ctx, http.MethodPost, v.client.projectPath("/vnets/stop"), nil, body, nil)
}

// ResumeMany restarts multiple virtual testnets in a single request, ids
// in the body.
func (v *VNetsClient) ResumeMany(ctx context.Context, ids []string) error {
	body := types.VNetIDs{IDs: ids}
	return v.client.do(ctx, http.MethodPost, v.client.projectPath("/vnets/resume"), nil, body, nil)
}

// Fork creates a new virtual testnet from the state of an existing one.
func (v *VNetsClient) Fork(ctx context.Context, req *types.ForkVNetRequest) (*types.VNet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.VNet
	err := v.client.do(ctx, http.MethodPost, v.client.projectPath("/vnets/fork"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// ListTransactions returns transactions executed on a virtual testnet. A
// nil query lists everything.
func (v *VNetsClient) ListTransactions(ctx context.Context, id string, query *types.ListVNetTransactionsQuery) (*types.VNetTransactionList, error) {
	values := url.Values{}
	if query != nil {
		if query.Address != "" {
			values.Set("address", query.Address)
		}
		if query.Status != nil {
			values.Set("status", strconv.FormatBool(*query.Status))
		}
		if query.Page > 0 {
			values.Set("page", strconv.FormatUint(uint64(query.Page), 10))
		}
		if query.PerPage > 0 {
			values.Set("per_page", strconv.FormatUint(uint64(query.PerPage), 10))
		}
	}

	var out types.VNetTransactionList
	path := v.client.projectPath("/vnets/" + encodePathSegment(id) + "/transactions")
	if err := v.client.do(ctx, http.MethodGet, path, values, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SendTransaction executes a transaction on a virtual testnet and commits
// its state changes.
func (v *VNetsClient) SendTransaction(ctx context.Context, id string, req *types.SendVNetTransactionRequest) (*types.VNetTransaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.VNetTransaction
	path := v.client.projectPath("/vnets/" + encodePathSegment(id) + "/transactions")
	if err := v.client.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Simulate dry-runs a transaction against the current state of a virtual
// testnet without committing it.
func (v *VNetsClient) Simulate(ctx context.Context, id string, req *types.VNetSimulationRequest) (*types.SimulationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.SimulationResult
	path := v.client.projectPath("/vnets/" + encodePathSegment(id) + "/transactions/simulate")
	if err := v.client.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AdminRPC builds the admin RPC sub-client for a virtual testnet from its
// advertised endpoints.
func (v *VNetsClient) AdminRPC(vnet *types.VNet) (*AdminRPC, error) {
	adminURL, ok := vnet.AdminRPCURL()
	if !ok {
		return nil, fmt.Errorf("vnet %s does not expose an admin RPC endpoint", vnet.ID)
	}

	return v.AdminRPCFromURL(adminURL), nil
}

// AdminRPCFromURL builds the admin RPC sub-client for a known endpoint
// URL.
func (v *VNetsClient) AdminRPCFromURL(endpoint string) *AdminRPC {
	return newAdminRPC(v.client, endpoint)
}
