package tenderly

import (
	"context"
	"net/http"

	"github.com/simforge/tenderly-go/types"
)

// NetworksClient exposes the supported-network listings.
type NetworksClient struct {
	client *Client
}

// Networks returns the network sub-client.
func (c *Client) Networks() *NetworksClient {
	return &NetworksClient{client: c}
}

// List returns the public networks supported by the platform. This is one
// of the few endpoints that is not project-scoped.
func (n *NetworksClient) List(ctx context.Context) ([]types.Network, error) {
	var out []types.Network
	if err := n.client.do(ctx, http.MethodGet, "/public-networks", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListProject returns the networks visible to the project, including its
// virtual testnets.
func (n *NetworksClient) ListProject(ctx context.Context) ([]types.Network, error) {
	var out []types.Network
	err := n.client.do(ctx, http.MethodGet, n.client.projectPath("/networks"), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}
