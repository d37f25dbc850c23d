package tenderly

import (
	"context"
	"net/http"

	"github.com/simforge/tenderly-go/types"
)

// ContractsClient exposes the project contract API.
type ContractsClient struct {
	client *Client
}

// Contracts returns the contract sub-client.
func (c *Client) Contracts() *ContractsClient {
	return &ContractsClient{client: c}
}

// Add registers a deployed contract with the project.
func (cc *ContractsClient) Add(ctx context.Context, req *types.AddContractRequest) (*types.Contract, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Contract
	err := cc.client.do(ctx, http.MethodPost, cc.client.projectPath("/address"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// List returns the project's contracts. The endpoint returns a bare JSON
// array.
func (cc *ContractsClient) List(ctx context.Context) ([]types.Contract, error) {
	var out []types.Contract
	err := cc.client.do(ctx, http.MethodGet, cc.client.projectPath("/contracts"), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Get returns a project contract by network and address.
func (cc *ContractsClient) Get(ctx context.Context, networkID, address string) (*types.Contract, error) {
	if err := types.ValidateAddress(address); err != nil {
		return nil, err
	}

	var out types.Contract
	path := cc.client.projectPath(contractPath(networkID, address))
	if err := cc.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Rename changes the dashboard display name of a contract.
func (cc *ContractsClient) Rename(ctx context.Context, networkID, address, displayName string) error {
	if err := types.ValidateAddress(address); err != nil {
		return err
	}

	body := types.RenameRequest{DisplayName: displayName}
	path := cc.client.projectPath(contractPath(networkID, address) + "/rename")

	return cc.client.do(ctx, http.MethodPost, path, nil, body, nil)
}

// AddTag attaches a tag to one or more project contracts.
func (cc *ContractsClient) AddTag(ctx context.Context, req *types.TagRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return cc.client.do(ctx, http.MethodPost, cc.client.projectPath("/tag"), nil, req, nil)
}

// Remove deletes a contract from the project. The deployed contract itself
// is unaffected.
func (cc *ContractsClient) Remove(ctx context.Context, networkID, address string) error {
	if err := types.ValidateAddress(address); err != nil {
		return err
	}

	path := cc.client.projectPath(contractPath(networkID, address))

	return cc.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func contractPath(networkID, address string) string {
	return "/contract/" + encodePathSegment(networkID) + "/" + encodePathSegment(address)
}
