package tenderly

import (
	"context"
	"net/http"

	"github.com/simforge/tenderly-go/types"
)

// WalletsClient exposes the project wallet API.
type WalletsClient struct {
	client *Client
}

// Wallets returns the wallet sub-client.
func (c *Client) Wallets() *WalletsClient {
	return &WalletsClient{client: c}
}

// Add registers an externally owned account with the project.
func (w *WalletsClient) Add(ctx context.Context, req *types.AddWalletRequest) (*types.Wallet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.Wallet
	err := w.client.do(ctx, http.MethodPost, w.client.projectPath("/wallet"), nil, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// List returns the project's wallets.
func (w *WalletsClient) List(ctx context.Context) ([]types.Wallet, error) {
	var out types.WalletList
	err := w.client.do(ctx, http.MethodGet, w.client.projectPath("/wallets"), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return out.Wallets, nil
}

// Get returns a project wallet by network and address.
func (w *WalletsClient) Get(ctx context.Context, networkID, address string) (*types.Wallet, error) {
	if err := types.ValidateAddress(address); err != nil {
		return nil, err
	}

	var out types.Wallet
	path := w.client.projectPath(walletPath(networkID, address))
	if err := w.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Rename changes the dashboard display name of a wallet.
func (w *WalletsClient) Rename(ctx context.Context, networkID, address, displayName string) error {
	if err := types.ValidateAddress(address); err != nil {
		return err
	}

	body := types.RenameRequest{DisplayName: displayName}
	path := w.client.projectPath(walletPath(networkID, address) + "/rename")

	return w.client.do(ctx, http.MethodPost, path, nil, body, nil)
}

// Remove deletes a wallet from the project.
func (w *WalletsClient) Remove(ctx context.Context, networkID, address string) error {
	if err := types.ValidateAddress(address); err != nil {
		return err
	}

	path := w.client.projectPath(walletPath(networkID, address))

	return w.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func walletPath(networkID, address string) string {
	return "/wallet/" + encodePathSegment(networkID) + "/" + encodePathSegment(address)
}
