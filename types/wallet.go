package types

import "github.com/go-playground/validator/v10"

// AddWalletRequest registers an externally owned account with the project.
type AddWalletRequest struct {
	Address     string   `json:"address" validate:"required"`
	DisplayName string   `json:"display_name,omitempty"`
	NetworkIDs  []string `json:"network_ids" validate:"required,min=1"`
}

// NewAddWalletRequest creates an add-wallet request.
func NewAddWalletRequest(address string, networkIDs ...string) *AddWalletRequest {
	return &AddWalletRequest{Address: address, NetworkIDs: networkIDs}
}

// SetDisplayName sets the dashboard display name.
func (r *AddWalletRequest) SetDisplayName(name string) *AddWalletRequest {
	r.DisplayName = name
	return r
}

// Validate checks the request before it is sent.
func (r *AddWalletRequest) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}

	return ValidateAddress(r.Address)
}

// Wallet is a project wallet as returned by the service.
type Wallet struct {
	ID          string   `json:"id"`
	Address     string   `json:"address,omitempty"`
	DisplayName string   `json:"display_name,omitempty"`
	NetworkID   string   `json:"network_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// WalletList is the response of the wallet listing.
type WalletList struct {
	Wallets []Wallet `json:"wallets"`
}
