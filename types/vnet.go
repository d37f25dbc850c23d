package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// VNetStatus is the lifecycle status of a virtual testnet. Not exhaustive;
// unknown values decode without error.
type VNetStatus string

const (
	VNetStatusRunning VNetStatus = "running"
	VNetStatusStopped VNetStatus = "stopped"
	VNetStatusPaused  VNetStatus = "paused"
)

// SnapshotID is an opaque handle returned by the admin RPC snapshot method
// and later consumed by revert. The service is the sole source of truth on
// its validity; no local bookkeeping is performed.
type SnapshotID string

// ForkConfig selects the parent network and block a virtual testnet forks
// from.
type ForkConfig struct {
	NetworkID   uint64  `json:"network_id" validate:"required"`
	BlockNumber *uint64 `json:"block_number,omitempty"`
}

// VirtualNetworkConfig configures the virtual network itself.
type VirtualNetworkConfig struct {
	ChainID       uint64  `json:"chain_id" validate:"required"`
	BaseFeePerGas *uint64 `json:"base_fee_per_gas,omitempty"`
}

// SyncStateConfig toggles continuous state sync from the parent network.
type SyncStateConfig struct {
	Enabled bool `json:"enabled"`
}

// ExplorerPageConfig configures the public explorer page of a virtual
// testnet.
type ExplorerPageConfig struct {
	Enabled                bool   `json:"enabled"`
	VerificationVisibility string `json:"verification_visibility"`
}

// CreateVNetRequest creates a new virtual testnet. The nested object shapes
// (fork_config, virtual_network_config, ...) are normative; the service
// rejects flattened fields.
type CreateVNetRequest struct {
	Slug                 string               `json:"slug" validate:"required"`
	DisplayName          string               `json:"display_name" validate:"required"`
	ForkConfig           ForkConfig           `json:"fork_config"`
	VirtualNetworkConfig VirtualNetworkConfig `json:"virtual_network_config"`
	SyncStateConfig      *SyncStateConfig     `json:"sync_state_config,omitempty"`
	ExplorerPageConfig   *ExplorerPageConfig  `json:"explorer_page_config,omitempty"`
}

// NewCreateVNetRequest creates a vnet request with minimal configuration,
// forking the given network at its latest block and reusing its id as the
// chain id.
func NewCreateVNetRequest(slug, displayName string, networkID uint64) *CreateVNetRequest {
	return &CreateVNetRequest{
		Slug:        slug,
		DisplayName: displayName,
		ForkConfig:  ForkConfig{NetworkID: networkID},
		VirtualNetworkConfig: VirtualNetworkConfig{
			ChainID: networkID,
		},
	}
}

// SetBlockNumber forks from a specific block instead of the latest.
func (r *CreateVNetRequest) SetBlockNumber(block uint64) *CreateVNetRequest {
	r.ForkConfig.BlockNumber = &block
	return r
}

// SetChainID sets a custom chain id for the virtual network.
func (r *CreateVNetRequest) SetChainID(chainID uint64) *CreateVNetRequest {
	r.VirtualNetworkConfig.ChainID = chainID
	return r
}

// SetBaseFeePerGas sets the EIP-1559 base fee.
func (r *CreateVNetRequest) SetBaseFeePerGas(fee uint64) *CreateVNetRequest {
	r.VirtualNetworkConfig.BaseFeePerGas = &fee
	return r
}

// SetSyncState enables or disables state sync from the parent network.
func (r *CreateVNetRequest) SetSyncState(enabled bool) *CreateVNetRequest {
	r.SyncStateConfig = &SyncStateConfig{Enabled: enabled}
	return r
}

// SetExplorerPage configures the public explorer page.
func (r *CreateVNetRequest) SetExplorerPage(enabled bool, verificationVisibility string) *CreateVNetRequest {
	r.ExplorerPageConfig = &ExplorerPageConfig{
		Enabled:                enabled,
		VerificationVisibility: verificationVisibility,
	}

	return r
}

// Validate checks the request before it is sent.
func (r *CreateVNetRequest) Validate() error {
	var validate = validator.New()
	return validate.Struct(r)
}

// UpdateVNetRequest updates mutable fields of a virtual testnet. Only set
// fields are sent.
type UpdateVNetRequest struct {
	DisplayName        *string             `json:"display_name,omitempty"`
	Slug               *string             `json:"slug,omitempty"`
	SyncStateConfig    *SyncStateConfig    `json:"sync_state_config,omitempty"`
	ExplorerPageConfig *ExplorerPageConfig `json:"explorer_page_config,omitempty"`
}

// NewUpdateVNetRequest creates an empty update request.
func NewUpdateVNetRequest() *UpdateVNetRequest {
	return &UpdateVNetRequest{}
}

// SetDisplayName updates the display name.
func (r *UpdateVNetRequest) SetDisplayName(name string) *UpdateVNetRequest {
	r.DisplayName = &name
	return r
}

// SetSlug updates the slug.
func (r *UpdateVNetRequest) SetSlug(slug string) *UpdateVNetRequest {
	r.Slug = &slug
	return r
}

// SetSyncState toggles state sync.
func (r *UpdateVNetRequest) SetSyncState(enabled bool) *UpdateVNetRequest {
	r.SyncStateConfig = &SyncStateConfig{Enabled: enabled}
	return r
}

// SetExplorerPage configures the explorer page.
func (r *UpdateVNetRequest) SetExplorerPage(enabled bool, verificationVisibility string) *UpdateVNetRequest {
	r.ExplorerPageConfig = &ExplorerPageConfig{
		Enabled:                enabled,
		VerificationVisibility: verificationVisibility,
	}

	return r
}

// ForkVNetRequest forks an existing virtual testnet into a new one. The
// source id intentionally serializes as srcTestnetId; the endpoint does not
// accept snake_case for this field.
type ForkVNetRequest struct {
	SourceVNetID string  `json:"srcTestnetId" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	DisplayName  string  `json:"display_name" validate:"required"`
	BlockNumber  *uint64 `json:"block_number,omitempty"`
}

// NewForkVNetRequest creates a fork request.
func NewForkVNetRequest(sourceVNetID, slug, displayName string) *ForkVNetRequest {
	return &ForkVNetRequest{
		SourceVNetID: sourceVNetID,
		Slug:         slug,
		DisplayName:  displayName,
	}
}

// SetBlockNumber forks from a specific block on the source vnet.
func (r *ForkVNetRequest) SetBlockNumber(block uint64) *ForkVNetRequest {
	r.BlockNumber = &block
	return r
}

// Validate checks the request before it is sent.
func (r *ForkVNetRequest) Validate() error {
	var validate = validator.New()
	return validate.Struct(r)
}

// ListVNetsQuery filters the vnet listing.
type ListVNetsQuery struct {
	Slug    string
	Page    uint
	PerPage uint
}

// ChainConfig is the nested chain configuration the service returns inside
// virtual_network_config.
type ChainConfig struct {
	ChainID uint64 `json:"chain_id"`
}

// ForkConfigResponse is the fork configuration as returned by the service;
// the forked block number comes back as a hex quantity string.
type ForkConfigResponse struct {
	NetworkID   uint64 `json:"network_id"`
	BlockNumber string `json:"block_number,omitempty"`
}

// VirtualNetworkConfigResponse is the virtual network configuration as
// returned by the service. The chain id arrives nested under chain_config,
// not flattened.
type VirtualNetworkConfigResponse struct {
	ChainConfig   *ChainConfig `json:"chain_config,omitempty"`
	BaseFeePerGas *uint64      `json:"base_fee_per_gas,omitempty"`
}

// ChainID returns the chain id from the nested chain_config, or zero when
// absent.
func (c VirtualNetworkConfigResponse) ChainID() uint64 {
	if c.ChainConfig == nil {
		return 0
	}

	return c.ChainConfig.ChainID
}

// RPCEndpoint is a single RPC endpoint exposed by a virtual testnet.
type RPCEndpoint struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VNet is a virtual testnet as returned by the service.
type VNet struct {
	ID                   string                       `json:"id"`
	Slug                 string                       `json:"slug"`
	DisplayName          string                       `json:"display_name"`
	ForkConfig           ForkConfigResponse           `json:"fork_config"`
	VirtualNetworkConfig VirtualNetworkConfigResponse `json:"virtual_network_config"`
	RPCs                 []RPCEndpoint                `json:"rpcs,omitempty"`
	Status               VNetStatus                   `json:"status,omitempty"`
	CreatedAt            string                       `json:"created_at,omitempty"`
}

// AdminRPCURL returns the admin RPC endpoint URL, matching by name.
func (v *VNet) AdminRPCURL() (string, bool) {
	return v.rpcByName("admin")
}

// PublicRPCURL returns the public RPC endpoint URL, matching by name.
func (v *VNet) PublicRPCURL() (string, bool) {
	return v.rpcByName("public")
}

func (v *VNet) rpcByName(fragment string) (string, bool) {
	for _, e := range v.RPCs {
		if strings.Contains(strings.ToLower(e.Name), fragment) {
			return e.URL, true
		}
	}

	return "", false
}

// VNetIDs is the body shape shared by the bulk vnet operations. The ids
// ride in the request body, including for DELETE; the endpoints ignore
// query parameters.
type VNetIDs struct {
	IDs []string `json:"ids"`
}

// VNetTransaction is a transaction executed on a virtual testnet.
type VNetTransaction struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"block_number,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Value       string `json:"value,omitempty"`
	GasUsed     uint64 `json:"gas_used,omitempty"`
	Status      *bool  `json:"status,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// VNetTransactionList is the response of the vnet transaction listing.
type VNetTransactionList struct {
	Transactions []VNetTransaction `json:"transactions"`
}

// ListVNetTransactionsQuery filters the vnet transaction listing.
type ListVNetTransactionsQuery struct {
	Address string
	Status  *bool
	Page    uint
	PerPage uint
}

// AccessListItem is an EIP-2930 access list entry.
type AccessListItem struct {
	Address     string   `json:"address"`
	StorageKeys []string `json:"storage_keys,omitempty"`
}

// SendVNetTransactionRequest executes a transaction on a virtual testnet.
type SendVNetTransactionRequest struct {
	From                 string           `json:"from" validate:"required"`
	To                   string           `json:"to"`
	Input                string           `json:"input,omitempty"`
	Value                string           `json:"value,omitempty"`
	Gas                  *uint64          `json:"gas,omitempty"`
	GasPrice             string           `json:"gas_price,omitempty"`
	MaxFeePerGas         string           `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas string           `json:"max_priority_fee_per_gas,omitempty"`
	AccessList           []AccessListItem `json:"access_list,omitempty"`
}

// NewSendVNetTransactionRequest creates a contract-call transaction.
func NewSendVNetTransactionRequest(from, to, input string) *SendVNetTransactionRequest {
	return &SendVNetTransactionRequest{From: from, To: to, Input: input}
}

// NewVNetTransfer creates a plain value transfer.
func NewVNetTransfer(from, to, valueWei string) *SendVNetTransactionRequest {
	return &SendVNetTransactionRequest{From: from, To: to, Value: valueWei}
}

// SetValue sets the value in wei.
func (r *SendVNetTransactionRequest) SetValue(wei string) *SendVNetTransactionRequest {
	r.Value = wei
	return r
}

// SetGas sets the gas limit.
func (r *SendVNetTransactionRequest) SetGas(gas uint64) *SendVNetTransactionRequest {
	r.Gas = &gas
	return r
}

// SetGasPrice sets a legacy gas price.
func (r *SendVNetTransactionRequest) SetGasPrice(price string) *SendVNetTransactionRequest {
	r.GasPrice = price
	return r
}

// SetMaxFeePerGas sets the EIP-1559 max fee.
func (r *SendVNetTransactionRequest) SetMaxFeePerGas(fee string) *SendVNetTransactionRequest {
	r.MaxFeePerGas = fee
	return r
}

// SetMaxPriorityFeePerGas sets the EIP-1559 priority fee.
func (r *SendVNetTransactionRequest) SetMaxPriorityFeePerGas(fee string) *SendVNetTransactionRequest {
	r.MaxPriorityFeePerGas = fee
	return r
}

// SetAccessList sets the EIP-2930 access list.
func (r *SendVNetTransactionRequest) SetAccessList(list []AccessListItem) *SendVNetTransactionRequest {
	r.AccessList = list
	return r
}

// Validate checks the request before it is sent.
func (r *SendVNetTransactionRequest) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := ValidateAddress(r.From); err != nil {
		return err
	}
	if r.To != "" {
		return ValidateAddress(r.To)
	}

	return nil
}

// VNetSimulationRequest simulates a transaction on a virtual testnet
// without committing it.
type VNetSimulationRequest struct {
	From                 string  `json:"from" validate:"required"`
	To                   string  `json:"to" validate:"required"`
	Input                string  `json:"input"`
	Value                string  `json:"value,omitempty"`
	Gas                  *uint64 `json:"gas,omitempty"`
	GasPrice             string  `json:"gas_price,omitempty"`
	MaxFeePerGas         string  `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas string  `json:"max_priority_fee_per_gas,omitempty"`
	TransactionType      *uint8  `json:"type,omitempty"`
	Nonce                *uint64 `json:"nonce,omitempty"`
}

// NewVNetSimulationRequest creates a vnet simulation request.
func NewVNetSimulationRequest(from, to, input string) *VNetSimulationRequest {
	return &VNetSimulationRequest{From: from, To: to, Input: input}
}

// SetValue sets the value in wei.
func (r *VNetSimulationRequest) SetValue(wei string) *VNetSimulationRequest {
	r.Value = wei
	return r
}

// SetGas sets the gas limit.
func (r *VNetSimulationRequest) SetGas(gas uint64) *VNetSimulationRequest {
	r.Gas = &gas
	return r
}

// SetMaxFeePerGas sets the EIP-1559 max fee and switches the transaction
// type to 2.
func (r *VNetSimulationRequest) SetMaxFeePerGas(fee string) *VNetSimulationRequest {
	r.MaxFeePerGas = fee
	txType := uint8(2)
	r.TransactionType = &txType

	return r
}

// SetMaxPriorityFeePerGas sets the EIP-1559 priority fee and switches the
// transaction type to 2.
func (r *VNetSimulationRequest) SetMaxPriorityFeePerGas(fee string) *VNetSimulationRequest {
	r.MaxPriorityFeePerGas = fee
	txType := uint8(2)
	r.TransactionType = &txType

	return r
}

// SetTransactionType sets the transaction type explicitly.
func (r *VNetSimulationRequest) SetTransactionType(txType uint8) *VNetSimulationRequest {
	r.TransactionType = &txType
	return r
}

// SetNonce sets the nonce.
func (r *VNetSimulationRequest) SetNonce(nonce uint64) *VNetSimulationRequest {
	r.Nonce = &nonce
	return r
}

// Validate checks the request before it is sent.
func (r *VNetSimulationRequest) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := ValidateAddress(r.From); err != nil {
		return err
	}

	return ValidateAddress(r.To)
}
