package types

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
)

// SimulationType selects how much of the execution the service decodes.
//
// The set of values is not exhaustive; the service may introduce new types
// without breaking decoding.
type SimulationType string

const (
	SimulationTypeFull  SimulationType = "full"
	SimulationTypeQuick SimulationType = "quick"
	SimulationTypeABI   SimulationType = "abi"
)

// StateOverride describes transient state applied to a single address for
// the duration of a simulation.
type StateOverride struct {
	Balance string            `json:"balance,omitempty"`
	Nonce   *uint64           `json:"nonce,omitempty"`
	Code    string            `json:"code,omitempty"`
	Storage map[string]string `json:"storage,omitempty"`
}

// SimulationRequest describes a dry-run execution of a single transaction
// against a given chain state.
type SimulationRequest struct {
	NetworkID        string                   `json:"network_id" validate:"required"`
	From             string                   `json:"from" validate:"required"`
	To               string                   `json:"to" validate:"required"`
	Input            string                   `json:"input"`
	Value            string                   `json:"value,omitempty"`
	Gas              *uint64                  `json:"gas,omitempty"`
	GasPrice         string                   `json:"gas_price,omitempty"`
	BlockNumber      *uint64                  `json:"block_number,omitempty"`
	TransactionIndex *uint64                  `json:"transaction_index,omitempty"`
	SimulationType   SimulationType           `json:"simulation_type,omitempty"`
	Save             bool                     `json:"save"`
	SaveIfFails      bool                     `json:"save_if_fails"`
	StateObjects     map[string]StateOverride `json:"state_objects,omitempty"`
}

// NewSimulationRequest creates a simulation request with the minimal
// required fields.
func NewSimulationRequest(networkID, from, to, input string) *SimulationRequest {
	return &SimulationRequest{
		NetworkID: networkID,
		From:      from,
		To:        to,
		Input:     input,
	}
}

// SetValueWei sets the transaction value from an amount in wei, encoded as
// a hex quantity in the payload. A nil amount leaves the value unset.
func (r *SimulationRequest) SetValueWei(wei *big.Int) *SimulationRequest {
	if wei == nil {
		return r
	}
	r.Value = hexutil.EncodeBig(wei)

	return r
}

// SetGas sets the gas limit.
func (r *SimulationRequest) SetGas(gas uint64) *SimulationRequest {
	r.Gas = &gas
	return r
}

// SetGasPrice sets the gas price in wei (decimal string).
func (r *SimulationRequest) SetGasPrice(price string) *SimulationRequest {
	r.GasPrice = price
	return r
}

// SetBlockNumber pins the simulation to a historical block.
func (r *SimulationRequest) SetBlockNumber(block uint64) *SimulationRequest {
	r.BlockNumber = &block
	return r
}

// SetTransactionIndex positions the simulation within the pinned block.
func (r *SimulationRequest) SetTransactionIndex(index uint64) *SimulationRequest {
	r.TransactionIndex = &index
	return r
}

// SetSimulationType selects the simulation type.
func (r *SimulationRequest) SetSimulationType(st SimulationType) *SimulationRequest {
	r.SimulationType = st
	return r
}

// SetSave persists the simulation in the dashboard.
func (r *SimulationRequest) SetSave(save bool) *SimulationRequest {
	r.Save = save
	return r
}

// SetSaveIfFails persists the simulation only when it reverts.
func (r *SimulationRequest) SetSaveIfFails(save bool) *SimulationRequest {
	r.SaveIfFails = save
	return r
}

// OverrideBalance overrides the native balance of an address for the
// duration of the simulation.
func (r *SimulationRequest) OverrideBalance(address, balance string) *SimulationRequest {
	o := r.stateOverride(address)
	o.Balance = balance
	r.StateObjects[address] = o

	return r
}

// OverrideStorage overrides a single storage slot of an address.
func (r *SimulationRequest) OverrideStorage(address, slot, value string) *SimulationRequest {
	o := r.stateOverride(address)
	if o.Storage == nil {
		o.Storage = make(map[string]string)
	}
	o.Storage[slot] = value
	r.StateObjects[address] = o

	return r
}

// OverrideCode overrides the bytecode deployed at an address.
func (r *SimulationRequest) OverrideCode(address, code string) *SimulationRequest {
	o := r.stateOverride(address)
	o.Code = code
	r.StateObjects[address] = o

	return r
}

func (r *SimulationRequest) stateOverride(address string) StateOverride {
	if r.StateObjects == nil {
		r.StateObjects = make(map[string]StateOverride)
	}

	return r.StateObjects[address]
}

// Validate checks the request before it is sent. Address fields are
// format-checked locally; everything else is left to the service.
func (r *SimulationRequest) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := ValidateAddress(r.From); err != nil {
		return err
	}

	return ValidateAddress(r.To)
}

// BundleRequest simulates a sequence of transactions where each one runs on
// top of the state changes produced by the previous ones.
type BundleRequest struct {
	Simulations []SimulationRequest `json:"simulations" validate:"required,min=1,dive"`
}

// NewBundleRequest creates a bundle from the given simulation requests.
func NewBundleRequest(sims ...SimulationRequest) *BundleRequest {
	return &BundleRequest{Simulations: sims}
}

// Add appends a simulation to the bundle.
func (r *BundleRequest) Add(sim SimulationRequest) *BundleRequest {
	r.Simulations = append(r.Simulations, sim)
	return r
}

// Validate checks the bundle and each contained request.
func (r *BundleRequest) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	for i := range r.Simulations {
		if err := r.Simulations[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// SimulatedTransaction is the executed transaction inside a simulation
// result. Deep call traces and decoded logs are kept raw; their shape
// varies with the simulation type.
type SimulatedTransaction struct {
	Hash         string          `json:"hash,omitempty"`
	From         string          `json:"from,omitempty"`
	To           string          `json:"to,omitempty"`
	Input        string          `json:"input,omitempty"`
	Value        string          `json:"value,omitempty"`
	Gas          uint64          `json:"gas,omitempty"`
	GasUsed      uint64          `json:"gas_used,omitempty"`
	GasPrice     string          `json:"gas_price,omitempty"`
	BlockNumber  uint64          `json:"block_number,omitempty"`
	Status       bool            `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Info         json.RawMessage `json:"transaction_info,omitempty"`
}

// Simulation is the stored metadata of a simulation run.
type Simulation struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
	NetworkID   string `json:"network_id,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Input       string `json:"input,omitempty"`
	BlockNumber uint64 `json:"block_number,omitempty"`
	GasUsed     uint64 `json:"gas_used,omitempty"`
	Status      bool   `json:"status"`
	Shared      bool   `json:"shared,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// SimulationResult pairs the executed transaction with its stored
// simulation metadata, as returned by the simulate endpoints.
type SimulationResult struct {
	Transaction *SimulatedTransaction `json:"transaction,omitempty"`
	Simulation  *Simulation           `json:"simulation,omitempty"`
}

// BundleResult is the response of the simulate-bundle endpoint.
type BundleResult struct {
	SimulationResults []SimulationResult `json:"simulation_results"`
}

// SimulationList is the response of the saved-simulations listing.
type SimulationList struct {
	Simulations []Simulation `json:"simulations"`
}
