package types

import "github.com/go-playground/validator/v10"

// AddContractRequest registers a deployed contract with the project.
type AddContractRequest struct {
	NetworkID   string `json:"network_id" validate:"required"`
	Address     string `json:"address" validate:"required"`
	DisplayName string `json:"display_name,omitempty"`
}

// NewAddContractRequest creates an add-contract request.
func NewAddContractRequest(networkID, address string) *AddContractRequest {
	return &AddContractRequest{NetworkID: networkID, Address: address}
}

// SetDisplayName sets the dashboard display name.
func (r *AddContractRequest) SetDisplayName(name string) *AddContractRequest {
	r.DisplayName = name
	return r
}

// Validate checks the request before it is sent.
func (r *AddContractRequest) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}

	return ValidateAddress(r.Address)
}

// TagRequest attaches a tag to one or more project contracts.
type TagRequest struct {
	ContractIDs []string `json:"contract_ids" validate:"required,min=1"`
	Tag         string   `json:"tag" validate:"required"`
}

// NewTagRequest creates a tag request.
func NewTagRequest(tag string, contractIDs ...string) *TagRequest {
	return &TagRequest{Tag: tag, ContractIDs: contractIDs}
}

// Validate checks the request before it is sent.
func (r *TagRequest) Validate() error {
	var validate = validator.New()
	return validate.Struct(r)
}

// ContractInfo is the standalone contract metadata (name, compiler, source
// verification state).
type ContractInfo struct {
	Name            string `json:"contract_name,omitempty"`
	CompilerVersion string `json:"compiler_version,omitempty"`
	Verified        bool   `json:"verified_by,omitempty"`
}

// Contract is a project contract as returned by the service.
type Contract struct {
	ID          string        `json:"id"`
	NetworkID   string        `json:"network_id,omitempty"`
	Address     string        `json:"address,omitempty"`
	DisplayName string        `json:"display_name,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Contract    *ContractInfo `json:"contract,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
}

// RenameRequest is the body of the contract and wallet rename endpoints.
type RenameRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
}
