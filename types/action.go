package types

import "github.com/go-playground/validator/v10"

// ActionTriggerType identifies what fires a web3 action.
//
// The set is not exhaustive; unknown values decode without error.
type ActionTriggerType string

const (
	ActionTriggerBlock       ActionTriggerType = "block"
	ActionTriggerTransaction ActionTriggerType = "transaction"
	ActionTriggerPeriodic    ActionTriggerType = "periodic"
	ActionTriggerWebhook     ActionTriggerType = "webhook"
	ActionTriggerAlert       ActionTriggerType = "alert"
)

// BlockTriggerConfig fires the action every N blocks on a network.
type BlockTriggerConfig struct {
	NetworkID string `json:"network,omitempty"`
	Blocks    uint64 `json:"blocks,omitempty"`
}

// TransactionTriggerConfig fires the action on matching transactions.
type TransactionTriggerConfig struct {
	NetworkID string `json:"network,omitempty"`
	Status    string `json:"status,omitempty"`
}

// PeriodicTriggerConfig fires the action on a schedule; exactly one of
// Cron or Interval should be set.
type PeriodicTriggerConfig struct {
	Cron     string `json:"cron,omitempty"`
	Interval string `json:"interval,omitempty"`
}

// AlertTriggerConfig fires the action when an alert matches.
type AlertTriggerConfig struct {
	AlertID string `json:"alert_id,omitempty"`
}

// ActionTrigger selects the trigger type; exactly the matching config is
// populated.
type ActionTrigger struct {
	Type        ActionTriggerType         `json:"type" validate:"required"`
	Block       *BlockTriggerConfig       `json:"block,omitempty"`
	Transaction *TransactionTriggerConfig `json:"transaction,omitempty"`
	Periodic    *PeriodicTriggerConfig    `json:"periodic,omitempty"`
	Alert       *AlertTriggerConfig       `json:"alert,omitempty"`
}

// CreateActionRequest creates a new web3 action.
type CreateActionRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description,omitempty"`
	Trigger     ActionTrigger `json:"trigger"`
	Source      string        `json:"source,omitempty"`
	Runtime     string        `json:"runtime,omitempty"`
	Function    string        `json:"function,omitempty"`
}

// NewCreateActionRequest creates an action request with the given trigger.
func NewCreateActionRequest(name string, trigger ActionTrigger) *CreateActionRequest {
	return &CreateActionRequest{Name: name, Trigger: trigger}
}

// SetDescription sets the action description.
func (r *CreateActionRequest) SetDescription(description string) *CreateActionRequest {
	r.Description = description
	return r
}

// SetSource attaches the action source code.
func (r *CreateActionRequest) SetSource(source string) *CreateActionRequest {
	r.Source = source
	return r
}

// SetRuntime selects the action runtime.
func (r *CreateActionRequest) SetRuntime(runtime string) *CreateActionRequest {
	r.Runtime = runtime
	return r
}

// SetFunction selects the entry point within the source.
func (r *CreateActionRequest) SetFunction(fn string) *CreateActionRequest {
	r.Function = fn
	return r
}

// Validate checks the request before it is sent.
func (r *CreateActionRequest) Validate() error {
	var validate = validator.New()
	return validate.Struct(r)
}

// UpdateActionRequest updates mutable action fields; only set fields are
// sent.
type UpdateActionRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Trigger     *ActionTrigger `json:"trigger,omitempty"`
	Source      *string        `json:"source,omitempty"`
}

// NewUpdateActionRequest creates an empty update request.
func NewUpdateActionRequest() *UpdateActionRequest {
	return &UpdateActionRequest{}
}

// SetName updates the action name.
func (r *UpdateActionRequest) SetName(name string) *UpdateActionRequest {
	r.Name = &name
	return r
}

// SetDescription updates the description.
func (r *UpdateActionRequest) SetDescription(description string) *UpdateActionRequest {
	r.Description = &description
	return r
}

// SetTrigger replaces the trigger.
func (r *UpdateActionRequest) SetTrigger(trigger ActionTrigger) *UpdateActionRequest {
	r.Trigger = &trigger
	return r
}

// SetSource replaces the source code.
func (r *UpdateActionRequest) SetSource(source string) *UpdateActionRequest {
	r.Source = &source
	return r
}

// Action is a web3 action as returned by the service.
type Action struct {
	ID          string         `json:"id"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Trigger     *ActionTrigger `json:"trigger,omitempty"`
	Enabled     bool           `json:"enabled"`
	Status      string         `json:"status,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
}

// ActionList is the response of the action listing.
type ActionList struct {
	Actions []Action `json:"actions"`
}
