package types

import "github.com/go-playground/validator/v10"

// AlertType identifies the condition an alert expression matches on.
//
// The set is not exhaustive; the service adds new types over time and
// unknown values decode without error.
type AlertType string

const (
	AlertTypeSuccessfulTx  AlertType = "successful_tx"
	AlertTypeFailedTx      AlertType = "failed_tx"
	AlertTypeFunctionCall  AlertType = "function_call"
	AlertTypeEventEmitted  AlertType = "event_emitted"
	AlertTypeERC20Transfer AlertType = "erc20_transfer"
	AlertTypeBalanceChange AlertType = "balance_change"
	AlertTypeStateChange   AlertType = "state_change"
)

// AlertExpression is a single condition within an alert. The expression
// payload depends on the type and is passed through untyped.
type AlertExpression struct {
	Type       AlertType      `json:"type" validate:"required"`
	Expression map[string]any `json:"expression,omitempty"`
}

// CreateAlertRequest creates a new alert.
type CreateAlertRequest struct {
	Name               string            `json:"name" validate:"required"`
	Description        string            `json:"description,omitempty"`
	Enabled            bool              `json:"enabled"`
	Expressions        []AlertExpression `json:"expressions" validate:"required,min=1,dive"`
	DeliveryChannelIDs []string          `json:"delivery_channel_ids,omitempty"`
}

// NewCreateAlertRequest creates an alert request; alerts start enabled.
func NewCreateAlertRequest(name string) *CreateAlertRequest {
	return &CreateAlertRequest{Name: name, Enabled: true}
}

// SetDescription sets the alert description.
func (r *CreateAlertRequest) SetDescription(description string) *CreateAlertRequest {
	r.Description = description
	return r
}

// SetEnabled toggles the initial enabled state.
func (r *CreateAlertRequest) SetEnabled(enabled bool) *CreateAlertRequest {
	r.Enabled = enabled
	return r
}

// AddExpression appends a condition to the alert.
func (r *CreateAlertRequest) AddExpression(t AlertType, expression map[string]any) *CreateAlertRequest {
	r.Expressions = append(r.Expressions, AlertExpression{Type: t, Expression: expression})
	return r
}

// AddDeliveryChannel routes alert notifications to a delivery channel.
func (r *CreateAlertRequest) AddDeliveryChannel(id string) *CreateAlertRequest {
	r.DeliveryChannelIDs = append(r.DeliveryChannelIDs, id)
	return r
}

// Validate checks the request before it is sent.
func (r *CreateAlertRequest) Validate() error {
	var validate = validator.New()
	return validate.Struct(r)
}

// UpdateAlertRequest updates mutable alert fields; only set fields are
// sent.
type UpdateAlertRequest struct {
	Name               *string           `json:"name,omitempty"`
	Description        *string           `json:"description,omitempty"`
	Expressions        []AlertExpression `json:"expressions,omitempty"`
	DeliveryChannelIDs []string          `json:"delivery_channel_ids,omitempty"`
}

// NewUpdateAlertRequest creates an empty update request.
func NewUpdateAlertRequest() *UpdateAlertRequest {
	return &UpdateAlertRequest{}
}

// SetName updates the alert name.
func (r *UpdateAlertRequest) SetName(name string) *UpdateAlertRequest {
	r.Name = &name
	return r
}

// SetDescription updates the description.
func (r *UpdateAlertRequest) SetDescription(description string) *UpdateAlertRequest {
	r.Description = &description
	return r
}

// SetExpressions replaces the alert conditions.
func (r *UpdateAlertRequest) SetExpressions(exprs []AlertExpression) *UpdateAlertRequest {
	r.Expressions = exprs
	return r
}

// Alert is an alert as returned by the service.
type Alert struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name,omitempty"`
	Description        string            `json:"description,omitempty"`
	Enabled            bool              `json:"enabled"`
	Expressions        []AlertExpression `json:"expressions,omitempty"`
	DeliveryChannelIDs []string          `json:"delivery_channel_ids,omitempty"`
	ProjectID          string            `json:"project_id,omitempty"`
	CreatedAt          string            `json:"created_at,omitempty"`
}

// AlertList is the response of the alert listing.
type AlertList struct {
	Alerts []Alert `json:"alerts"`
}
