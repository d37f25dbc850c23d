package types

import "github.com/go-playground/validator/v10"

// DeliveryChannelType identifies the destination kind of a delivery
// channel.
//
// The set is not exhaustive; unknown values decode without error.
type DeliveryChannelType string

const (
	DeliveryChannelEmail     DeliveryChannelType = "email"
	DeliveryChannelSlack     DeliveryChannelType = "slack"
	DeliveryChannelTelegram  DeliveryChannelType = "telegram"
	DeliveryChannelDiscord   DeliveryChannelType = "discord"
	DeliveryChannelWebhook   DeliveryChannelType = "webhook"
	DeliveryChannelPagerDuty DeliveryChannelType = "pagerduty"
)

// CreateWebhookChannelRequest creates a webhook delivery channel.
type CreateWebhookChannelRequest struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// NewCreateWebhookChannelRequest creates a webhook channel request.
func NewCreateWebhookChannelRequest(label, url string) *CreateWebhookChannelRequest {
	return &CreateWebhookChannelRequest{Label: label, URL: url}
}

// Validate checks the request before it is sent.
func (r *CreateWebhookChannelRequest) Validate() error {
	var validate = validator.New()
	return validate.Struct(r)
}

// DeliveryChannel is a configured notification destination as returned by
// the service.
type DeliveryChannel struct {
	ID        string              `json:"id"`
	Type      DeliveryChannelType `json:"type,omitempty"`
	Label     string              `json:"label,omitempty"`
	Enabled   bool                `json:"enabled"`
	Reference string              `json:"reference,omitempty"`
	CreatedAt string              `json:"created_at,omitempty"`
}

// DeliveryChannelList is the response of the delivery channel listing.
type DeliveryChannelList struct {
	DeliveryChannels []DeliveryChannel `json:"delivery_channels"`
}
