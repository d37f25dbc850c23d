package tenderly

import (
	"context"
	"net/http"

	"github.com/simforge/tenderly-go/types"
)

// DeliveryChannelsClient exposes the alert delivery channel API.
type DeliveryChannelsClient struct {
	client *Client
}

// DeliveryChannels returns the delivery channel sub-client.
func (c *Client) DeliveryChannels() *DeliveryChannelsClient {
	return &DeliveryChannelsClient{client: c}
}

// List returns the project's delivery channels.
func (d *DeliveryChannelsClient) List(ctx context.Context) ([]types.DeliveryChannel, error) {
	var out types.DeliveryChannelList
	err := d.client.do(ctx, http.MethodGet, d.client.projectPath("/delivery-channels"), nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return out.DeliveryChannels, nil
}

// Get returns a delivery channel by id.
func (d *DeliveryChannelsClient) Get(ctx context.Context, id string) (*types.DeliveryChannel, error) {
	var out types.DeliveryChannel
	path := d.client.projectPath("/delivery-channels/" + encodePathSegment(id))
	if err := d.client.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateWebhook registers a webhook destination for alert notifications.
func (d *DeliveryChannelsClient) CreateWebhook(ctx context.Context, req *types.CreateWebhookChannelRequest) (*types.DeliveryChannel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out types.DeliveryChannel
	path := d.client.projectPath("/delivery-channels/webhook")
	if err := d.client.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a delivery channel.
func (d *DeliveryChannelsClient) Delete(ctx context.Context, id string) error {
	path := d.client.projectPath("/delivery-channels/" + encodePathSegment(id))
	return d.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
