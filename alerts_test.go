package tenderly_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simforge/tenderly-go/internal/testutils/apitest"
	"github.com/simforge/tenderly-go/types"
)

func TestAlertCreate(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"id":"alert-1","name":"whale watch","enabled":true}`)
	client := newTestClient(t, srv)

	req := types.NewCreateAlertRequest("whale watch").
		AddExpression(types.AlertTypeSuccessfulTx, map[string]any{
			"network_id": "1",
			"address":    addrUSDC,
		}).
		AddDeliveryChannel("channel-1")

	alert, err := client.Alerts().Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "alert-1", alert.ID)
	assert.True(t, alert.Enabled)

	recorded, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/account/acme/project/demo/alerts", recorded.Path)
	assert.Contains(t, string(recorded.Body), `"enabled":true`, "alerts start enabled")
	assert.Contains(t, string(recorded.Body), `"delivery_channel_ids":["channel-1"]`)
}

func TestAlertCreateRequiresExpression(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv)

	_, err := client.Alerts().Create(context.Background(), types.NewCreateAlertRequest("no conditions"))
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestAlertList(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"alerts":[{"id":"a1","enabled":true},{"id":"a2","enabled":false}]}`)
	client := newTestClient(t, srv)

	alerts, err := client.Alerts().List(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "a1", alerts[0].ID)
	assert.False(t, alerts[1].Enabled)
}

func TestAlertEnableDisable(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv)
	ctx := context.Background()

	require.NoError(t, client.Alerts().Enable(ctx, "alert-1"))
	recorded, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/account/acme/project/demo/alerts/alert-1/enable", recorded.Path)

	require.NoError(t, client.Alerts().Disable(ctx, "alert-1"))
	recorded, _ = srv.LastRequest()
	assert.Equal(t, "/account/acme/project/demo/alerts/alert-1/disable", recorded.Path)
}

func TestAlertUpdateSendsOnlySetFields(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"id":"alert-1","name":"renamed","enabled":true}`)
	client := newTestClient(t, srv)

	req := types.NewUpdateAlertRequest().SetName("renamed")
	alert, err := client.Alerts().Update(context.Background(), "alert-1", req)
	require.NoError(t, err)
	assert.Equal(t, "renamed", alert.Name)

	recorded, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPatch, recorded.Method)
	assert.JSONEq(t, `{"name":"renamed"}`, string(recorded.Body))
}

func TestAlertDelete(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusNoContent, ``)
	client := newTestClient(t, srv)

	require.NoError(t, client.Alerts().Delete(context.Background(), "alert-1"))

	recorded, _ := srv.LastRequest()
	assert.Equal(t, http.MethodDelete, recorded.Method)
	assert.Equal(t, "/account/acme/project/demo/alerts/alert-1", recorded.Path)
}
