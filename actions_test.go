package tenderly_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simforge/tenderly-go/internal/testutils/apitest"
	"github.com/simforge/tenderly-go/types"
)

func TestActionCreate(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"id":"action-1","name":"rebalance","enabled":true}`)
	client := newTestClient(t, srv)

	trigger := types.ActionTrigger{
		Type:     types.ActionTriggerPeriodic,
		Periodic: &types.PeriodicTriggerConfig{Cron: "0 * * * *"},
	}
	req := types.NewCreateActionRequest("rebalance", trigger).
		SetRuntime("v2").
		SetFunction("index:handler")

	action, err := client.Actions().Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "action-1", action.ID)

	recorded, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/account/acme/project/demo/actions", recorded.Path)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorded.Body, &payload))
	triggerPayload, ok := payload["trigger"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "periodic", triggerPayload["type"])
}

func TestActionCreateRequiresTriggerType(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv)

	_, err := client.Actions().Create(context.Background(),
		types.NewCreateActionRequest("untriggered", types.ActionTrigger{}))
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestActionList(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"actions":[{"id":"a1","enabled":true}]}`)
	client := newTestClient(t, srv)

	actions, err := client.Actions().List(context.Background())
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "a1", actions[0].ID)
}

func TestActionEnableDisable(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv)
	ctx := context.Background()

	require.NoError(t, client.Actions().Enable(ctx, "action-1"))
	recorded, _ := srv.LastRequest()
	assert.Equal(t, "/account/acme/project/demo/actions/action-1/enable", recorded.Path)

	require.NoError(t, client.Actions().Disable(ctx, "action-1"))
	recorded, _ = srv.LastRequest()
	assert.Equal(t, "/account/acme/project/demo/actions/action-1/disable", recorded.Path)
}

func TestActionUpdate(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"id":"action-1","name":"renamed","enabled":true}`)
	client := newTestClient(t, srv)

	req := types.NewUpdateActionRequest().SetName("renamed")
	action, err := client.Actions().Update(context.Background(), "action-1", req)
	require.NoError(t, err)
	assert.Equal(t, "renamed", action.Name)

	recorded, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPatch, recorded.Method)
	assert.JSONEq(t, `{"name":"renamed"}`, string(recorded.Body))
}
