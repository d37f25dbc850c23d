package types_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simforge/tenderly-go/types"
)

func TestCreateVNetRequestJSON(t *testing.T) {
	t.Parallel()

	req := types.NewCreateVNetRequest("mainnet-fork", "Mainnet Fork", 1).
		SetBlockNumber(18_000_000).
		SetChainID(73571).
		SetBaseFeePerGas(1_000_000_000).
		SetSyncState(true).
		SetExplorerPage(true, "src")

	require.NoError(t, req.Validate())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"slug": "mainnet-fork",
		"display_name": "Mainnet Fork",
		"fork_config": {"network_id": 1, "block_number": 18000000},
		"virtual_network_config": {"chain_id": 73571, "base_fee_per_gas": 1000000000},
		"sync_state_config": {"enabled": true},
		"explorer_page_config": {"enabled": true, "verification_visibility": "src"}
	}`, string(data))
}

func TestCreateVNetRequestDefaultsChainIDToNetwork(t *testing.T) {
	t.Parallel()

	req := types.NewCreateVNetRequest("base-fork", "Base Fork", 8453)
	assert.Equal(t, uint64(8453), req.VirtualNetworkConfig.ChainID)
	assert.Nil(t, req.ForkConfig.BlockNumber, "latest block unless pinned")
}

func TestForkVNetRequestJSON(t *testing.T) {
	t.Parallel()

	req := types.NewForkVNetRequest("vnet-src", "copy", "Copy").SetBlockNumber(7)
	require.NoError(t, req.Validate())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"srcTestnetId": "vnet-src",
		"slug": "copy",
		"display_name": "Copy",
		"block_number": 7
	}`, string(data))

	require.Error(t, types.NewForkVNetRequest("", "copy", "Copy").Validate())
}

func TestUpdateVNetRequestSendsOnlySetFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(types.NewUpdateVNetRequest().SetDisplayName("renamed"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"display_name":"renamed"}`, string(data))
}

func TestVNetDecodesNestedResponse(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": "vnet-1",
		"slug": "mainnet-fork",
		"display_name": "Mainnet Fork",
		"fork_config": {"network_id": 1, "block_number": "0x112a880"},
		"virtual_network_config": {"chain_config": {"chain_id": 73571}},
		"rpcs": [
			{"name": "Admin RPC", "url": "https://example.test/admin"},
			{"name": "Public RPC", "url": "https://example.test/public"}
		],
		"status": "stopped"
	}`

	var vnet types.VNet
	require.NoError(t, json.Unmarshal([]byte(raw), &vnet))

	want := types.VNet{
		ID:          "vnet-1",
		Slug:        "mainnet-fork",
		DisplayName: "Mainnet Fork",
		ForkConfig:  types.ForkConfigResponse{NetworkID: 1, BlockNumber: "0x112a880"},
		VirtualNetworkConfig: types.VirtualNetworkConfigResponse{
			ChainConfig: &types.ChainConfig{ChainID: 73571},
		},
		RPCs: []types.RPCEndpoint{
			{Name: "Admin RPC", URL: "https://example.test/admin"},
			{Name: "Public RPC", URL: "https://example.test/public"},
		},
		Status: types.VNetStatusStopped,
	}
	if diff := cmp.Diff(want, vnet); diff != "" {
		t.Errorf("unexpected vnet (-want +got):\n%s", diff)
	}

	assert.Equal(t, uint64(73571), vnet.VirtualNetworkConfig.ChainID())
	assert.Equal(t, uint64(0), types.VirtualNetworkConfigResponse{}.ChainID())
}

func TestVNetRPCEndpointLookup(t *testing.T) {
	t.Parallel()

	vnet := types.VNet{RPCs: []types.RPCEndpoint{
		{Name: "Public RPC", URL: "https://example.test/public"},
		{Name: "admin rpc", URL: "https://example.test/admin"},
	}}

	adminURL, ok := vnet.AdminRPCURL()
	require.True(t, ok)
	assert.Equal(t, "https://example.test/admin", adminURL)

	publicURL, ok := vnet.PublicRPCURL()
	require.True(t, ok)
	assert.Equal(t, "https://example.test/public", publicURL)

	_, ok = (&types.VNet{}).AdminRPCURL()
	assert.False(t, ok)
}

func TestVNetIDsJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(types.VNetIDs{IDs: []string{"a", "b"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":["a","b"]}`, string(data))
}

func TestVNetSimulationRequestFeeImpliesType(t *testing.T) {
	t.Parallel()

	req := types.NewVNetSimulationRequest(from, to, "0x").SetMaxFeePerGas("0x3b9aca00")
	require.NotNil(t, req.TransactionType)
	assert.Equal(t, uint8(2), *req.TransactionType)

	req = types.NewVNetSimulationRequest(from, to, "0x").SetMaxPriorityFeePerGas("0x1")
	require.NotNil(t, req.TransactionType)
	assert.Equal(t, uint8(2), *req.TransactionType)

	req = types.NewVNetSimulationRequest(from, to, "0x").SetGas(100_000)
	assert.Nil(t, req.TransactionType, "gas alone leaves the type unset")
}
