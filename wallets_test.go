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

func TestWalletAdd(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"id":"w1","address":"`+addrZero+`"}`)
	client := newTestClient(t, srv)

	req := types.NewAddWalletRequest(addrZero, "1", "137").SetDisplayName("treasury")
	wallet, err := client.Wallets().Add(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "w1", wallet.ID)

	recorded, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/account/acme/project/demo/wallet", recorded.Path)
	assert.JSONEq(t,
		`{"address":"`+addrZero+`","display_name":"treasury","network_ids":["1","137"]}`,
		string(recorded.Body))
}

func TestWalletAddRequiresNetwork(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv)

	_, err := client.Wallets().Add(context.Background(), types.NewAddWalletRequest(addrZero))
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestWalletList(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"wallets":[{"id":"w1"}]}`)
	client := newTestClient(t, srv)

	wallets, err := client.Wallets().List(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, 1)

	recorded, _ := srv.LastRequest()
	assert.Equal(t, "/account/acme/project/demo/wallets", recorded.Path)
}

func TestWalletGetRenameRemove(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"id":"w1","address":"`+addrZero+`"}`)
	client := newTestClient(t, srv)
	ctx := context.Background()

	wallet, err := client.Wallets().Get(ctx, "1", addrZero)
	require.NoError(t, err)
	assert.Equal(t, "w1", wallet.ID)
	recorded, _ := srv.LastRequest()
	assert.Equal(t, "/account/acme/project/demo/wallet/1/"+addrZero, recorded.Path)

	require.NoError(t, client.Wallets().Rename(ctx, "1", addrZero, "ops"))
	recorded, _ = srv.LastRequest()
	assert.Equal(t, "/account/acme/project/demo/wallet/1/"+addrZero+"/rename", recorded.Path)

	require.NoError(t, client.Wallets().Remove(ctx, "1", addrZero))
	recorded, _ = srv.LastRequest()
	assert.Equal(t, http.MethodDelete, recorded.Method)
}
