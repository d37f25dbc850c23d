package tenderly_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	tenderly "github.com/simforge/tenderly-go"
	"github.com/simforge/tenderly-go/internal/testutils/apitest"
	"github.com/simforge/tenderly-go/types"
)

func newTestClient(t *testing.T, srv *apitest.Server) *tenderly.Client {
	t.Helper()

	client, err := tenderly.New(
		tenderly.NewConfig("test-key", "acme", "demo"),
		tenderly.WithBaseURL(srv.URL),
		tenderly.WithLogger(zap.NewNop().Sugar()),
	)
	require.NoError(t, err)

	return client
}

func TestNewIsLocal(t *testing.T) {
	t.Parallel()

	// The base URL points nowhere routable; construction must still
	// succeed because no network call happens until an operation runs.
	client, err := tenderly.New(
		tenderly.NewConfig("test-key", "acme", "demo"),
		tenderly.WithBaseURL("http://127.0.0.1:1"),
		tenderly.WithLogger(zap.NewNop().Sugar()),
	)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  tenderly.Config
	}{
		{name: "missing access key", cfg: tenderly.NewConfig("", "acme", "demo")},
		{name: "missing account slug", cfg: tenderly.NewConfig("key", "", "demo")},
		{name: "missing project slug", cfg: tenderly.NewConfig("key", "acme", "")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tenderly.New(tc.cfg)
			require.Error(t, err)
		})
	}
}

func TestAccessKeyHeader(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"alerts":[]}`)
	client := newTestClient(t, srv)

	_, err := client.Alerts().List(context.Background())
	require.NoError(t, err)

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "test-key", req.Header.Get("X-Access-Key"))
	assert.Equal(t, "/account/acme/project/demo/alerts", req.Path)
}

func TestAPIErrorDecoded(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusBadRequest,
		`{"error":{"id":"86e07c87","slug":"invalid_request","message":"network_id is required"}}`)
	client := newTestClient(t, srv)

	_, err := client.Alerts().Get(context.Background(), "a1")
	require.Error(t, err)

	var apiErr *tenderly.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid_request", apiErr.Slug)
	assert.Equal(t, "network_id is required", apiErr.Message)
}

func TestAPIErrorUndecodableBody(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusBadGateway, "<html>upstream down</html>")
	client := newTestClient(t, srv)

	_, err := client.Alerts().Get(context.Background(), "a1")
	require.Error(t, err)

	var apiErr *tenderly.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "upstream down")
}

func TestMalformedSuccessBody(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{"alerts": "not-an-array"}`)
	client := newTestClient(t, srv)

	_, err := client.Alerts().List(context.Background())
	require.Error(t, err)

	var decErr *tenderly.DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestTransportErrorWrapped(t *testing.T) {
	t.Parallel()

	client, err := tenderly.New(
		tenderly.NewConfig("test-key", "acme", "demo"),
		tenderly.WithBaseURL("http://127.0.0.1:1"),
		tenderly.WithLogger(zap.NewNop().Sugar()),
	)
	require.NoError(t, err)

	_, err = client.Alerts().List(context.Background())
	require.Error(t, err)

	// Must not be any of the typed API failures; it is a transport error.
	var apiErr *tenderly.APIError
	assert.False(t, errors.As(err, &apiErr))
	var decErr *tenderly.DecodeError
	assert.False(t, errors.As(err, &decErr))
}

func TestPathSegmentsEscaped(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv)

	_, err := client.Alerts().Get(context.Background(), "weird/id")
	require.NoError(t, err)

	requests := srv.Requests()
	require.Len(t, requests, 1)
	// The raw id must not introduce an extra path segment.
	assert.Equal(t, "/account/acme/project/demo/alerts/weird%2Fid", requests[0].Path)
}

func TestSubClientsShareClient(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t, http.StatusOK, `[]`)
	client := newTestClient(t, srv)

	// Accessor construction must not trigger requests.
	client.Simulator()
	client.VNets()
	client.Contracts()
	client.Alerts()
	client.Actions()
	client.Wallets()
	client.Networks()
	client.DeliveryChannels()

	assert.Empty(t, srv.Requests())

	_, err := client.Networks().ListProject(context.Background())
	require.NoError(t, err)
	assert.Len(t, srv.Requests(), 1)
}

func TestConfigDoesNotLeakAccessKey(t *testing.T) {
	t.Parallel()

	cfg := tenderly.NewConfig("super-secret", "acme", "demo")

	assert.NotContains(t, cfg.AccessKey.String(), "super-secret")
	assert.Equal(t, "super-secret", cfg.AccessKey.Reveal())

	var _ types.SecretString = cfg.AccessKey
}
