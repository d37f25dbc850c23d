package tenderly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/simforge/tenderly-go/types"
)

// Admin RPC method names. Each operation is one fixed method with a
// positional parameter list; there is no batching.
const (
	rpcIncreaseTime          = "evm_increaseTime"
	rpcSetNextBlockTimestamp = "evm_setNextBlockTimestamp"
	rpcIncreaseBlocks        = "evm_increaseBlocks"
	rpcSetBalance            = "tenderly_setBalance"
	rpcAddBalance            = "tenderly_addBalance"
	rpcSetERC20Balance       = "tenderly_setErc20Balance"
	rpcSetStorageAt          = "tenderly_setStorageAt"
	rpcSetCode               = "tenderly_setCode"
	rpcSnapshot              = "evm_snapshot"
	rpcRevert                = "evm_revert"
)

// errNilAmount rejects a nil *big.Int before it reaches hex encoding.
var errNilAmount = errors.New("amount must not be nil")

// AdminRPC issues JSON-RPC 2.0 requests to the administrative endpoint of
// a single virtual testnet, for direct state manipulation: time travel,
// balance and storage mutation, and snapshot/revert.
//
// It shares the parent client's HTTP transport and is safe for concurrent
// use.
type AdminRPC struct {
	client   *Client
	endpoint string
	nextID   atomic.Uint64
}

func newAdminRPC(client *Client, endpoint string) *AdminRPC {
	return &AdminRPC{client: client, endpoint: endpoint}
}

// Endpoint returns the admin RPC URL this sub-client targets.
func (a *AdminRPC) Endpoint() string {
	return a.endpoint
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      uint64          `json:"id"`
}

// call performs one JSON-RPC round trip and decodes the result member into
// out. A populated error member is returned as *RPCError.
func (a *AdminRPC) call(ctx context.Context, method string, params []any, out any) error {
	if params == nil {
		params = []any{}
	}
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      a.nextID.Add(1),
	})
	if err != nil {
		return fmt.Errorf("marshaling rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	a.client.logger.Debugf("tenderly: admin rpc %s", method)

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending rpc request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading rpc response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, data)
	}

	var envelope rpcResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return NewDecodeError(err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return NewDecodeError(err)
	}

	return nil
}

// IncreaseTime advances chain time by the given duration, truncated to
// whole seconds.
func (a *AdminRPC) IncreaseTime(ctx context.Context, d types.Duration) error {
	return a.call(ctx, rpcIncreaseTime, []any{hexutil.EncodeUint64(d.WholeSeconds())}, nil)
}

// SetNextBlockTimestamp fixes the timestamp of the next mined block.
func (a *AdminRPC) SetNextBlockTimestamp(ctx context.Context, ts time.Time) error {
	return a.call(ctx, rpcSetNextBlockTimestamp, []any{hexutil.EncodeUint64(uint64(ts.Unix()))}, nil)
}

// MineBlocks mines n additional empty blocks.
func (a *AdminRPC) MineBlocks(ctx context.Context, n uint64) error {
	return a.call(ctx, rpcIncreaseBlocks, []any{hexutil.EncodeUint64(n)}, nil)
}

// SetBalance sets the native-currency balance of every given address to
// wei. Addresses and the amount are checked locally before any network
// call.
func (a *AdminRPC) SetBalance(ctx context.Context, addresses []string, wei *big.Int) error {
	if err := types.ValidateAddresses(addresses); err != nil {
		return err
	}
	if wei == nil {
		return errNilAmount
	}

	return a.call(ctx, rpcSetBalance, []any{addresses, hexutil.EncodeBig(wei)}, nil)
}

// AddBalance adds wei to the native-currency balance of every given
// address.
func (a *AdminRPC) AddBalance(ctx context.Context, addresses []string, wei *big.Int) error {
	if err := types.ValidateAddresses(addresses); err != nil {
		return err
	}
	if wei == nil {
		return errNilAmount
	}

	return a.call(ctx, rpcAddBalance, []any{addresses, hexutil.EncodeBig(wei)}, nil)
}

// SetERC20Balance sets a wallet's balance of the given token contract, in
// the token's base units. See types.TokenUnits for converting
// human-readable amounts.
func (a *AdminRPC) SetERC20Balance(ctx context.Context, token, wallet string, amount *big.Int) error {
	if err := types.ValidateAddress(token); err != nil {
		return err
	}
	if err := types.ValidateAddress(wallet); err != nil {
		return err
	}
	if amount == nil {
		return errNilAmount
	}

	return a.call(ctx, rpcSetERC20Balance, []any{token, wallet, hexutil.EncodeBig(amount)}, nil)
}

// SetStorageAt writes a raw 32-byte value into a storage slot of the given
// contract.
func (a *AdminRPC) SetStorageAt(ctx context.Context, address string, slot, value common.Hash) error {
	if err := types.ValidateAddress(address); err != nil {
		return err
	}

	return a.call(ctx, rpcSetStorageAt, []any{address, slot.Hex(), value.Hex()}, nil)
}

// SetCode replaces the bytecode deployed at an address.
func (a *AdminRPC) SetCode(ctx context.Context, address string, code []byte) error {
	if err := types.ValidateAddress(address); err != nil {
		return err
	}

	return a.call(ctx, rpcSetCode, []any{address, hexutil.Encode(code)}, nil)
}

// Snapshot captures the current testnet state and returns an opaque
// identifier for a later Revert. The service is the sole bookkeeper of
// snapshot validity.
func (a *AdminRPC) Snapshot(ctx context.Context) (types.SnapshotID, error) {
	var id string
	if err := a.call(ctx, rpcSnapshot, nil, &id); err != nil {
		return "", err
	}

	return types.SnapshotID(id), nil
}

// Revert restores the testnet to a previously taken snapshot. Reverting to
// an unknown or already consumed snapshot yields an *RPCError from the
// service; no local validation is attempted.
func (a *AdminRPC) Revert(ctx context.Context, id types.SnapshotID) (bool, error) {
	var ok bool
	if err := a.call(ctx, rpcRevert, []any{string(id)}, &ok); err != nil {
		return false, err
	}

	return ok, nil
}
