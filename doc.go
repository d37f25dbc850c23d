// Package tenderly is a typed Go client for the Tenderly blockchain
// simulation platform: transaction simulation, virtual testnets (including
// their admin RPC for state manipulation), contracts, alerts, web3
// actions, wallets, networks and alert delivery channels.
//
// Construct a Client from explicit configuration or from the TENDERLY_*
// environment variables, then reach each API family through its accessor:
//
//	client, err := tenderly.New(tenderly.NewConfig(key, "me", "project"))
//	if err != nil {
//		return err
//	}
//
//	result, err := client.Simulator().Simulate(ctx,
//		types.NewSimulationRequest("1", from, to, calldata))
//
// Every operation maps to exactly one HTTP round trip; the library keeps
// no state between calls, performs no retries, and is safe for concurrent
// use from multiple goroutines.
package tenderly
