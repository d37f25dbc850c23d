package main

import (
	"context"
	"log"

	"github.com/simforge/tenderly-go"
	"github.com/simforge/tenderly-go/types"
)

func main() {
	// Reads TENDERLY_ACCESS_KEY, TENDERLY_ACCOUNT_SLUG and
	// TENDERLY_PROJECT_SLUG (a .env file works too).
	client, err := tenderly.NewFromEnv()
	if err != nil {
		log.Fatalf("failed to build client: %v", err)
	}

	ctx := context.Background()

	req := types.NewSimulationRequest(
		"1",
		"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		"0xa9059cbb000000000000000000000000f39fd6e51aad88f6f4ce6ab8827279cfffb92266000000000000000000000000000000000000000000000000000000003b9aca00",
	).
		SetSimulationType(types.SimulationTypeFull).
		SetSave(true)

	result, err := client.Simulator().Simulate(ctx, req)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	log.Printf("simulated tx used %d gas, success=%t", result.Transaction.GasUsed, result.Transaction.Status)

	url, err := client.Simulator().Share(ctx, result.Simulation.ID)
	if err != nil {
		log.Fatalf("failed to share simulation: %v", err)
	}
	log.Printf("shared at %s", url)
}
