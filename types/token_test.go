package types_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simforge/tenderly-go/types"
)

func TestTokenUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		decimals int32
		want     string
		wantErr  bool
	}{
		{name: "whole usdc", amount: "100", decimals: 6, want: "100000000"},
		{name: "fractional usdc", amount: "1.5", decimals: 6, want: "1500000"},
		{name: "one ether", amount: "1", decimals: 18, want: "1000000000000000000"},
		{name: "smallest unit", amount: "0.000001", decimals: 6, want: "1"},
		{name: "zero", amount: "0", decimals: 18, want: "0"},
		{name: "too many fractional digits", amount: "0.0000001", decimals: 6, wantErr: true},
		{name: "negative amount", amount: "-1", decimals: 6, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.TokenUnits(decimal.RequireFromString(tt.amount), tt.decimals)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMustTokenUnitsPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		types.MustTokenUnits(decimal.RequireFromString("-1"), 6)
	})

	got := types.MustTokenUnits(decimal.RequireFromString("2.25"), 2)
	assert.Equal(t, "225", got.String())
}
