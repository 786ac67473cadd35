// Package quote computes trade quotes against a constant-product SOL/SFC
// pool from a reserves snapshot. Everything here is pure: no I/O, no
// floats, big.Int arithmetic throughout. Quotes are non-binding estimates;
// the pool may move between quoting and execution, which is what the
// minimum-received bound protects against.
package quote

import (
	"math"
	"math/big"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/constants"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/types"
)

// Direction of a swap.
type Direction uint8

const (
	// SolToSfc spends lamports and receives SFC base units (sell_sol).
	SolToSfc Direction = iota
	// SfcToSol spends SFC base units and receives lamports (buy_sol).
	SfcToSol
)

func (d Direction) String() string {
	switch d {
	case SolToSfc:
		return "sol->sfc"
	case SfcToSol:
		return "sfc->sol"
	default:
		return "unknown"
	}
}

// Reserves is a point-in-time snapshot of the pool's balances. Staleness is
// the caller's concern; the engine quotes against whatever it is given.
type Reserves struct {
	SolBalance uint64 // lamports in sol_vault
	SfcBalance uint64 // SFC base units in sfc_vault
}

// Degenerate reports whether either side is empty, which makes the
// constant-product formula meaningless.
func (r Reserves) Degenerate() bool {
	return r.SolBalance == 0 || r.SfcBalance == 0
}

// TradeQuote is the ephemeral result of a quote computation.
type TradeQuote struct {
	Direction    Direction
	InputAmount  uint64
	OutputAmount uint64

	// Fee is the pool fee taken from the input side (30 bps).
	Fee uint64

	// MinReceived is OutputAmount reduced by the slippage tolerance; it is
	// the bound passed on-chain as the instruction's minimum-out argument.
	MinReceived uint64

	// SpotPrice and ExecutionPrice are lamports per SFC base unit, scaled
	// by 1e9. PriceImpactBps is their relative deviation in basis points.
	SpotPrice      uint64
	ExecutionPrice uint64
	PriceImpactBps uint64
}

// SwapQuote computes the expected outcome of a swap against the given
// reserves. slippageBps is optional and defaults to 100 (1%). A degenerate
// pool yields ErrEmptyPool, never NaN or a division by zero.
func SwapQuote(reserves Reserves, amountIn uint64, dir Direction, slippageBps ...uint64) (*TradeQuote, error) {
	slip := constants.DefaultSlippageBps
	if len(slippageBps) > 0 {
		slip = slippageBps[0]
	}
	if err := types.ValidateSwapParams(amountIn, slip); err != nil {
		return nil, err
	}
	if reserves.Degenerate() {
		return nil, types.ErrEmptyPool
	}

	fee := feeOn(amountIn)
	inAfterFee := new(big.Int).SetUint64(amountIn - fee)

	var inReserve, outReserve *big.Int
	switch dir {
	case SolToSfc:
		inReserve = new(big.Int).SetUint64(reserves.SolBalance)
		outReserve = new(big.Int).SetUint64(reserves.SfcBalance)
	case SfcToSol:
		inReserve = new(big.Int).SetUint64(reserves.SfcBalance)
		outReserve = new(big.Int).SetUint64(reserves.SolBalance)
	default:
		return nil, types.NewValidationError("direction", "unknown swap direction")
	}

	// out = outReserve * inAfterFee / (inReserve + inAfterFee)
	numerator := new(big.Int).Mul(outReserve, inAfterFee)
	denominator := new(big.Int).Add(inReserve, inAfterFee)
	out := new(big.Int).Div(numerator, denominator)
	outputAmount := out.Uint64()

	spot, exec, impact := priceMetrics(reserves, amountIn, outputAmount, dir)

	return &TradeQuote{
		Direction:      dir,
		InputAmount:    amountIn,
		OutputAmount:   outputAmount,
		Fee:            fee,
		MinReceived:    ApplySlippage(outputAmount, slip),
		SpotPrice:      spot,
		ExecutionPrice: exec,
		PriceImpactBps: impact,
	}, nil
}

// PoolPrice returns the spot price of the pool as lamports per SFC base
// unit, scaled by 1e9.
func PoolPrice(reserves Reserves) (uint64, error) {
	if reserves.Degenerate() {
		return 0, types.ErrEmptyPool
	}
	price := new(big.Int).SetUint64(reserves.SolBalance)
	price.Mul(price, big.NewInt(1e9))
	price.Div(price, new(big.Int).SetUint64(reserves.SfcBalance))
	return price.Uint64(), nil
}

// ApplySlippage reduces an amount by a basis-point tolerance. The multiply
// goes through big.Int so amounts near the uint64 ceiling cannot wrap and
// silently void the minimum-out bound.
func ApplySlippage(amount uint64, slippageBps uint64) uint64 {
	if slippageBps >= types.MaxSlippageBps {
		return 0
	}
	v := new(big.Int).SetUint64(amount)
	v.Mul(v, new(big.Int).SetUint64(types.MaxSlippageBps-slippageBps))
	v.Div(v, new(big.Int).SetUint64(types.MaxSlippageBps))
	return v.Uint64()
}

// feeOn returns the 30 bps input-side fee. Big.Int keeps the intermediate
// product exact for the full uint64 input range; the result always fits
// because fee < amountIn.
func feeOn(amountIn uint64) uint64 {
	fee := new(big.Int).SetUint64(amountIn)
	fee.Mul(fee, new(big.Int).SetUint64(constants.SwapFeeBps))
	fee.Div(fee, big.NewInt(10000))
	return fee.Uint64()
}

// clampU64 converts a non-negative big.Int to uint64, saturating at the
// ceiling instead of truncating.
func clampU64(v *big.Int) uint64 {
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}

// priceMetrics derives spot price, effective execution price, and their
// deviation in bps. Both prices are lamports per SFC base unit scaled by
// 1e9, so the comparison never mixes units regardless of trade direction.
func priceMetrics(reserves Reserves, amountIn, amountOut uint64, dir Direction) (spotPrice, execPrice, impactBps uint64) {
	if amountOut == 0 || amountIn == 0 {
		return 0, 0, 0
	}

	spot := new(big.Int).SetUint64(reserves.SolBalance)
	spot.Mul(spot, big.NewInt(1e9))
	spot.Div(spot, new(big.Int).SetUint64(reserves.SfcBalance))

	exec := new(big.Int)
	switch dir {
	case SolToSfc:
		// paid amountIn lamports for amountOut base units
		exec.SetUint64(amountIn)
		exec.Mul(exec, big.NewInt(1e9))
		exec.Div(exec, new(big.Int).SetUint64(amountOut))
	case SfcToSol:
		// received amountOut lamports for amountIn base units
		exec.SetUint64(amountOut)
		exec.Mul(exec, big.NewInt(1e9))
		exec.Div(exec, new(big.Int).SetUint64(amountIn))
	}

	spotPrice = clampU64(spot)
	execPrice = clampU64(exec)
	if spot.Sign() == 0 {
		return spotPrice, execPrice, 0
	}

	impact := new(big.Int)
	switch dir {
	case SolToSfc:
		// buys push the effective price above spot
		if exec.Cmp(spot) > 0 {
			impact.Sub(exec, spot)
		}
	case SfcToSol:
		// sells push the effective price below spot
		if spot.Cmp(exec) > 0 {
			impact.Sub(spot, exec)
		}
	}
	impact.Mul(impact, big.NewInt(10000))
	impact.Div(impact, spot)
	return spotPrice, execPrice, clampU64(impact)
}
