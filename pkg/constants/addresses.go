package constants

import "github.com/gagliardetto/solana-go"

// Well-known program IDs
var (
	SystemProgramID          = solana.SystemProgramID
	TokenProgramID           = solana.TokenProgramID
	AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID
	SysvarRentProgramID      = solana.SysVarRentPubkey

	// SFC DEX Program
	DexProgramID = solana.MustPublicKeyFromBase58("2oSJ9zMZfZq9eP915CUZEv47iEPCZqZrWFLtnH1esohn")
)

// PDA seed namespaces. These are part of the on-chain program's account
// addressing scheme and must never change without a coordinated migration.
const (
	SeedClient   = "client"
	SeedSolVault = "sol_vault"
	SeedSfcVault = "sfc_vault"
	SeedLpMint   = "lp_mint"
	SeedUserSfc  = "user_sfc"
	SeedUserLp   = "user_lp"
)

// Unit scales. All amounts crossing the program boundary are in the smallest
// indivisible unit: lamports for SOL, base units for SFC and LP tokens.
const (
	LamportsPerSol = uint64(1_000_000_000)
	SfcDecimals    = 9
	SfcBaseUnit    = uint64(1_000_000_000)
)

// Protocol-level trade constants, mirrored from the on-chain program.
const (
	// SwapFeeBps is the pool fee applied to the input side of every swap.
	SwapFeeBps = uint64(30)

	// DefaultSlippageBps is used when the caller supplies no slippage bound.
	DefaultSlippageBps = uint64(100)
)
