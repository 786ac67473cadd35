// Package sfcdex contains hand-written bindings for the SFC DEX on-chain
// program: PDA derivation, instruction builders, and the program error table.
//
// The program exposes a constant-product SOL/SFC pool. Every instruction's
// account list is positional and exact; omitting or reordering an account
// makes the program reject the call.
package sfcdex

import (
	"github.com/gagliardetto/solana-go"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/constants"
)

// ProgramKey is the deployed SFC DEX program identifier.
var ProgramKey = constants.DexProgramID

// Anchor instruction discriminators: sha256("global:<name>")[:8].
var (
	Instruction_InitUser          = [8]byte{14, 51, 68, 159, 237, 78, 158, 102}
	Instruction_BuySol            = [8]byte{206, 59, 125, 30, 202, 248, 111, 49}
	Instruction_SellSol           = [8]byte{205, 130, 32, 108, 218, 104, 75, 30}
	Instruction_ProvideLiquidity  = [8]byte{40, 110, 107, 116, 174, 127, 97, 204}
	Instruction_WithdrawLiquidity = [8]byte{149, 158, 33, 185, 47, 243, 253, 31}
	Instruction_TransferAsset     = [8]byte{126, 66, 109, 18, 60, 172, 131, 124}
	Instruction_UserMessage       = [8]byte{52, 209, 252, 130, 13, 42, 188, 57}
	Instruction_UserMessageTarget = [8]byte{189, 255, 131, 52, 75, 186, 93, 227}
)

// Asset discriminates the transferable asset kinds of transfer_asset.
// The tag is set explicitly at construction time, never inferred.
type Asset uint8

const (
	AssetSol Asset = iota
	AssetSfc
)

func (a Asset) String() string {
	switch a {
	case AssetSol:
		return "sol"
	case AssetSfc:
		return "sfc"
	default:
		return "unknown"
	}
}

// IsOnCurve reports whether a public key has a corresponding private key.
// PDAs are always off-curve.
func IsOnCurve(pk solana.PublicKey) bool {
	return pk.IsOnCurve()
}
