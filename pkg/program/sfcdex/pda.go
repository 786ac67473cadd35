package sfcdex

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/constants"
)

// Namespace identifies a derived-account family of the DEX program.
type Namespace uint8

const (
	NamespaceClient Namespace = iota
	NamespaceSolVault
	NamespaceSfcVault
	NamespaceLpMint
	NamespaceUserSfc
	NamespaceUserLp
)

// Seed returns the fixed seed string for the namespace.
func (n Namespace) Seed() string {
	switch n {
	case NamespaceClient:
		return constants.SeedClient
	case NamespaceSolVault:
		return constants.SeedSolVault
	case NamespaceSfcVault:
		return constants.SeedSfcVault
	case NamespaceLpMint:
		return constants.SeedLpMint
	case NamespaceUserSfc:
		return constants.SeedUserSfc
	case NamespaceUserLp:
		return constants.SeedUserLp
	default:
		return ""
	}
}

// PerUser reports whether derivation additionally consumes an owner key.
func (n Namespace) PerUser() bool {
	switch n {
	case NamespaceClient, NamespaceUserSfc, NamespaceUserLp:
		return true
	default:
		return false
	}
}

func (n Namespace) String() string {
	return n.Seed()
}

// Derive computes the program-derived address and bump for a namespace.
// Per-user namespaces require an owner key; global namespaces reject one.
// The same derivation is used on both the write and read paths; account
// lookups silently diverge otherwise.
func Derive(n Namespace, owner *solana.PublicKey) (solana.PublicKey, uint8, error) {
	seed := n.Seed()
	if seed == "" {
		return solana.PublicKey{}, 0, fmt.Errorf("unknown namespace %d", n)
	}
	seeds := [][]byte{[]byte(seed)}
	if n.PerUser() {
		if owner == nil || owner.IsZero() {
			return solana.PublicKey{}, 0, fmt.Errorf("namespace %q requires an owner key", seed)
		}
		seeds = append(seeds, owner.Bytes())
	} else if owner != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("namespace %q takes no owner key", seed)
	}
	return solana.FindProgramAddress(seeds, ProgramKey)
}

// DeriveClientPDA returns the per-user client account address.
// Its existence is the initialization signal for a participant.
func DeriveClientPDA(owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive(NamespaceClient, &owner)
}

// DeriveSolVaultPDA returns the pool's native SOL vault.
func DeriveSolVaultPDA() (solana.PublicKey, uint8, error) {
	return Derive(NamespaceSolVault, nil)
}

// DeriveSfcVaultPDA returns the pool's SFC token vault.
func DeriveSfcVaultPDA() (solana.PublicKey, uint8, error) {
	return Derive(NamespaceSfcVault, nil)
}

// DeriveLpMintPDA returns the LP token mint.
func DeriveLpMintPDA() (solana.PublicKey, uint8, error) {
	return Derive(NamespaceLpMint, nil)
}

// DeriveUserSfcPDA returns a participant's SFC token account.
func DeriveUserSfcPDA(owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive(NamespaceUserSfc, &owner)
}

// DeriveUserLpPDA returns a participant's LP token account.
func DeriveUserLpPDA(owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	return Derive(NamespaceUserLp, &owner)
}
