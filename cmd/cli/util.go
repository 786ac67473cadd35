package main

import (
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/types"
)

// parsePubkey converts base58 string to PublicKey.
func parsePubkey(label, v string) (solana.PublicKey, error) {
	if v == "" {
		return solana.PublicKey{}, fmt.Errorf("%s is required", label)
	}
	pk, err := solana.PublicKeyFromBase58(v)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%s invalid pubkey: %w", label, err)
	}
	return pk, nil
}

// printResult renders an operation result and returns an error for failed
// ops so the process exit code reflects the outcome.
func printResult(w io.Writer, res types.TxResult) error {
	if !res.Success {
		return fmt.Errorf("operation failed: %s", res.Error)
	}
	fmt.Fprintf(w, "signature=%s\n", res.Signature)
	if res.ExplorerURL != "" {
		fmt.Fprintf(w, "explorer=%s\n", res.ExplorerURL)
	}
	return nil
}

// formatSol renders lamports as a decimal SOL amount.
func formatSol(lamports uint64) string {
	return fmt.Sprintf("%d.%09d", lamports/1e9, lamports%1e9)
}

func vanityPlainKey() (solana.PrivateKey, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return key, nil
}
