package types

import (
	"github.com/gagliardetto/solana-go"
)

// MaxSlippageBps is 100% expressed in basis points.
const MaxSlippageBps = uint64(10000)

// ValidateSwapParams validates swap input before any derivation or network
// call. Slippage is in basis points; 10000 means accepting any price.
func ValidateSwapParams(amountIn, slippageBps uint64) error {
	if amountIn == 0 {
		return NewValidationError("amountIn", "must be greater than 0")
	}
	if slippageBps > MaxSlippageBps {
		return NewValidationError("slippageBps", "must be <= 10000 (100%)")
	}
	return nil
}

// ValidateLiquidityParams validates liquidity amounts. The vault bump is a
// uint8 produced by derivation and needs no range check here.
func ValidateLiquidityParams(amount uint64) error {
	if amount == 0 {
		return NewValidationError("amount", "must be greater than 0")
	}
	return nil
}

// ValidateTransferParams validates participant-to-participant transfers.
func ValidateTransferParams(amount uint64, recipient solana.PublicKey) error {
	if amount == 0 {
		return NewValidationError("amount", "must be greater than 0")
	}
	return ValidatePublicKey("recipient", recipient)
}

// ValidateMessage validates message content before submission.
func ValidateMessage(content string) error {
	if content == "" {
		return NewValidationError("content", "cannot be empty")
	}
	if len(content) > 512 {
		return NewValidationError("content", "exceeds 512 bytes")
	}
	return nil
}

// ValidatePublicKey validates a public key is not zero.
func ValidatePublicKey(name string, key solana.PublicKey) error {
	if key.IsZero() {
		return NewValidationError(name, "cannot be zero")
	}
	return nil
}

// ValidatePublicKeys validates multiple public keys.
func ValidatePublicKeys(keys map[string]solana.PublicKey) error {
	for name, key := range keys {
		if err := ValidatePublicKey(name, key); err != nil {
			return err
		}
	}
	return nil
}
