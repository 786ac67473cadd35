package types

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestValidateSwapParams(t *testing.T) {
	require.NoError(t, ValidateSwapParams(1, 0))
	require.NoError(t, ValidateSwapParams(1_000_000_000, 100))
	require.NoError(t, ValidateSwapParams(1, 10000))

	err := ValidateSwapParams(0, 100)
	require.Error(t, err)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "amountIn", verr.Field)

	err = ValidateSwapParams(1, 15000)
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "slippageBps", verr.Field)
}

func TestValidateLiquidityParams(t *testing.T) {
	require.NoError(t, ValidateLiquidityParams(1))
	require.Error(t, ValidateLiquidityParams(0))
}

func TestValidateTransferParams(t *testing.T) {
	recipient := solana.NewWallet().PublicKey()
	require.NoError(t, ValidateTransferParams(10, recipient))
	require.Error(t, ValidateTransferParams(0, recipient))
	require.Error(t, ValidateTransferParams(10, solana.PublicKey{}))
}

func TestValidateMessage(t *testing.T) {
	require.NoError(t, ValidateMessage("gm"))
	require.NoError(t, ValidateMessage(strings.Repeat("a", 512)))
	require.Error(t, ValidateMessage(""))
	require.Error(t, ValidateMessage(strings.Repeat("a", 513)))
}

func TestValidatePublicKeys(t *testing.T) {
	good := solana.NewWallet().PublicKey()
	require.NoError(t, ValidatePublicKeys(map[string]solana.PublicKey{"a": good}))
	err := ValidatePublicKeys(map[string]solana.PublicKey{"a": good, "bad": {}})
	require.Error(t, err)
}
