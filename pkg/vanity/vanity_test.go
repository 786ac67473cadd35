package vanity

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRequiresPattern(t *testing.T) {
	_, err := Generate(context.Background(), Options{})
	require.Error(t, err)
}

func TestGenerateRejectsNonBase58Pattern(t *testing.T) {
	for _, pattern := range []string{"0x", "O", "I", "l", "SFC!"} {
		_, err := Generate(context.Background(), Options{Prefix: pattern})
		require.Error(t, err, "prefix %q", pattern)
		require.Contains(t, err.Error(), "base58")

		_, err = Generate(context.Background(), Options{Suffix: pattern})
		require.Error(t, err, "suffix %q", pattern)
	}
}

func TestGenerateCaseInsensitivePatternValidation(t *testing.T) {
	// "l" is not in the alphabet but "L" is, so the case-insensitive
	// search can still match it.
	_, err := Generate(context.Background(), Options{Prefix: "l"})
	require.Error(t, err)

	res, err := Generate(context.Background(), Options{Prefix: "l", CaseInsensitive: true})
	require.NoError(t, err)
	require.Equal(t, "l", strings.ToLower(res.PublicKey.String()[:1]))
}

func TestGenerateFindsPrefix(t *testing.T) {
	res, err := Generate(context.Background(), Options{Prefix: "A"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.PublicKey.String(), "A"))
	require.NotZero(t, res.Attempts)
}

func TestEstimateDifficulty(t *testing.T) {
	require.Equal(t, uint64(1), EstimateDifficulty(0, 0))
	require.Equal(t, uint64(58), EstimateDifficulty(1, 0))
	require.Equal(t, uint64(58*58), EstimateDifficulty(1, 1))
}
