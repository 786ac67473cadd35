package sfcdex

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestDeriveDeterministic(t *testing.T) {
	owner := solana.NewWallet().PublicKey()

	a1, b1, err := DeriveClientPDA(owner)
	require.NoError(t, err)
	a2, b2, err := DeriveClientPDA(owner)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
	require.False(t, IsOnCurve(a1))
}

func TestDeriveGlobalIgnoresNoOwner(t *testing.T) {
	v1, _, err := DeriveSolVaultPDA()
	require.NoError(t, err)
	v2, _, err := DeriveSolVaultPDA()
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}

func TestDeriveNamespacesDistinct(t *testing.T) {
	owner := solana.NewWallet().PublicKey()

	seen := make(map[solana.PublicKey]Namespace)
	for _, n := range []Namespace{
		NamespaceClient, NamespaceSolVault, NamespaceSfcVault,
		NamespaceLpMint, NamespaceUserSfc, NamespaceUserLp,
	} {
		var pk solana.PublicKey
		var err error
		if n.PerUser() {
			pk, _, err = Derive(n, &owner)
		} else {
			pk, _, err = Derive(n, nil)
		}
		require.NoError(t, err, n.String())
		prev, dup := seen[pk]
		require.False(t, dup, "namespace %s collides with %s", n, prev)
		seen[pk] = n
	}
}

func TestDerivePerUserDistinctOwners(t *testing.T) {
	ownerA := solana.NewWallet().PublicKey()
	ownerB := solana.NewWallet().PublicKey()

	a, _, err := DeriveUserSfcPDA(ownerA)
	require.NoError(t, err)
	b, _, err := DeriveUserSfcPDA(ownerB)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDeriveOwnerRules(t *testing.T) {
	owner := solana.NewWallet().PublicKey()

	_, _, err := Derive(NamespaceClient, nil)
	require.Error(t, err)

	_, _, err = Derive(NamespaceSolVault, &owner)
	require.Error(t, err)

	_, _, err = Derive(Namespace(42), nil)
	require.Error(t, err)
}
