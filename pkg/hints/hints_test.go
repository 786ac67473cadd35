package hints

import (
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestCacheLifecycle(t *testing.T) {
	c := New()
	key := solana.NewWallet().PublicKey()

	require.False(t, c.BelievedToExist(key))

	c.MarkExists(key)
	require.True(t, c.BelievedToExist(key))
	require.Equal(t, 1, c.Len())

	c.Forget(key)
	require.False(t, c.BelievedToExist(key))
	require.Equal(t, 0, c.Len())
}

func TestCacheReconcile(t *testing.T) {
	c := New()
	key := solana.NewWallet().PublicKey()

	c.MarkExists(key)
	c.Reconcile(key, false)
	require.False(t, c.BelievedToExist(key))

	c.Reconcile(key, true)
	require.True(t, c.BelievedToExist(key))
}

func TestCacheConcurrent(t *testing.T) {
	c := New()
	keys := make([]solana.PublicKey, 16)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}

	var wg sync.WaitGroup
	for _, k := range keys {
		wg.Add(1)
		go func(k solana.PublicKey) {
			defer wg.Done()
			c.MarkExists(k)
			_ = c.BelievedToExist(k)
			c.Reconcile(k, true)
		}(k)
	}
	wg.Wait()

	require.Equal(t, len(keys), c.Len())
}
