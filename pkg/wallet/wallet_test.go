package wallet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestLocalSignMessage(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	signer := NewLocalFromPrivateKey(key)

	require.Equal(t, key.PublicKey(), signer.PublicKey())

	msg := []byte("test message")
	sig, err := signer.SignMessage(context.Background(), msg)
	require.NoError(t, err)
	require.True(t, sig.Verify(signer.PublicKey(), msg))
}

func TestLocalSignRespectsContext(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	signer := NewLocalFromPrivateKey(key)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = signer.SignMessage(ctx, []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalFromBase58(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	signer, err := NewLocalFromBase58(key.String())
	require.NoError(t, err)
	require.Equal(t, key.PublicKey(), signer.PublicKey())

	_, err = NewLocalFromBase58("not-base58!!!")
	require.Error(t, err)
}

func TestSaveKeygenRoundtrip(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, SaveKeygen(path, key))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	signer, err := NewLocalFromKeygen(path)
	require.NoError(t, err)
	require.Equal(t, key.PublicKey(), signer.PublicKey())
}

func TestSaveKeygenRejectsBadKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.json")
	err := SaveKeygen(path, solana.PrivateKey([]byte{1, 2, 3}))
	require.Error(t, err)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestRemoteSigner(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	remote := NewRemote(key.PublicKey(), func(ctx context.Context, message []byte) ([]byte, error) {
		sig, err := key.Sign(message)
		if err != nil {
			return nil, err
		}
		return sig[:], nil
	})

	msg := []byte("delegated")
	sig, err := remote.SignMessage(context.Background(), msg)
	require.NoError(t, err)
	require.True(t, sig.Verify(key.PublicKey(), msg))
}

func TestRemoteSignerRejectsBadLength(t *testing.T) {
	remote := NewRemote(solana.PublicKey{}, func(ctx context.Context, message []byte) ([]byte, error) {
		return []byte{1, 2, 3}, nil
	})
	_, err := remote.SignMessage(context.Background(), []byte("x"))
	require.Error(t, err)

	failing := NewRemote(solana.PublicKey{}, func(ctx context.Context, message []byte) ([]byte, error) {
		return nil, fmt.Errorf("signer offline")
	})
	_, err = failing.SignMessage(context.Background(), []byte("x"))
	require.Error(t, err)

	var unset Remote
	_, err = unset.SignMessage(context.Background(), []byte("x"))
	require.Error(t, err)
}
