package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplorerTxURL(t *testing.T) {
	sig := "5j7s6NiJS3JAkvgkoc18WVAsiSaci2pxB2A6ueCJP4tprA2TFg9wSyTLeYouxPBJEMzJinENTkpA52YStRW5Dia7"

	require.Equal(t,
		"https://explorer.solana.com/tx/"+sig,
		ExplorerTxURL(NetworkMainnet, sig))
	require.Equal(t,
		"https://explorer.solana.com/tx/"+sig+"?cluster=devnet",
		ExplorerTxURL(NetworkDevnet, sig))
	require.Equal(t,
		"https://explorer.solana.com/tx/"+sig+"?cluster=testnet",
		ExplorerTxURL(NetworkTestnet, sig))
}

func TestResolveRPCURL(t *testing.T) {
	cfg := RPCConfig{Network: NetworkDevnet}
	require.Equal(t, "https://api.devnet.solana.com", cfg.ResolveRPCURL())

	cfg.RPCURL = "http://localhost:8899"
	require.Equal(t, "http://localhost:8899", cfg.ResolveRPCURL())
}

func TestDefaultRPCConfig(t *testing.T) {
	cfg := DefaultRPCConfig()
	require.Equal(t, NetworkMainnet, cfg.Network)
	require.Equal(t, "confirmed", cfg.Commitment)
	require.True(t, cfg.Retry.Enabled)
	require.NotZero(t, cfg.RateLimit.RPS)
}
