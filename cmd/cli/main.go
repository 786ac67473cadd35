package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	sdkconfig "github.com/sfcdex/sfcdex-go-sdk/pkg/config"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/dex"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/jito"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/wallet"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalOpts struct {
	rpcURL         string
	network        string
	commitment     string
	walletPath     string
	signerEndpoint string
	jitoEndpoint   string
	retryAttempts  int
	retryBackoffMs int
	rateLimitRPS   float64
	logLevel       string
	timeoutSec     int
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	root := &cobra.Command{
		Use:   "sfcdexcli",
		Short: "SFC DEX SDK CLI (pool, trading, liquidity, transfers, messages)",
	}

	root.PersistentFlags().StringVar(&opts.rpcURL, "rpc-url", "", "RPC endpoint (default per network if empty)")
	root.PersistentFlags().StringVar(&opts.network, "network", "mainnet", "cluster (mainnet|testnet|devnet)")
	root.PersistentFlags().StringVar(&opts.commitment, "commitment", "confirmed", "RPC commitment level")
	root.PersistentFlags().StringVar(&opts.walletPath, "wallet", "", "path to solana-keygen json for signing")
	root.PersistentFlags().StringVar(&opts.signerEndpoint, "signer-endpoint", "", "remote signer endpoint (placeholder)")
	root.PersistentFlags().StringVar(&opts.jitoEndpoint, "jito-endpoint", "", "Jito block engine endpoint (empty = plain RPC)")
	root.PersistentFlags().IntVar(&opts.retryAttempts, "retry-attempts", 3, "RPC retry attempts (reads only)")
	root.PersistentFlags().IntVar(&opts.retryBackoffMs, "retry-backoff-ms", 150, "initial backoff in ms")
	root.PersistentFlags().Float64Var(&opts.rateLimitRPS, "rate-limit-rps", 8, "rate limit RPS (0 to disable)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	root.PersistentFlags().IntVar(&opts.timeoutSec, "timeout-sec", 20, "RPC timeout seconds")

	root.AddCommand(
		newConfigCmd(),
		newPoolCmd(opts),
		newAccountCmd(opts),
		newTradeCmd(opts),
		newLiquidityCmd(opts),
		newTransferCmd(opts),
		newMessageCmd(opts),
	)

	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sdkconfig.DefaultRPCConfig()
			fmt.Fprintf(cmd.OutOrStdout(), "network=%s\nrpc=%s\ncommitment=%s\n", cfg.Network, cfg.ResolveRPCURL(), cfg.Commitment)
			return nil
		},
	}
}

type runtimeDeps struct {
	client *dex.Client
	signer wallet.Signer
}

func buildConfig(cmd *cobra.Command, opts *globalOpts) sdkconfig.RPCConfig {
	cfg := sdkconfig.DefaultRPCConfig()
	if opts == nil {
		return cfg
	}
	if opts.network != "" {
		cfg.Network = sdkconfig.Network(opts.network)
		cfg.RPCURL = sdkconfig.DefaultRPCURL(cfg.Network)
	}
	if opts.rpcURL != "" {
		cfg.RPCURL = opts.rpcURL
	}
	if opts.commitment != "" {
		cfg.Commitment = opts.commitment
	}
	cfg.RateLimit.RPS = opts.rateLimitRPS
	cfg.Retry.MaxAttempts = opts.retryAttempts
	if opts.retryBackoffMs > 0 {
		cfg.Retry.InitialBackoff = time.Duration(opts.retryBackoffMs) * time.Millisecond
	}
	if opts.timeoutSec > 0 {
		cfg.Timeout = time.Duration(opts.timeoutSec) * time.Second
	}
	cfg.Logger = zerolog.New(cmd.ErrOrStderr()).Level(parseLogLevel(opts.logLevel))
	return cfg
}

// newReadDeps builds a client for read-only commands; no wallet required.
func newReadDeps(cmd *cobra.Command, opts *globalOpts) *dex.Client {
	client := dex.NewClient(buildConfig(cmd, opts))
	if opts != nil && opts.jitoEndpoint != "" {
		client.WithJito(jito.NewClient(opts.jitoEndpoint, ""))
	}
	return client
}

// newDeps builds a client plus signer for state-changing commands.
func newDeps(cmd *cobra.Command, opts *globalOpts) (*runtimeDeps, error) {
	client := newReadDeps(cmd, opts)

	var signer wallet.Signer
	switch {
	case opts != nil && opts.walletPath != "":
		local, err := wallet.NewLocalFromKeygen(opts.walletPath)
		if err != nil {
			return nil, err
		}
		signer = local
	case opts != nil && opts.signerEndpoint != "":
		signer = wallet.NewRemote(solana.PublicKey{}, func(ctx context.Context, message []byte) ([]byte, error) {
			return nil, fmt.Errorf("remote signer placeholder: %s", opts.signerEndpoint)
		})
	default:
		return nil, fmt.Errorf("wallet is required (use --wallet)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.RPC().GetLatestBlockhash(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: rpc ping failed: %v\n", err)
	}

	return &runtimeDeps{client: client, signer: signer}, nil
}

func parseLogLevel(lvl string) zerolog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
