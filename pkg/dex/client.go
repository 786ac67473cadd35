// Package dex exposes the high-level trading operations of the SOL/SFC
// exchange program. Every state-changing method returns a types.TxResult
// and never panics past its boundary; parameter and account validation
// happens before any transaction is submitted, and a submission is
// attempted at most once per call.
package dex

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/rs/zerolog"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/config"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/constants"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/hints"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/jito"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/program/sfcdex"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/quote"
	sdkrpc "github.com/sfcdex/sfcdex-go-sdk/pkg/rpc"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/state"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/txbuilder"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/types"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/wallet"
)

// Client is the entry point for DEX operations. Construct with NewClient;
// the zero value is not usable.
type Client struct {
	rpc     *sdkrpc.Client
	builder *txbuilder.Builder
	hints   *hints.Cache
	log     zerolog.Logger
	network config.Network
}

// NewClient builds a Client from the given RPC configuration.
func NewClient(cfg config.RPCConfig) *Client {
	rpcClient := sdkrpc.NewClient(cfg)
	return &Client{
		rpc:     rpcClient,
		builder: txbuilder.NewBuilder(rpcClient, rpcClient.Commitment()),
		hints:   hints.New(),
		log:     cfg.Logger.With().Str("component", "dex").Logger(),
		network: cfg.Network,
	}
}

// WithJito routes all submissions through the given Jito client.
func (c *Client) WithJito(j *jito.Client) *Client {
	c.builder.WithJito(j)
	return c
}

// RPC exposes the underlying wrapped RPC client.
func (c *Client) RPC() *sdkrpc.Client { return c.rpc }

// Builder exposes the transaction builder for advanced composition.
func (c *Client) Builder() *txbuilder.Builder { return c.builder }

// SwapParams are the caller-supplied inputs of a swap.
type SwapParams struct {
	// AmountIn is the spend amount in the input asset's base units
	// (lamports for SOL, base units for SFC).
	AmountIn uint64

	// SlippageBps is the tolerance applied to the quoted output when
	// computing the on-chain minimum-out bound. Zero selects the default
	// tolerance of 100 bps.
	SlippageBps uint64
}

func (p SwapParams) slippage() uint64 {
	if p.SlippageBps == 0 {
		return constants.DefaultSlippageBps
	}
	return p.SlippageBps
}

// InitializeAccount creates the caller's client account and token accounts.
// The call is pre-flighted against the ledger: if the client account
// already exists nothing is submitted and the result carries
// types.ErrAlreadyInitialized.
func (c *Client) InitializeAccount(ctx context.Context, signer wallet.Signer, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	cfg := buildOpConfig(opts)
	owner := signer.PublicKey()

	clientPDA, _, err := sfcdex.DeriveClientPDA(owner)
	if err != nil {
		return types.Failure(err)
	}
	exists, err := c.accountExists(ctx, clientPDA)
	if err != nil {
		return types.Failure(fmt.Errorf("preflight: %w", err))
	}
	if exists {
		return types.Failure(types.ErrAlreadyInitialized)
	}

	userSfc, _, err := sfcdex.DeriveUserSfcPDA(owner)
	if err != nil {
		return types.Failure(err)
	}
	userLp, _, err := sfcdex.DeriveUserLpPDA(owner)
	if err != nil {
		return types.Failure(err)
	}
	sfcVault, _, err := sfcdex.DeriveSfcVaultPDA()
	if err != nil {
		return types.Failure(err)
	}
	lpMint, _, err := sfcdex.DeriveLpMintPDA()
	if err != nil {
		return types.Failure(err)
	}

	ix, err := sfcdex.BuildInitUser(sfcdex.InitUserAccounts{
		User:          owner,
		Client:        clientPDA,
		UserSfc:       userSfc,
		UserLp:        userLp,
		SfcVault:      sfcVault,
		LpMint:        lpMint,
		TokenProgram:  constants.TokenProgramID,
		SystemProgram: constants.SystemProgramID,
		Rent:          constants.SysvarRentProgramID,
	})
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().Str("op", "init_user").Str("user", owner.String()).Msg("initializing account")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	c.hints.MarkExists(clientPDA)
	return c.success(sig)
}

// SellSol swaps SOL for SFC. The minimum-out bound is derived from a fresh
// pool snapshot and enforced by the program, so a pool moving past the
// tolerance between quote and execution fails the transaction instead of
// filling at a worse price.
func (c *Client) SellSol(ctx context.Context, signer wallet.Signer, params SwapParams, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	if err := types.ValidateSwapParams(params.AmountIn, params.slippage()); err != nil {
		return types.Failure(err)
	}
	cfg := buildOpConfig(opts)

	accts, sfcBump, err := c.swapAccounts(signer.PublicKey())
	if err != nil {
		return types.Failure(err)
	}
	q, err := c.freshQuote(ctx, params.AmountIn, quote.SolToSfc, params.slippage())
	if err != nil {
		return types.Failure(err)
	}

	ix, err := sfcdex.BuildSellSol(accts, sfcdex.SellSolArgs{
		AmountIn:  params.AmountIn,
		MinSfcOut: q.MinReceived,
		VaultBump: sfcBump,
	})
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().
		Str("op", "sell_sol").
		Uint64("amount_in", params.AmountIn).
		Uint64("min_out", q.MinReceived).
		Uint64("impact_bps", q.PriceImpactBps).
		Msg("submitting swap")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	return c.success(sig)
}

// BuySol swaps SFC for SOL. Mirror of SellSol.
func (c *Client) BuySol(ctx context.Context, signer wallet.Signer, params SwapParams, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	if err := types.ValidateSwapParams(params.AmountIn, params.slippage()); err != nil {
		return types.Failure(err)
	}
	cfg := buildOpConfig(opts)

	accts, _, err := c.swapAccounts(signer.PublicKey())
	if err != nil {
		return types.Failure(err)
	}
	q, err := c.freshQuote(ctx, params.AmountIn, quote.SfcToSol, params.slippage())
	if err != nil {
		return types.Failure(err)
	}

	ix, err := sfcdex.BuildBuySol(accts, sfcdex.BuySolArgs{
		AmountIn:  params.AmountIn,
		MinSolOut: q.MinReceived,
	})
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().
		Str("op", "buy_sol").
		Uint64("amount_in", params.AmountIn).
		Uint64("min_out", q.MinReceived).
		Uint64("impact_bps", q.PriceImpactBps).
		Msg("submitting swap")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	return c.success(sig)
}

// ProvideLiquidity deposits the given SOL amount (lamports) into the pool;
// the program takes the matching SFC leg at the current ratio and mints LP
// tokens to the caller.
func (c *Client) ProvideLiquidity(ctx context.Context, signer wallet.Signer, amount uint64, opts ...Option) types.TxResult {
	return c.liquidityOp(ctx, signer, amount, false, opts...)
}

// WithdrawLiquidity burns the given amount of LP tokens and pays out both
// pool legs proportionally.
func (c *Client) WithdrawLiquidity(ctx context.Context, signer wallet.Signer, lpAmount uint64, opts ...Option) types.TxResult {
	return c.liquidityOp(ctx, signer, lpAmount, true, opts...)
}

func (c *Client) liquidityOp(ctx context.Context, signer wallet.Signer, amount uint64, withdraw bool, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	if err := types.ValidateLiquidityParams(amount); err != nil {
		return types.Failure(err)
	}
	cfg := buildOpConfig(opts)
	owner := signer.PublicKey()

	clientPDA, _, err := sfcdex.DeriveClientPDA(owner)
	if err != nil {
		return types.Failure(err)
	}
	solVault, solBump, err := sfcdex.DeriveSolVaultPDA()
	if err != nil {
		return types.Failure(err)
	}
	sfcVault, _, err := sfcdex.DeriveSfcVaultPDA()
	if err != nil {
		return types.Failure(err)
	}
	lpMint, _, err := sfcdex.DeriveLpMintPDA()
	if err != nil {
		return types.Failure(err)
	}
	userSfc, _, err := sfcdex.DeriveUserSfcPDA(owner)
	if err != nil {
		return types.Failure(err)
	}
	userLp, _, err := sfcdex.DeriveUserLpPDA(owner)
	if err != nil {
		return types.Failure(err)
	}

	accts := sfcdex.LiquidityAccounts{
		User:          owner,
		Client:        clientPDA,
		SolVault:      solVault,
		SfcVault:      sfcVault,
		LpMint:        lpMint,
		UserSfc:       userSfc,
		UserLp:        userLp,
		TokenProgram:  constants.TokenProgramID,
		SystemProgram: constants.SystemProgramID,
	}

	var (
		ix solana.Instruction
		op string
	)
	if withdraw {
		op = "withdraw_liquidity"
		ix, err = sfcdex.BuildWithdrawLiquidity(accts, sfcdex.WithdrawLiquidityArgs{
			LpAmount:  amount,
			VaultBump: solBump,
		})
	} else {
		op = "provide_liquidity"
		ix, err = sfcdex.BuildProvideLiquidity(accts, sfcdex.ProvideLiquidityArgs{
			Amount:    amount,
			VaultBump: solBump,
		})
	}
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().Str("op", op).Uint64("amount", amount).Msg("submitting liquidity operation")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	return c.success(sig)
}

// TransferAsset moves SOL or SFC directly to another initialized
// participant, bypassing the pool. The recipient's client account is
// pre-flighted so an uninitialized recipient fails before submission.
func (c *Client) TransferAsset(ctx context.Context, signer wallet.Signer, recipient solana.PublicKey, amount uint64, asset sfcdex.Asset, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	if err := types.ValidateTransferParams(amount, recipient); err != nil {
		return types.Failure(err)
	}
	cfg := buildOpConfig(opts)
	sender := signer.PublicKey()

	senderClient, _, err := sfcdex.DeriveClientPDA(sender)
	if err != nil {
		return types.Failure(err)
	}
	recipientClient, _, err := sfcdex.DeriveClientPDA(recipient)
	if err != nil {
		return types.Failure(err)
	}
	exists, err := c.accountExists(ctx, recipientClient)
	if err != nil {
		return types.Failure(fmt.Errorf("preflight recipient: %w", err))
	}
	if !exists {
		return types.Failure(fmt.Errorf("recipient %s: %w", recipient, types.ErrNotInitialized))
	}

	senderSfc, _, err := sfcdex.DeriveUserSfcPDA(sender)
	if err != nil {
		return types.Failure(err)
	}
	recipientSfc, _, err := sfcdex.DeriveUserSfcPDA(recipient)
	if err != nil {
		return types.Failure(err)
	}

	ix, err := sfcdex.BuildTransferAsset(sfcdex.TransferAssetAccounts{
		Sender:        sender,
		SenderClient:  senderClient,
		Recipient:     recipient,
		SenderSfc:     senderSfc,
		RecipientSfc:  recipientSfc,
		TokenProgram:  constants.TokenProgramID,
		SystemProgram: constants.SystemProgramID,
	}, sfcdex.TransferAssetArgs{Amount: amount, Asset: asset})
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().
		Str("op", "transfer_asset").
		Str("recipient", recipient.String()).
		Uint64("amount", amount).
		Str("asset", asset.String()).
		Msg("submitting transfer")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	return c.success(sig)
}

// SendMessage records a broadcast message on chain.
func (c *Client) SendMessage(ctx context.Context, signer wallet.Signer, content string, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	if err := types.ValidateMessage(content); err != nil {
		return types.Failure(err)
	}
	cfg := buildOpConfig(opts)
	sender := signer.PublicKey()

	senderClient, _, err := sfcdex.DeriveClientPDA(sender)
	if err != nil {
		return types.Failure(err)
	}
	ix, err := sfcdex.BuildUserMessage(sfcdex.UserMessageAccounts{
		Sender:        sender,
		SenderClient:  senderClient,
		SystemProgram: constants.SystemProgramID,
	}, sfcdex.UserMessageArgs{Content: content})
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().Str("op", "user_message").Int("bytes", len(content)).Msg("submitting message")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	return c.success(sig)
}

// SendMessageTo records a message directed at another initialized
// participant. The target's client account is pre-flighted.
func (c *Client) SendMessageTo(ctx context.Context, signer wallet.Signer, target solana.PublicKey, content string, opts ...Option) types.TxResult {
	if signer == nil {
		return types.Failure(types.ErrNilSigner)
	}
	if err := types.ValidateMessage(content); err != nil {
		return types.Failure(err)
	}
	if err := types.ValidatePublicKey("target", target); err != nil {
		return types.Failure(err)
	}
	cfg := buildOpConfig(opts)
	sender := signer.PublicKey()

	senderClient, _, err := sfcdex.DeriveClientPDA(sender)
	if err != nil {
		return types.Failure(err)
	}
	targetClient, _, err := sfcdex.DeriveClientPDA(target)
	if err != nil {
		return types.Failure(err)
	}
	exists, err := c.accountExists(ctx, targetClient)
	if err != nil {
		return types.Failure(fmt.Errorf("preflight target: %w", err))
	}
	if !exists {
		return types.Failure(fmt.Errorf("target %s: %w", target, types.ErrNotInitialized))
	}

	ix, err := sfcdex.BuildUserMessageTarget(sfcdex.UserMessageTargetAccounts{
		Sender:        sender,
		SenderClient:  senderClient,
		Target:        target,
		TargetClient:  targetClient,
		SystemProgram: constants.SystemProgramID,
	}, sfcdex.UserMessageArgs{Content: content})
	if err != nil {
		return types.Failure(err)
	}

	c.log.Info().Str("op", "user_message_target").Str("target", target.String()).Msg("submitting message")
	sig, err := c.submit(ctx, signer, cfg, ix)
	if err != nil {
		return types.Failure(err)
	}
	return c.success(sig)
}

// GetSwapQuote computes a non-binding quote against the live pool. Quote
// failures are soft: the caller gets nil and a warning is logged, since a
// missing quote should degrade a UI, not crash a flow.
func (c *Client) GetSwapQuote(ctx context.Context, amountIn uint64, dir quote.Direction, slippageBps ...uint64) *quote.TradeQuote {
	pool, err := state.GetPoolInfo(ctx, c.rpc)
	if err != nil {
		c.log.Warn().Err(err).Msg("quote unavailable: pool read failed")
		return nil
	}
	q, err := quote.SwapQuote(pool.Reserves(), amountIn, dir, slippageBps...)
	if err != nil {
		c.log.Warn().Err(err).Msg("quote unavailable")
		return nil
	}
	return q
}

// GetPoolInfo returns the pool's current reserve balances.
func (c *Client) GetPoolInfo(ctx context.Context) (*state.PoolInfo, error) {
	return state.GetPoolInfo(ctx, c.rpc)
}

// GetUserBalance returns a participant's SOL, SFC, and LP balances.
func (c *Client) GetUserBalance(ctx context.Context, owner solana.PublicKey) (*state.UserBalance, error) {
	return state.GetUserBalance(ctx, c.rpc, owner)
}

// GetUserAccountState reports whether a participant is initialized,
// reconciling the existence cache with the ledger observation.
func (c *Client) GetUserAccountState(ctx context.Context, owner solana.PublicKey) (state.AccountState, error) {
	st, err := state.GetUserAccountState(ctx, c.rpc, owner)
	if err != nil {
		return st, err
	}
	if clientPDA, _, derr := sfcdex.DeriveClientPDA(owner); derr == nil {
		c.hints.Reconcile(clientPDA, st.Initialized)
	}
	return st, nil
}

// swapAccounts derives the shared account list of buy_sol and sell_sol,
// returning the sfc_vault bump alongside.
func (c *Client) swapAccounts(owner solana.PublicKey) (sfcdex.SwapAccounts, uint8, error) {
	clientPDA, _, err := sfcdex.DeriveClientPDA(owner)
	if err != nil {
		return sfcdex.SwapAccounts{}, 0, err
	}
	solVault, _, err := sfcdex.DeriveSolVaultPDA()
	if err != nil {
		return sfcdex.SwapAccounts{}, 0, err
	}
	sfcVault, sfcBump, err := sfcdex.DeriveSfcVaultPDA()
	if err != nil {
		return sfcdex.SwapAccounts{}, 0, err
	}
	userSfc, _, err := sfcdex.DeriveUserSfcPDA(owner)
	if err != nil {
		return sfcdex.SwapAccounts{}, 0, err
	}
	return sfcdex.SwapAccounts{
		User:          owner,
		Client:        clientPDA,
		SolVault:      solVault,
		SfcVault:      sfcVault,
		UserSfc:       userSfc,
		TokenProgram:  constants.TokenProgramID,
		SystemProgram: constants.SystemProgramID,
	}, sfcBump, nil
}

// freshQuote reads the pool and quotes the swap; a pool that cannot be
// read makes the swap fail fast rather than submit blind.
func (c *Client) freshQuote(ctx context.Context, amountIn uint64, dir quote.Direction, slippageBps uint64) (*quote.TradeQuote, error) {
	pool, err := state.GetPoolInfo(ctx, c.rpc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrPoolUnavailable, err)
	}
	return quote.SwapQuote(pool.Reserves(), amountIn, dir, slippageBps)
}

// accountExists answers an existence preflight with a ledger read. The
// hint cache is never authoritative here: it only flags divergence for the
// log, and is reconciled with whatever the ledger said.
func (c *Client) accountExists(ctx context.Context, pda solana.PublicKey) (bool, error) {
	hinted := c.hints.BelievedToExist(pda)
	acc, err := c.rpc.GetAccountInfo(ctx, pda)
	if err != nil {
		return false, err
	}
	exists := acc != nil
	if hinted && !exists {
		c.log.Debug().Str("account", pda.String()).Msg("hint cache diverged from ledger")
	}
	c.hints.Reconcile(pda, exists)
	return exists, nil
}

func (c *Client) submit(ctx context.Context, signer wallet.Signer, cfg opConfig, ixs ...solana.Instruction) (solana.Signature, error) {
	if cfg.jitoTip > 0 && !cfg.jitoTipAccount.IsZero() {
		tip := system.NewTransferInstruction(cfg.jitoTip, signer.PublicKey(), cfg.jitoTipAccount).Build()
		ixs = append(ixs, tip)
	}
	return c.builder.BuildSignSendAndConfirm(ctx, signer, nil, cfg.confirmation, ixs...)
}

func (c *Client) success(sig solana.Signature) types.TxResult {
	s := sig.String()
	return types.TxResult{
		Signature:   s,
		Success:     true,
		ExplorerURL: config.ExplorerTxURL(c.network, s),
	}
}
