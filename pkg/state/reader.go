// Package state reads raw DEX account state from the ledger. It contains no
// business logic: balances and existence checks only, so quotes and
// validators stay honest. Reads are never cached and never retried beyond
// what the shared RPC layer does for transport errors.
package state

import (
	"context"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	solanarpc "github.com/gagliardetto/solana-go/rpc"

	sdkrpc "github.com/sfcdex/sfcdex-go-sdk/pkg/rpc"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/program/sfcdex"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/quote"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/types"
)

// PoolInfo is a snapshot of the pool's reserve balances.
type PoolInfo struct {
	SolBalance uint64 // lamports held by sol_vault
	SfcBalance uint64 // SFC base units held by sfc_vault
}

// Reserves converts the snapshot into the quote engine's input type.
func (p PoolInfo) Reserves() quote.Reserves {
	return quote.Reserves{SolBalance: p.SolBalance, SfcBalance: p.SfcBalance}
}

// UserBalance is a snapshot of a participant's holdings.
type UserBalance struct {
	SolBalance uint64 // wallet lamports
	SfcBalance uint64 // user_sfc token balance
	LpBalance  uint64 // user_lp token balance
}

// AccountState reports a participant's initialization status. Initialized
// is derived solely from whether the derived client account exists;
// content is never inspected.
type AccountState struct {
	Initialized bool
}

// GetPoolInfo fetches both vault balances in a single batch read. A nil
// result with an error means the pool state is unknown, not empty; callers
// render that as "unavailable" rather than zero.
func GetPoolInfo(ctx context.Context, rpc *sdkrpc.Client) (*PoolInfo, error) {
	if rpc == nil {
		return nil, types.ErrNilRPC
	}
	solVault, _, err := sfcdex.DeriveSolVaultPDA()
	if err != nil {
		return nil, err
	}
	sfcVault, _, err := sfcdex.DeriveSfcVaultPDA()
	if err != nil {
		return nil, err
	}

	amap, err := rpc.GetMultipleAccounts(ctx, solVault, sfcVault)
	if err != nil {
		return nil, fmt.Errorf("fetch pool accounts: %w", err)
	}

	solAcc := amap[solVault.String()]
	if solAcc == nil {
		return nil, fmt.Errorf("sol_vault %s: %w", solVault, types.ErrAccountNotFound)
	}
	sfcBalance, err := decodeTokenAmount(amap[sfcVault.String()])
	if err != nil {
		return nil, fmt.Errorf("sfc_vault %s: %w", sfcVault, err)
	}

	return &PoolInfo{
		SolBalance: solAcc.Lamports,
		SfcBalance: sfcBalance,
	}, nil
}

// GetUserBalance fetches a participant's SOL, SFC, and LP balances in one
// batch read. Missing token accounts count as zero; an RPC failure yields a
// nil result so "unknown" stays distinguishable from "broke".
func GetUserBalance(ctx context.Context, rpc *sdkrpc.Client, owner solana.PublicKey) (*UserBalance, error) {
	if rpc == nil {
		return nil, types.ErrNilRPC
	}
	if err := types.ValidatePublicKey("owner", owner); err != nil {
		return nil, err
	}
	userSfc, _, err := sfcdex.DeriveUserSfcPDA(owner)
	if err != nil {
		return nil, err
	}
	userLp, _, err := sfcdex.DeriveUserLpPDA(owner)
	if err != nil {
		return nil, err
	}

	amap, err := rpc.GetMultipleAccounts(ctx, owner, userSfc, userLp)
	if err != nil {
		return nil, fmt.Errorf("fetch user accounts: %w", err)
	}

	bal := &UserBalance{}
	if acc := amap[owner.String()]; acc != nil {
		bal.SolBalance = acc.Lamports
	}
	if amt, err := decodeTokenAmount(amap[userSfc.String()]); err == nil {
		bal.SfcBalance = amt
	}
	if amt, err := decodeTokenAmount(amap[userLp.String()]); err == nil {
		bal.LpBalance = amt
	}
	return bal, nil
}

// GetUserAccountState checks whether a participant has been initialized.
// Existence of the derived client account is the only signal.
func GetUserAccountState(ctx context.Context, rpc *sdkrpc.Client, owner solana.PublicKey) (AccountState, error) {
	if rpc == nil {
		return AccountState{}, types.ErrNilRPC
	}
	if err := types.ValidatePublicKey("owner", owner); err != nil {
		return AccountState{}, err
	}
	client, _, err := sfcdex.DeriveClientPDA(owner)
	if err != nil {
		return AccountState{}, err
	}
	acc, err := rpc.GetAccountInfo(ctx, client)
	if err != nil {
		return AccountState{}, fmt.Errorf("fetch client account: %w", err)
	}
	return AccountState{Initialized: acc != nil}, nil
}

// decodeTokenAmount extracts the amount from an SPL token account.
// A nil account decodes to zero.
func decodeTokenAmount(acc *solanarpc.Account) (uint64, error) {
	if acc == nil || acc.Data == nil {
		return 0, nil
	}
	data := acc.Data.GetBinary()
	if len(data) == 0 {
		return 0, nil
	}
	dec := bin.NewBinDecoder(data)
	var tokAcc token.Account
	if err := dec.Decode(&tokAcc); err != nil {
		return 0, fmt.Errorf("decode token account: %w", err)
	}
	return tokAcc.Amount, nil
}
