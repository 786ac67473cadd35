package sfcdex

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// encodeData concatenates the instruction discriminator with Borsh-encoded args.
func encodeData(disc [8]byte, args interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(disc[:])
	if args != nil {
		if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
			return nil, fmt.Errorf("encode args: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func requireKeys(pairs map[string]solana.PublicKey) error {
	for name, pk := range pairs {
		if pk.IsZero() {
			return fmt.Errorf("account %q is not set", name)
		}
	}
	return nil
}

// InitUserAccounts is the positional account list of init_user.
type InitUserAccounts struct {
	User          solana.PublicKey // signer, writable (pays rent)
	Client        solana.PublicKey // writable, created
	UserSfc       solana.PublicKey // writable, created
	UserLp        solana.PublicKey // writable, created
	SfcVault      solana.PublicKey
	LpMint        solana.PublicKey
	TokenProgram  solana.PublicKey
	SystemProgram solana.PublicKey
	Rent          solana.PublicKey
}

// BuildInitUser builds the init_user instruction. The program fails the call
// if the client account already exists; callers are expected to pre-flight.
func BuildInitUser(accts InitUserAccounts) (solana.Instruction, error) {
	if err := requireKeys(map[string]solana.PublicKey{
		"user": accts.User, "client": accts.Client, "user_sfc": accts.UserSfc,
		"user_lp": accts.UserLp, "sfc_vault": accts.SfcVault, "lp_mint": accts.LpMint,
		"token_program": accts.TokenProgram, "system_program": accts.SystemProgram,
		"rent": accts.Rent,
	}); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_InitUser, nil)
	if err != nil {
		return nil, err
	}
	metas := []*solana.AccountMeta{
		solana.NewAccountMeta(accts.User, true, true),
		solana.NewAccountMeta(accts.Client, true, false),
		solana.NewAccountMeta(accts.UserSfc, true, false),
		solana.NewAccountMeta(accts.UserLp, true, false),
		solana.NewAccountMeta(accts.SfcVault, false, false),
		solana.NewAccountMeta(accts.LpMint, false, false),
		solana.NewAccountMeta(accts.TokenProgram, false, false),
		solana.NewAccountMeta(accts.SystemProgram, false, false),
		solana.NewAccountMeta(accts.Rent, false, false),
	}
	return solana.NewInstruction(ProgramKey, metas, data), nil
}

// SwapAccounts is the shared positional account list of buy_sol and sell_sol.
type SwapAccounts struct {
	User          solana.PublicKey // signer, writable
	Client        solana.PublicKey // writable
	SolVault      solana.PublicKey // writable
	SfcVault      solana.PublicKey // writable
	UserSfc       solana.PublicKey // writable
	TokenProgram  solana.PublicKey
	SystemProgram solana.PublicKey
}

func (a SwapAccounts) metas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		solana.NewAccountMeta(a.User, true, true),
		solana.NewAccountMeta(a.Client, true, false),
		solana.NewAccountMeta(a.SolVault, true, false),
		solana.NewAccountMeta(a.SfcVault, true, false),
		solana.NewAccountMeta(a.UserSfc, true, false),
		solana.NewAccountMeta(a.TokenProgram, false, false),
		solana.NewAccountMeta(a.SystemProgram, false, false),
	}
}

func (a SwapAccounts) validate() error {
	return requireKeys(map[string]solana.PublicKey{
		"user": a.User, "client": a.Client, "sol_vault": a.SolVault,
		"sfc_vault": a.SfcVault, "user_sfc": a.UserSfc,
		"token_program": a.TokenProgram, "system_program": a.SystemProgram,
	})
}

// BuySolArgs are the args of buy_sol (SFC in, SOL out).
type BuySolArgs struct {
	AmountIn  uint64 // SFC base units
	MinSolOut uint64 // lamports, slippage bound enforced program-side
}

// BuildBuySol builds the buy_sol instruction.
func BuildBuySol(accts SwapAccounts, args BuySolArgs) (solana.Instruction, error) {
	if err := accts.validate(); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_BuySol, args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramKey, accts.metas(), data), nil
}

// SellSolArgs are the args of sell_sol (SOL in, SFC out). The sfc_vault bump
// travels explicitly because the receiving side is program-authority
// controlled and the program re-checks the derivation.
type SellSolArgs struct {
	AmountIn  uint64 // lamports
	MinSfcOut uint64 // SFC base units
	VaultBump uint8
}

// BuildSellSol builds the sell_sol instruction.
func BuildSellSol(accts SwapAccounts, args SellSolArgs) (solana.Instruction, error) {
	if err := accts.validate(); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_SellSol, args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramKey, accts.metas(), data), nil
}

// LiquidityAccounts is the positional account list shared by
// provide_liquidity and withdraw_liquidity.
type LiquidityAccounts struct {
	User          solana.PublicKey // signer, writable
	Client        solana.PublicKey // writable
	SolVault      solana.PublicKey // writable
	SfcVault      solana.PublicKey // writable
	LpMint        solana.PublicKey // writable
	UserSfc       solana.PublicKey // writable
	UserLp        solana.PublicKey // writable
	TokenProgram  solana.PublicKey
	SystemProgram solana.PublicKey
}

func (a LiquidityAccounts) metas() []*solana.AccountMeta {
	return []*solana.AccountMeta{
		solana.NewAccountMeta(a.User, true, true),
		solana.NewAccountMeta(a.Client, true, false),
		solana.NewAccountMeta(a.SolVault, true, false),
		solana.NewAccountMeta(a.SfcVault, true, false),
		solana.NewAccountMeta(a.LpMint, true, false),
		solana.NewAccountMeta(a.UserSfc, true, false),
		solana.NewAccountMeta(a.UserLp, true, false),
		solana.NewAccountMeta(a.TokenProgram, false, false),
		solana.NewAccountMeta(a.SystemProgram, false, false),
	}
}

func (a LiquidityAccounts) validate() error {
	return requireKeys(map[string]solana.PublicKey{
		"user": a.User, "client": a.Client, "sol_vault": a.SolVault,
		"sfc_vault": a.SfcVault, "lp_mint": a.LpMint, "user_sfc": a.UserSfc,
		"user_lp": a.UserLp, "token_program": a.TokenProgram,
		"system_program": a.SystemProgram,
	})
}

// ProvideLiquidityArgs are the args of provide_liquidity. Amount is the SOL
// leg in lamports; the program takes the matching SFC leg at the current
// pool ratio.
type ProvideLiquidityArgs struct {
	Amount    uint64
	VaultBump uint8
}

// BuildProvideLiquidity builds the provide_liquidity instruction.
func BuildProvideLiquidity(accts LiquidityAccounts, args ProvideLiquidityArgs) (solana.Instruction, error) {
	if err := accts.validate(); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_ProvideLiquidity, args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramKey, accts.metas(), data), nil
}

// WithdrawLiquidityArgs are the args of withdraw_liquidity.
type WithdrawLiquidityArgs struct {
	LpAmount  uint64
	VaultBump uint8
}

// BuildWithdrawLiquidity builds the withdraw_liquidity instruction.
func BuildWithdrawLiquidity(accts LiquidityAccounts, args WithdrawLiquidityArgs) (solana.Instruction, error) {
	if err := accts.validate(); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_WithdrawLiquidity, args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(ProgramKey, accts.metas(), data), nil
}

// TransferAssetAccounts is the positional account list of transfer_asset.
// The transfer bypasses the pool entirely.
type TransferAssetAccounts struct {
	Sender        solana.PublicKey // signer, writable
	SenderClient  solana.PublicKey // writable
	Recipient     solana.PublicKey // writable
	SenderSfc     solana.PublicKey // writable
	RecipientSfc  solana.PublicKey // writable
	TokenProgram  solana.PublicKey
	SystemProgram solana.PublicKey
}

// TransferAssetArgs are the args of transfer_asset.
type TransferAssetArgs struct {
	Amount uint64
	Asset  Asset
}

// BuildTransferAsset builds the transfer_asset instruction.
func BuildTransferAsset(accts TransferAssetAccounts, args TransferAssetArgs) (solana.Instruction, error) {
	if err := requireKeys(map[string]solana.PublicKey{
		"sender": accts.Sender, "sender_client": accts.SenderClient,
		"recipient": accts.Recipient, "sender_sfc": accts.SenderSfc,
		"recipient_sfc": accts.RecipientSfc, "token_program": accts.TokenProgram,
		"system_program": accts.SystemProgram,
	}); err != nil {
		return nil, err
	}
	if args.Asset != AssetSol && args.Asset != AssetSfc {
		return nil, fmt.Errorf("unknown asset tag %d", args.Asset)
	}
	data, err := encodeData(Instruction_TransferAsset, args)
	if err != nil {
		return nil, err
	}
	metas := []*solana.AccountMeta{
		solana.NewAccountMeta(accts.Sender, true, true),
		solana.NewAccountMeta(accts.SenderClient, true, false),
		solana.NewAccountMeta(accts.Recipient, true, false),
		solana.NewAccountMeta(accts.SenderSfc, true, false),
		solana.NewAccountMeta(accts.RecipientSfc, true, false),
		solana.NewAccountMeta(accts.TokenProgram, false, false),
		solana.NewAccountMeta(accts.SystemProgram, false, false),
	}
	return solana.NewInstruction(ProgramKey, metas, data), nil
}

// UserMessageAccounts is the positional account list of user_message.
type UserMessageAccounts struct {
	Sender        solana.PublicKey // signer, writable
	SenderClient  solana.PublicKey // writable
	SystemProgram solana.PublicKey
}

// UserMessageArgs are the args of user_message and user_message_target.
type UserMessageArgs struct {
	Content string
}

// BuildUserMessage builds the broadcast user_message instruction.
func BuildUserMessage(accts UserMessageAccounts, args UserMessageArgs) (solana.Instruction, error) {
	if err := requireKeys(map[string]solana.PublicKey{
		"sender": accts.Sender, "sender_client": accts.SenderClient,
		"system_program": accts.SystemProgram,
	}); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_UserMessage, args)
	if err != nil {
		return nil, err
	}
	metas := []*solana.AccountMeta{
		solana.NewAccountMeta(accts.Sender, true, true),
		solana.NewAccountMeta(accts.SenderClient, true, false),
		solana.NewAccountMeta(accts.SystemProgram, false, false),
	}
	return solana.NewInstruction(ProgramKey, metas, data), nil
}

// UserMessageTargetAccounts is the positional account list of user_message_target.
type UserMessageTargetAccounts struct {
	Sender        solana.PublicKey // signer, writable
	SenderClient  solana.PublicKey // writable
	Target        solana.PublicKey
	TargetClient  solana.PublicKey
	SystemProgram solana.PublicKey
}

// BuildUserMessageTarget builds the directed user_message_target instruction.
func BuildUserMessageTarget(accts UserMessageTargetAccounts, args UserMessageArgs) (solana.Instruction, error) {
	if err := requireKeys(map[string]solana.PublicKey{
		"sender": accts.Sender, "sender_client": accts.SenderClient,
		"target": accts.Target, "target_client": accts.TargetClient,
		"system_program": accts.SystemProgram,
	}); err != nil {
		return nil, err
	}
	data, err := encodeData(Instruction_UserMessageTarget, args)
	if err != nil {
		return nil, err
	}
	metas := []*solana.AccountMeta{
		solana.NewAccountMeta(accts.Sender, true, true),
		solana.NewAccountMeta(accts.SenderClient, true, false),
		solana.NewAccountMeta(accts.Target, false, false),
		solana.NewAccountMeta(accts.TargetClient, false, false),
		solana.NewAccountMeta(accts.SystemProgram, false, false),
	}
	return solana.NewInstruction(ProgramKey, metas, data), nil
}
