package sfcdex

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func testSwapAccounts(t *testing.T) SwapAccounts {
	t.Helper()
	owner := solana.NewWallet().PublicKey()
	client, _, err := DeriveClientPDA(owner)
	require.NoError(t, err)
	solVault, _, err := DeriveSolVaultPDA()
	require.NoError(t, err)
	sfcVault, _, err := DeriveSfcVaultPDA()
	require.NoError(t, err)
	userSfc, _, err := DeriveUserSfcPDA(owner)
	require.NoError(t, err)
	return SwapAccounts{
		User:          owner,
		Client:        client,
		SolVault:      solVault,
		SfcVault:      sfcVault,
		UserSfc:       userSfc,
		TokenProgram:  solana.TokenProgramID,
		SystemProgram: solana.SystemProgramID,
	}
}

func TestBuildSellSolEncoding(t *testing.T) {
	accts := testSwapAccounts(t)
	ix, err := BuildSellSol(accts, SellSolArgs{
		AmountIn:  1_000_000_000,
		MinSfcOut: 977_286_454_053,
		VaultBump: 254,
	})
	require.NoError(t, err)
	require.Equal(t, ProgramKey, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+8+8+1)
	require.Equal(t, Instruction_SellSol[:], data[:8])
	require.Equal(t, uint64(1_000_000_000), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, uint64(977_286_454_053), binary.LittleEndian.Uint64(data[16:24]))
	require.Equal(t, byte(254), data[24])

	metas := ix.Accounts()
	require.Len(t, metas, 7)
	require.Equal(t, accts.User, metas[0].PublicKey)
	require.True(t, metas[0].IsSigner)
	require.True(t, metas[0].IsWritable)
	require.Equal(t, accts.Client, metas[1].PublicKey)
	require.False(t, metas[1].IsSigner)
	require.True(t, metas[1].IsWritable)
	require.Equal(t, accts.SolVault, metas[2].PublicKey)
	require.Equal(t, accts.SfcVault, metas[3].PublicKey)
	require.Equal(t, accts.UserSfc, metas[4].PublicKey)
	require.False(t, metas[5].IsWritable)
	require.False(t, metas[6].IsWritable)
}

func TestBuildBuySolEncoding(t *testing.T) {
	ix, err := BuildBuySol(testSwapAccounts(t), BuySolArgs{
		AmountIn:  1_000_000_000_000,
		MinSolOut: 977_286_453,
	})
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+8+8)
	require.Equal(t, Instruction_BuySol[:], data[:8])
	require.Equal(t, uint64(1_000_000_000_000), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, uint64(977_286_453), binary.LittleEndian.Uint64(data[16:24]))
}

func TestBuildSwapRejectsMissingAccount(t *testing.T) {
	accts := testSwapAccounts(t)
	accts.SfcVault = solana.PublicKey{}
	_, err := BuildSellSol(accts, SellSolArgs{AmountIn: 1, MinSfcOut: 1})
	require.Error(t, err)
}

func TestBuildInitUserNoArgs(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	client, _, _ := DeriveClientPDA(owner)
	userSfc, _, _ := DeriveUserSfcPDA(owner)
	userLp, _, _ := DeriveUserLpPDA(owner)
	sfcVault, _, _ := DeriveSfcVaultPDA()
	lpMint, _, _ := DeriveLpMintPDA()

	ix, err := BuildInitUser(InitUserAccounts{
		User:          owner,
		Client:        client,
		UserSfc:       userSfc,
		UserLp:        userLp,
		SfcVault:      sfcVault,
		LpMint:        lpMint,
		TokenProgram:  solana.TokenProgramID,
		SystemProgram: solana.SystemProgramID,
		Rent:          solana.SysVarRentPubkey,
	})
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Equal(t, Instruction_InitUser[:], data)
	require.Len(t, ix.Accounts(), 9)
}

func TestBuildTransferAssetEncoding(t *testing.T) {
	sender := solana.NewWallet().PublicKey()
	recipient := solana.NewWallet().PublicKey()
	senderClient, _, _ := DeriveClientPDA(sender)
	senderSfc, _, _ := DeriveUserSfcPDA(sender)
	recipientSfc, _, _ := DeriveUserSfcPDA(recipient)

	accts := TransferAssetAccounts{
		Sender:        sender,
		SenderClient:  senderClient,
		Recipient:     recipient,
		SenderSfc:     senderSfc,
		RecipientSfc:  recipientSfc,
		TokenProgram:  solana.TokenProgramID,
		SystemProgram: solana.SystemProgramID,
	}

	ix, err := BuildTransferAsset(accts, TransferAssetArgs{Amount: 42, Asset: AssetSfc})
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+8+1)
	require.Equal(t, Instruction_TransferAsset[:], data[:8])
	require.Equal(t, uint64(42), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, byte(AssetSfc), data[16])

	_, err = BuildTransferAsset(accts, TransferAssetArgs{Amount: 42, Asset: Asset(7)})
	require.Error(t, err)
}

func TestBuildUserMessageEncoding(t *testing.T) {
	sender := solana.NewWallet().PublicKey()
	senderClient, _, _ := DeriveClientPDA(sender)

	ix, err := BuildUserMessage(UserMessageAccounts{
		Sender:        sender,
		SenderClient:  senderClient,
		SystemProgram: solana.SystemProgramID,
	}, UserMessageArgs{Content: "gm"})
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	// discriminator + borsh string (u32 length prefix + bytes)
	require.Len(t, data, 8+4+2)
	require.Equal(t, Instruction_UserMessage[:], data[:8])
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[8:12]))
	require.Equal(t, "gm", string(data[12:]))
}

func TestBuildUserMessageTargetAccounts(t *testing.T) {
	sender := solana.NewWallet().PublicKey()
	target := solana.NewWallet().PublicKey()
	senderClient, _, _ := DeriveClientPDA(sender)
	targetClient, _, _ := DeriveClientPDA(target)

	ix, err := BuildUserMessageTarget(UserMessageTargetAccounts{
		Sender:        sender,
		SenderClient:  senderClient,
		Target:        target,
		TargetClient:  targetClient,
		SystemProgram: solana.SystemProgramID,
	}, UserMessageArgs{Content: "hello"})
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Equal(t, Instruction_UserMessageTarget[:], data[:8])

	metas := ix.Accounts()
	require.Len(t, metas, 5)
	require.Equal(t, target, metas[2].PublicKey)
	require.False(t, metas[2].IsWritable)
}

func TestLiquidityArgsEncoding(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	client, _, _ := DeriveClientPDA(owner)
	solVault, solBump, _ := DeriveSolVaultPDA()
	sfcVault, _, _ := DeriveSfcVaultPDA()
	lpMint, _, _ := DeriveLpMintPDA()
	userSfc, _, _ := DeriveUserSfcPDA(owner)
	userLp, _, _ := DeriveUserLpPDA(owner)

	accts := LiquidityAccounts{
		User:          owner,
		Client:        client,
		SolVault:      solVault,
		SfcVault:      sfcVault,
		LpMint:        lpMint,
		UserSfc:       userSfc,
		UserLp:        userLp,
		TokenProgram:  solana.TokenProgramID,
		SystemProgram: solana.SystemProgramID,
	}

	ix, err := BuildProvideLiquidity(accts, ProvideLiquidityArgs{Amount: 100_000_000, VaultBump: solBump})
	require.NoError(t, err)
	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+8+1)
	require.Equal(t, Instruction_ProvideLiquidity[:], data[:8])
	require.Equal(t, solBump, data[16])

	ix, err = BuildWithdrawLiquidity(accts, WithdrawLiquidityArgs{LpAmount: 55, VaultBump: solBump})
	require.NoError(t, err)
	data, err = ix.Data()
	require.NoError(t, err)
	require.Equal(t, Instruction_WithdrawLiquidity[:], data[:8])
	require.Equal(t, uint64(55), binary.LittleEndian.Uint64(data[8:16]))
}
