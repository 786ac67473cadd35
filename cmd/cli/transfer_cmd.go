package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/program/sfcdex"
)

func newTransferCmd(opts *globalOpts) *cobra.Command {
	var (
		recipient string
		amount    uint64
		asset     string
	)
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send SOL or SFC directly to another participant",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := parsePubkey("recipient", recipient)
			if err != nil {
				return err
			}
			var tag sfcdex.Asset
			switch asset {
			case "sol":
				tag = sfcdex.AssetSol
			case "sfc":
				tag = sfcdex.AssetSfc
			default:
				return fmt.Errorf("asset must be sol or sfc")
			}

			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			res := deps.client.TransferAsset(cmd.Context(), deps.signer, pk, amount, tag)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient pubkey (base58)")
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in base units")
	cmd.Flags().StringVar(&asset, "asset", "sol", "asset to send (sol|sfc)")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newMessageCmd(opts *globalOpts) *cobra.Command {
	var (
		content string
		target  string
	)
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Record an on-chain message, broadcast or directed",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			if target == "" {
				res := deps.client.SendMessage(cmd.Context(), deps.signer, content)
				return printResult(cmd.OutOrStdout(), res)
			}
			pk, err := parsePubkey("target", target)
			if err != nil {
				return err
			}
			res := deps.client.SendMessageTo(cmd.Context(), deps.signer, pk, content)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "message content (max 512 bytes)")
	cmd.Flags().StringVar(&target, "target", "", "target pubkey for a directed message (empty = broadcast)")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
