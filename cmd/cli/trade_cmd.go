package main

import (
	"github.com/spf13/cobra"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/dex"
)

func newTradeCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Swap SOL and SFC through the pool",
	}
	cmd.AddCommand(newSellSolCmd(opts), newBuySolCmd(opts))
	return cmd
}

func addSwapFlags(cmd *cobra.Command, amountIn, slippageBps *uint64, jitoTip *uint64) {
	cmd.Flags().Uint64Var(amountIn, "amount-in", 0, "input amount in base units")
	cmd.Flags().Uint64Var(slippageBps, "slippage-bps", 0, "slippage tolerance in bps (0 = default 100)")
	cmd.Flags().Uint64Var(jitoTip, "jito-tip", 0, "validator tip in lamports (requires --jito-endpoint)")
	_ = cmd.MarkFlagRequired("amount-in")
}

func swapOptions(jitoTip uint64) []dex.Option {
	if jitoTip == 0 {
		return nil
	}
	return []dex.Option{dex.WithJitoTip(jitoTip)}
}

func newSellSolCmd(opts *globalOpts) *cobra.Command {
	var amountIn, slippageBps, jitoTip uint64
	cmd := &cobra.Command{
		Use:   "sell-sol",
		Short: "Swap SOL for SFC",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			res := deps.client.SellSol(cmd.Context(), deps.signer, dex.SwapParams{
				AmountIn:    amountIn,
				SlippageBps: slippageBps,
			}, swapOptions(jitoTip)...)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	addSwapFlags(cmd, &amountIn, &slippageBps, &jitoTip)
	return cmd
}

func newBuySolCmd(opts *globalOpts) *cobra.Command {
	var amountIn, slippageBps, jitoTip uint64
	cmd := &cobra.Command{
		Use:   "buy-sol",
		Short: "Swap SFC for SOL",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			res := deps.client.BuySol(cmd.Context(), deps.signer, dex.SwapParams{
				AmountIn:    amountIn,
				SlippageBps: slippageBps,
			}, swapOptions(jitoTip)...)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	addSwapFlags(cmd, &amountIn, &slippageBps, &jitoTip)
	return cmd
}
