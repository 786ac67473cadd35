package main

import (
	"github.com/spf13/cobra"
)

func newLiquidityCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Provide and withdraw pool liquidity",
	}
	cmd.AddCommand(newLiquidityAddCmd(opts), newLiquidityRemoveCmd(opts))
	return cmd
}

func newLiquidityAddCmd(opts *globalOpts) *cobra.Command {
	var amount uint64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Deposit SOL (plus the matching SFC leg) into the pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			res := deps.client.ProvideLiquidity(cmd.Context(), deps.signer, amount)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Uint64Var(&amount, "amount", 0, "SOL leg in lamports")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newLiquidityRemoveCmd(opts *globalOpts) *cobra.Command {
	var lpAmount uint64
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Burn LP tokens and withdraw both pool legs",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			res := deps.client.WithdrawLiquidity(cmd.Context(), deps.signer, lpAmount)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Uint64Var(&lpAmount, "lp-amount", 0, "LP tokens to burn")
	_ = cmd.MarkFlagRequired("lp-amount")
	return cmd
}
