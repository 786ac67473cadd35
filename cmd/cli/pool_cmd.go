package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/quote"
)

func newPoolCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Pool state and pricing",
	}
	cmd.AddCommand(newPoolInfoCmd(opts), newPoolPriceCmd(opts), newPoolQuoteCmd(opts))
	return cmd
}

func newPoolInfoCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show pool reserves",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newReadDeps(cmd, opts)
			info, err := client.GetPoolInfo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sol_reserve=%s SOL\nsfc_reserve=%d\n", formatSol(info.SolBalance), info.SfcBalance)
			return nil
		},
	}
}

func newPoolPriceCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Show pool spot price",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newReadDeps(cmd, opts)
			info, err := client.GetPoolInfo(cmd.Context())
			if err != nil {
				return err
			}
			price, err := quote.PoolPrice(info.Reserves())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "price=%d lamports per SFC base unit (x1e9)\n", price)
			return nil
		},
	}
}

func newPoolQuoteCmd(opts *globalOpts) *cobra.Command {
	var (
		amountIn    uint64
		direction   string
		slippageBps uint64
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a swap against the live pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir quote.Direction
			switch direction {
			case "sol-to-sfc":
				dir = quote.SolToSfc
			case "sfc-to-sol":
				dir = quote.SfcToSol
			default:
				return fmt.Errorf("direction must be sol-to-sfc or sfc-to-sol")
			}

			client := newReadDeps(cmd, opts)
			info, err := client.GetPoolInfo(cmd.Context())
			if err != nil {
				return err
			}
			q, err := quote.SwapQuote(info.Reserves(), amountIn, dir, slippageBps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "direction=%s\n", q.Direction)
			fmt.Fprintf(out, "input=%d\noutput=%d\nfee=%d\nmin_received=%d\n", q.InputAmount, q.OutputAmount, q.Fee, q.MinReceived)
			fmt.Fprintf(out, "spot_price=%d\nexecution_price=%d\nprice_impact_bps=%d\n", q.SpotPrice, q.ExecutionPrice, q.PriceImpactBps)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&amountIn, "amount-in", 0, "input amount in base units")
	cmd.Flags().StringVar(&direction, "direction", "sol-to-sfc", "swap direction (sol-to-sfc|sfc-to-sol)")
	cmd.Flags().Uint64Var(&slippageBps, "slippage-bps", 100, "slippage tolerance in bps")
	_ = cmd.MarkFlagRequired("amount-in")
	return cmd
}
