package main

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/vanity"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/wallet"
)

func newAccountCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Participant account lifecycle",
	}
	cmd.AddCommand(
		newAccountInitCmd(opts),
		newAccountBalanceCmd(opts),
		newAccountStateCmd(opts),
		newAccountKeygenCmd(),
	)
	return cmd
}

func newAccountInitCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the wallet's DEX account",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps(cmd, opts)
			if err != nil {
				return err
			}
			res := deps.client.InitializeAccount(cmd.Context(), deps.signer)
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

func newAccountBalanceCmd(opts *globalOpts) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show a participant's SOL, SFC, and LP balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := parsePubkey("owner", owner)
			if err != nil {
				return err
			}
			client := newReadDeps(cmd, opts)
			bal, err := client.GetUserBalance(cmd.Context(), pk)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sol=%s SOL\nsfc=%d\nlp=%d\n", formatSol(bal.SolBalance), bal.SfcBalance, bal.LpBalance)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner pubkey (base58)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newAccountStateCmd(opts *globalOpts) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show whether a participant is initialized",
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := parsePubkey("owner", owner)
			if err != nil {
				return err
			}
			client := newReadDeps(cmd, opts)
			st, err := client.GetUserAccountState(cmd.Context(), pk)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized=%t\n", st.Initialized)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner pubkey (base58)")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newAccountKeygenCmd() *cobra.Command {
	var (
		prefix     string
		suffix     string
		outPath    string
		timeoutSec int
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Grind a wallet keypair, optionally matching a pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var key solana.PrivateKey
			if prefix == "" && suffix == "" {
				plain, err := vanityPlainKey()
				if err != nil {
					return err
				}
				key = plain
				fmt.Fprintf(out, "pubkey=%s\n", key.PublicKey())
			} else {
				res, err := vanity.Generate(cmd.Context(), vanity.Options{
					Prefix:  prefix,
					Suffix:  suffix,
					Timeout: time.Duration(timeoutSec) * time.Second,
				})
				if err != nil {
					return err
				}
				key = res.PrivateKey
				fmt.Fprintf(out, "pubkey=%s\nattempts=%d\nduration=%s\n",
					res.PublicKey, res.Attempts, res.Duration)
			}

			if outPath != "" {
				if err := wallet.SaveKeygen(outPath, key); err != nil {
					return err
				}
				fmt.Fprintf(out, "keypair=%s\n", outPath)
				return nil
			}
			fmt.Fprintf(out, "private=%s\n", key.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "required address prefix")
	cmd.Flags().StringVar(&suffix, "suffix", "", "required address suffix")
	cmd.Flags().StringVar(&outPath, "out", "", "write the keypair as a solana-keygen json file instead of printing it")
	cmd.Flags().IntVar(&timeoutSec, "timeout-sec", 0, "max search time (0 = unlimited)")
	return cmd
}
