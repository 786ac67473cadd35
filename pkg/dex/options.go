package dex

import (
	"github.com/gagliardetto/solana-go"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/jito"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/txbuilder"
)

// Option adjusts a single operation without changing the client's defaults.
type Option func(*opConfig)

type opConfig struct {
	jitoTip        uint64
	jitoTipAccount solana.PublicKey
	confirmation   txbuilder.ConfirmationLevel
}

func buildOpConfig(opts []Option) opConfig {
	cfg := opConfig{
		confirmation: txbuilder.ConfirmationConfirmed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithJitoTip adds a validator tip in lamports to the transaction. Only
// meaningful when the client routes submission through Jito; the tip
// account is chosen locally unless WithJitoTipAccount overrides it.
func WithJitoTip(lamports uint64) Option {
	return func(c *opConfig) {
		c.jitoTip = lamports
		if c.jitoTipAccount.IsZero() {
			c.jitoTipAccount = jito.GetRandomTipAccountLocal()
		}
	}
}

// WithJitoTipAccount pins the tip recipient instead of picking one at random.
func WithJitoTipAccount(account solana.PublicKey) Option {
	return func(c *opConfig) {
		c.jitoTipAccount = account
	}
}

// WithConfirmation overrides the confirmation level waited for after
// submission. Defaults to confirmed.
func WithConfirmation(level txbuilder.ConfirmationLevel) Option {
	return func(c *opConfig) {
		c.confirmation = level
	}
}
