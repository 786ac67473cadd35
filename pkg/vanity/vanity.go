// Package vanity grinds wallet keypairs whose base58 address matches a
// prefix or suffix. Used by the CLI keygen command for memorable trading
// wallets; plain keygen is just Generate with no pattern at the call site.
package vanity

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/gagliardetto/solana-go"
)

// base58Alphabet is the character set of Solana addresses. Note the absence
// of 0, O, I, and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// validatePattern rejects patterns containing characters that can never
// appear in a base58 address; without this check such a search would grind
// forever.
func validatePattern(pattern string, caseInsensitive bool) error {
	for _, r := range pattern {
		if strings.ContainsRune(base58Alphabet, r) {
			continue
		}
		if caseInsensitive &&
			(strings.ContainsRune(base58Alphabet, unicode.ToUpper(r)) ||
				strings.ContainsRune(base58Alphabet, unicode.ToLower(r))) {
			continue
		}
		return fmt.Errorf("%q is not a base58 character, pattern can never match", r)
	}
	return nil
}

// Result represents a keypair search result.
type Result struct {
	PrivateKey solana.PrivateKey
	PublicKey  solana.PublicKey
	Attempts   uint64
	Duration   time.Duration
}

// Options configures keypair generation.
type Options struct {
	Prefix          string        // Required prefix
	Suffix          string        // Required suffix
	Workers         int           // Number of parallel workers (default: NumCPU)
	Timeout         time.Duration // Max search time (0 = no timeout)
	CaseInsensitive bool          // Case-insensitive matching
}

// Generate searches for a keypair matching the specified criteria.
//
// Example:
//
//	result, err := vanity.Generate(ctx, vanity.Options{Prefix: "SFC"})
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.Prefix == "" && opts.Suffix == "" {
		return nil, fmt.Errorf("prefix or suffix is required")
	}
	if err := validatePattern(opts.Prefix, opts.CaseInsensitive); err != nil {
		return nil, fmt.Errorf("prefix: %w", err)
	}
	if err := validatePattern(opts.Suffix, opts.CaseInsensitive); err != nil {
		return nil, fmt.Errorf("suffix: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	prefix := opts.Prefix
	suffix := opts.Suffix
	if opts.CaseInsensitive {
		prefix = strings.ToLower(prefix)
		suffix = strings.ToLower(suffix)
	}

	searchCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var (
		found    atomic.Bool
		attempts atomic.Uint64
		result   *Result
		resultMu sync.Mutex
		wg       sync.WaitGroup
	)

	startTime := time.Now()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for !found.Load() {
				select {
				case <-searchCtx.Done():
					return
				default:
				}

				key, err := solana.NewRandomPrivateKey()
				if err != nil {
					continue
				}

				attempts.Add(1)
				addr := key.PublicKey().String()

				checkAddr := addr
				if opts.CaseInsensitive {
					checkAddr = strings.ToLower(addr)
				}

				matchPrefix := prefix == "" || strings.HasPrefix(checkAddr, prefix)
				matchSuffix := suffix == "" || strings.HasSuffix(checkAddr, suffix)

				if matchPrefix && matchSuffix {
					if found.CompareAndSwap(false, true) {
						resultMu.Lock()
						result = &Result{
							PrivateKey: key,
							PublicKey:  key.PublicKey(),
							Attempts:   attempts.Load(),
							Duration:   time.Since(startTime),
						}
						resultMu.Unlock()
					}
					return
				}
			}
		}()
	}

	wg.Wait()

	if result != nil {
		return result, nil
	}

	if searchCtx.Err() != nil {
		return nil, fmt.Errorf("search cancelled after %d attempts: %w", attempts.Load(), searchCtx.Err())
	}

	return nil, fmt.Errorf("search failed after %d attempts", attempts.Load())
}

// EstimateDifficulty estimates the average attempts for a pattern length.
// Base58 has 58 possible characters per position.
func EstimateDifficulty(prefixLen, suffixLen int) uint64 {
	total := prefixLen + suffixLen
	if total == 0 {
		return 1
	}
	result := uint64(1)
	for i := 0; i < total; i++ {
		result *= 58
	}
	return result
}
