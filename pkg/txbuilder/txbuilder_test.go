package txbuilder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/config"
	wraprpc "github.com/sfcdex/sfcdex-go-sdk/pkg/rpc"
	"github.com/sfcdex/sfcdex-go-sdk/pkg/types"
)

const stubSignature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"

// statusStub serves getSignatureStatuses with a fixed result and answers
// everything else with null, enough to drive the confirmation loop.
func statusStub(t *testing.T, statusResult string) *Builder {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result := "null"
		if req.Method == "getSignatureStatuses" {
			result = statusResult
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultRPCConfig()
	cfg.RPCURL = srv.URL
	cfg.Retry.Enabled = false
	cfg.RateLimit.RPS = 0
	return NewBuilder(wraprpc.NewClient(cfg), "")
}

func TestWaitForConfirmationSuccess(t *testing.T) {
	b := statusStub(t, `{"context":{"slot":1},"value":[{"slot":1,"confirmations":4,"err":null,"confirmationStatus":"confirmed"}]}`)
	sig := solana.MustSignatureFromBase58(stubSignature)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.WaitForConfirmation(ctx, sig, ConfirmationConfirmed); err != nil {
		t.Fatalf("confirmation: %v", err)
	}
}

func TestWaitForConfirmationDecodesProgramError(t *testing.T) {
	b := statusStub(t, `{"context":{"slot":1},"value":[{"slot":1,"confirmations":4,"err":{"InstructionError":[0,{"Custom":6000}]},"confirmationStatus":"confirmed"}]}`)
	sig := solana.MustSignatureFromBase58(stubSignature)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := b.WaitForConfirmation(ctx, sig, ConfirmationConfirmed)
	if err == nil {
		t.Fatal("expected a failed-transaction error")
	}
	if !errors.Is(err, types.ErrTransactionFailed) {
		t.Fatalf("error %v does not wrap ErrTransactionFailed", err)
	}
	var perr *types.ProgramError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v does not carry a ProgramError", err)
	}
	if perr.Code != 6000 {
		t.Fatalf("code = %d, want 6000", perr.Code)
	}
	if !strings.Contains(perr.Message, "minimum output") {
		t.Fatalf("message %q not decoded through the error table", perr.Message)
	}
}

func TestWaitForConfirmationTimesOut(t *testing.T) {
	// Status never becomes visible; the deadline must surface as the
	// confirmation-timeout sentinel, not a bare context error.
	b := statusStub(t, `{"context":{"slot":1},"value":[null]}`)
	sig := solana.MustSignatureFromBase58(stubSignature)

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	err := b.WaitForConfirmation(ctx, sig, ConfirmationConfirmed)
	if !errors.Is(err, types.ErrConfirmationTimeout) {
		t.Fatalf("error %v does not wrap ErrConfirmationTimeout", err)
	}
}
