package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sfcdex/sfcdex-go-sdk/pkg/program/sfcdex"
)

// Common SDK errors
var (
	// Parameter validation errors
	ErrNilRPC           = errors.New("rpc client is nil")
	ErrNilSigner        = errors.New("signer is nil")
	ErrZeroAmount       = errors.New("amount must be greater than 0")
	ErrInvalidSlippage  = errors.New("slippage bps must be <= 10000")
	ErrInvalidPublicKey = errors.New("invalid public key")

	// State-conflict errors
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("account not initialized")
	ErrAccountNotFound    = errors.New("account not found")

	// Pool errors
	ErrEmptyPool       = errors.New("pool has no liquidity")
	ErrPoolUnavailable = errors.New("pool state unavailable")

	// Transaction errors
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrSimulationFailed    = errors.New("simulation failed")
	ErrConfirmationTimeout = errors.New("confirmation timeout")
)

// RPCError wraps RPC failures with operation context.
type RPCError struct {
	Op  string
	Err error
}

func (e RPCError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e RPCError) Unwrap() error {
	return e.Err
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// ProgramError represents on-chain program execution errors.
type ProgramError struct {
	Code    int
	Message string
	Logs    []string
}

func (e ProgramError) Error() string {
	return fmt.Sprintf("program error [%d]: %s", e.Code, e.Message)
}

// SimulationError contains simulation failure details when no custom
// program code could be extracted.
type SimulationError struct {
	Err  interface{}
	Logs []string
}

func (e SimulationError) Error() string {
	return fmt.Sprintf("simulation failed: %v", e.Err)
}

// ParseProgramError converts a DEX program error code to a typed error.
func ParseProgramError(code int) error {
	if e, ok := sfcdex.ErrorFromCode(uint32(code)); ok {
		msg := e.Msg
		if msg == "" {
			msg = toReadableError(e.Name)
		}
		return &ProgramError{Code: code, Message: msg}
	}
	return fmt.Errorf("program error code %d", code)
}

// ParseSimulationError extracts error details from a simulation or
// transaction-status error value. Custom program codes are decoded through
// the program error table; anything else is passed through as-is.
func ParseSimulationError(errVal interface{}, logs []string) error {
	if errVal == nil {
		return nil
	}

	if errMap, ok := errVal.(map[string]interface{}); ok {
		if instErr, exists := errMap["InstructionError"]; exists {
			if errSlice, ok := instErr.([]interface{}); ok && len(errSlice) >= 2 {
				if customErr, ok := errSlice[1].(map[string]interface{}); ok {
					if code, exists := customErr["Custom"]; exists {
						if codeNum, ok := code.(float64); ok {
							codeInt := int(codeNum)
							account := extractAccountFromLogs(logs)
							return &ProgramError{
								Code:    codeInt,
								Message: describeErrorCode(codeInt, account),
								Logs:    logs,
							}
						}
					}
				}
			}
		}
	}

	return &SimulationError{Err: errVal, Logs: logs}
}

// extractAccountFromLogs pulls the offending account name out of Anchor
// error logs ("AnchorError caused by account: xxx.").
func extractAccountFromLogs(logs []string) string {
	const marker = "caused by account: "
	for _, log := range logs {
		if idx := strings.Index(log, marker); idx >= 0 {
			rest := log[idx+len(marker):]
			if end := strings.Index(rest, "."); end >= 0 {
				return rest[:end]
			}
			return rest
		}
	}
	return ""
}

// describeErrorCode converts an error code to a human-readable message.
func describeErrorCode(code int, account string) string {
	// Anchor framework errors (below 6000)
	switch code {
	case 3012:
		if account != "" {
			return fmt.Sprintf("account '%s' not initialized (create the account first)", account)
		}
		return "account not initialized"
	case 3008:
		return "program ID was not as expected (wrong program)"
	}

	if e, ok := sfcdex.ErrorFromCode(uint32(code)); ok {
		msg := e.Msg
		if msg == "" {
			msg = toReadableError(e.Name)
		}
		if account != "" {
			return fmt.Sprintf("%s (account: %s)", msg, account)
		}
		return msg
	}

	return fmt.Sprintf("error code %d", code)
}

// toReadableError converts a CamelCase error name to readable format.
func toReadableError(name string) string {
	if name == "" {
		return "unknown error"
	}
	var result []byte
	for i, c := range name {
		if i > 0 && c >= 'A' && c <= 'Z' {
			result = append(result, ' ')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
