package types

// TxResult is the uniform result contract of every state-changing operation.
// Operations return a value, never panic or throw past their boundary;
// callers branch on Success.
type TxResult struct {
	Signature   string `json:"signature,omitempty"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// Failure wraps an error into a failed result.
func Failure(err error) TxResult {
	if err == nil {
		return TxResult{Success: false, Error: "unknown error"}
	}
	return TxResult{Success: false, Error: err.Error()}
}
