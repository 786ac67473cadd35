package sfcdex

// Error describes an entry in the program's custom error table.
// Anchor custom errors start at code 6000.
type Error struct {
	Code uint32
	Name string
	Msg  string
}

var programErrors = []Error{
	{6000, "PriceUnderSlippage", "executed price fell below the minimum output"},
	{6001, "NotEnoughSol", "not enough SOL to cover the trade"},
	{6002, "NotEnoughSfc", "not enough SFC to cover the trade"},
	{6003, "NotEnoughLp", "not enough LP tokens to withdraw"},
	{6004, "AlreadyInitialized", "user account already initialized"},
	{6005, "NotInitialized", "user account not initialized"},
	{6006, "Unauthorized", "signer is not authorized for this account"},
	{6007, "EmptyPool", "pool has no liquidity"},
	{6008, "InvalidAmount", "amount must be greater than zero"},
	{6009, "InvalidVaultBump", "vault bump does not match derivation"},
}

// ErrorFromCode looks up a program error by its custom code.
func ErrorFromCode(code uint32) (Error, bool) {
	for _, e := range programErrors {
		if e.Code == code {
			return e, true
		}
	}
	return Error{}, false
}
