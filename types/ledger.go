package types

// TxStatusSuccess is the only indexer transaction status the gate accepts.
// Anything else, including pending, is rejected.
const TxStatusSuccess = "success"

// TxKindContractCall is the only operation kind that can settle a payment.
// Plain transfers are rejected even if funds moved.
const TxKindContractCall = "contract_call"

// TransactionInfo is the normalized view of a ledger transaction as returned
// by the indexing service.
type TransactionInfo struct {
	TxID   string `json:"txId"`
	Status string `json:"status"`
	Kind   string `json:"kind"`
	Sender string `json:"sender"`

	// ContractID and FunctionName are populated only for contract calls.
	ContractID   string `json:"contractId,omitempty"`
	FunctionName string `json:"functionName,omitempty"`

	BlockHeight uint64 `json:"blockHeight,omitempty"`
}

// LookupOutcome tags the result of a ledger lookup so every branch the gate
// takes is checked by the compiler rather than by ad hoc field probing.
type LookupOutcome int

const (
	LookupFound LookupOutcome = iota
	LookupNotFound
	LookupTransportError
)

// TxLookup is the tagged result of a single transaction lookup. Tx is non-nil
// only when Outcome is LookupFound; Err is non-nil only for
// LookupTransportError.
type TxLookup struct {
	Outcome LookupOutcome
	Tx      *TransactionInfo
	Err     error
}
