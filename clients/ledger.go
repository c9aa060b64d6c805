package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/satflow/peggate/types"
)

// TxLookuper is the ledger dependency of the payment gate.
type TxLookuper interface {
	GetTransaction(ctx context.Context, txid string) types.TxLookup
}

// LedgerClient reads transaction state from a chain-indexing service. It is
// strictly read-only: it never signs or submits anything.
type LedgerClient struct {
	baseURL string
	network types.Network
	client  *http.Client
}

var _ TxLookuper = (*LedgerClient)(nil)

func NewLedgerClient(network types.Network, baseURL string, timeout time.Duration) *LedgerClient {
	return &LedgerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		network: network,
		client:  newHTTPClient(timeout),
	}
}

func (c *LedgerClient) Network() types.Network {
	return c.network
}

// ledgerTx mirrors the indexing service's transaction payload.
type ledgerTx struct {
	TxID          string `json:"tx_id"`
	TxStatus      string `json:"tx_status"`
	TxType        string `json:"tx_type"`
	SenderAddress string `json:"sender_address"`
	BlockHeight   uint64 `json:"block_height"`
	ContractCall  *struct {
		ContractID   string `json:"contract_id"`
		FunctionName string `json:"function_name"`
	} `json:"contract_call"`
}

// GetTransaction looks up a transaction by id and returns a tagged result.
// A 404 from the service is LookupNotFound; any network or decode failure is
// LookupTransportError.
func (c *LedgerClient) GetTransaction(ctx context.Context, txid string) types.TxLookup {
	url := fmt.Sprintf("%s/extended/v1/tx/%s", c.baseURL, txid)

	var raw ledgerTx
	status, err := getJSON(ctx, c.client, url, &raw)
	if err != nil {
		if status == http.StatusNotFound {
			return types.TxLookup{Outcome: types.LookupNotFound}
		}
		return types.TxLookup{
			Outcome: types.LookupTransportError,
			Err:     fmt.Errorf("ledger lookup: %w", err),
		}
	}

	tx := &types.TransactionInfo{
		TxID:        raw.TxID,
		Status:      raw.TxStatus,
		Kind:        raw.TxType,
		Sender:      raw.SenderAddress,
		BlockHeight: raw.BlockHeight,
	}
	if raw.ContractCall != nil {
		tx.ContractID = raw.ContractCall.ContractID
		tx.FunctionName = raw.ContractCall.FunctionName
	}

	return types.TxLookup{Outcome: types.LookupFound, Tx: tx}
}
