package gate

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satflow/peggate/types"
)

const (
	testTxID   = "0x1d8b5c9f4a3e2d1c0b9a8f7e6d5c4b3a2918070605040302010fedcba9876543"
	testSender = "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"
)

func testConfig() types.PaymentConfig {
	return types.PaymentConfig{
		Network:         types.NetworkStacksTestnet,
		PayTo:           "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM",
		PaymentContract: types.ContractID{Address: "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM", Name: "peggate-payments"},
		PaymentFunction: "pay",
		PeggedAsset: types.AssetPointer{
			ContractAddress: "ST1F7QA2MDF17S807EPA36TSS8AMEFY4KA9TVGWXT",
			ContractName:    "sbtc-token",
			AssetName:       "sbtc-token",
			Decimals:        8,
		},
	}
}

// fakeLedger returns a canned lookup and records the txid it was asked for.
type fakeLedger struct {
	lookup   types.TxLookup
	askedFor string
	calls    int
}

func (f *fakeLedger) GetTransaction(_ context.Context, txid string) types.TxLookup {
	f.askedFor = txid
	f.calls++
	return f.lookup
}

func foundTx(status, kind, contractID string) types.TxLookup {
	return types.TxLookup{
		Outcome: types.LookupFound,
		Tx: &types.TransactionInfo{
			TxID:       testTxID,
			Status:     status,
			Kind:       kind,
			Sender:     testSender,
			ContractID: contractID,
		},
	}
}

func newTestGate(t *testing.T, ledger *fakeLedger) *Gate {
	t.Helper()
	g, err := New(testConfig(), ledger)
	require.NoError(t, err)
	return g
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PaymentContract.Name = ""

	_, err := New(cfg, &fakeLedger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address and name")

	_, err = New(testConfig(), nil)
	require.Error(t, err)
}

func TestSelectTokenType(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   types.PriceToken
	}{
		{"both absent", "", "", types.TokenNative},
		{"header sBTC", "sBTC", "", types.TokenPeggedAsset},
		{"header lowercase", "sbtc", "", types.TokenPeggedAsset},
		{"header uppercase", "SBTC", "", types.TokenPeggedAsset},
		{"query sBTC", "", "sBTC", types.TokenPeggedAsset},
		{"query lowercase", "", "sbtc", types.TokenPeggedAsset},
		{"header STX", "STX", "", types.TokenNative},
		{"query STX", "", "STX", types.TokenNative},
		{"header overrides query", "STX", "sBTC", types.TokenNative},
		{"header sBTC beats query STX", "sBTC", "STX", types.TokenPeggedAsset},
		{"garbage header", "dogecoin", "sBTC", types.TokenNative},
		{"garbage query", "", "dogecoin", types.TokenNative},
		{"whitespace header falls through", "  ", "sbtc", types.TokenPeggedAsset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTokenType(tt.header, tt.query))
		})
	}
}

func TestVerifyPaymentNotFound(t *testing.T) {
	g := newTestGate(t, &fakeLedger{lookup: types.TxLookup{Outcome: types.LookupNotFound}})

	result := g.VerifyPayment(context.Background(), testTxID)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FailureReason, "not found")
	assert.Empty(t, result.Payer)
}

func TestVerifyPaymentWrongStatus(t *testing.T) {
	for _, status := range []string{"pending", "abort_by_response", "abort_by_post_condition", "dropped"} {
		t.Run(status, func(t *testing.T) {
			g := newTestGate(t, &fakeLedger{lookup: foundTx(status, types.TxKindContractCall, testConfig().PaymentContract.String())})

			result := g.VerifyPayment(context.Background(), testTxID)
			assert.False(t, result.Valid)
			assert.Contains(t, result.FailureReason, status)
			assert.Contains(t, result.FailureReason, "success")
		})
	}
}

func TestVerifyPaymentWrongOperationKind(t *testing.T) {
	g := newTestGate(t, &fakeLedger{lookup: foundTx(types.TxStatusSuccess, "token_transfer", "")})

	result := g.VerifyPayment(context.Background(), testTxID)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FailureReason, "token_transfer")
	assert.Contains(t, result.FailureReason, types.TxKindContractCall)
}

func TestVerifyPaymentWrongContractTarget(t *testing.T) {
	g := newTestGate(t, &fakeLedger{lookup: foundTx(types.TxStatusSuccess, types.TxKindContractCall, "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM.other-contract")})

	result := g.VerifyPayment(context.Background(), testTxID)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FailureReason, "other-contract")
	assert.Contains(t, result.FailureReason, "peggate-payments")
}

func TestVerifyPaymentSuccess(t *testing.T) {
	ledger := &fakeLedger{lookup: foundTx(types.TxStatusSuccess, types.TxKindContractCall, testConfig().PaymentContract.String())}
	g := newTestGate(t, ledger)

	result := g.VerifyPayment(context.Background(), testTxID)
	assert.True(t, result.Valid)
	assert.Empty(t, result.FailureReason)
	assert.Equal(t, testSender, result.Payer)
}

func TestVerifyPaymentIdempotent(t *testing.T) {
	// There is no single-use consumption: the same token verifies again.
	ledger := &fakeLedger{lookup: foundTx(types.TxStatusSuccess, types.TxKindContractCall, testConfig().PaymentContract.String())}
	g := newTestGate(t, ledger)

	first := g.VerifyPayment(context.Background(), testTxID)
	second := g.VerifyPayment(context.Background(), testTxID)

	assert.True(t, first.Valid)
	assert.True(t, second.Valid)
	assert.Equal(t, 2, ledger.calls)
}

func TestVerifyPaymentNormalizesPrefix(t *testing.T) {
	ledger := &fakeLedger{lookup: foundTx(types.TxStatusSuccess, types.TxKindContractCall, testConfig().PaymentContract.String())}
	g := newTestGate(t, ledger)

	bare := strings.TrimPrefix(testTxID, "0x")
	result := g.VerifyPayment(context.Background(), bare)

	assert.True(t, result.Valid)
	assert.Equal(t, testTxID, ledger.askedFor)
}

func TestVerifyPaymentMalformedToken(t *testing.T) {
	ledger := &fakeLedger{}
	g := newTestGate(t, ledger)

	for _, token := range []string{"", "0xzz", "0x1234", "not-a-txid"} {
		result := g.VerifyPayment(context.Background(), token)
		assert.False(t, result.Valid, "token %q", token)
		assert.NotEmpty(t, result.FailureReason)
	}
	assert.Zero(t, ledger.calls, "malformed tokens must not reach the ledger")
}

func TestVerifyPaymentTransportFailureFolds(t *testing.T) {
	g := newTestGate(t, &fakeLedger{lookup: types.TxLookup{
		Outcome: types.LookupTransportError,
		Err:     assert.AnError,
	}})

	result := g.VerifyPayment(context.Background(), testTxID)
	assert.False(t, result.Valid)
	assert.Contains(t, result.FailureReason, "could not verify")
}
