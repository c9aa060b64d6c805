package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validTxID = "0x1d8b5c9f4a3e2d1c0b9a8f7e6d5c4b3a2918070605040302010fedcba9876543"

func TestValidateTxID(t *testing.T) {
	assert.NoError(t, ValidateTxID(validTxID))

	tests := []struct {
		name string
		txid string
	}{
		{"empty", ""},
		{"no prefix", strings.TrimPrefix(validTxID, "0x")},
		{"too short", "0x1234"},
		{"too long", validTxID + "ab"},
		{"not hex", "0x" + strings.Repeat("zz", 32)},
		{"odd length", "0x123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateTxID(tt.txid))
		})
	}
}

func TestNormalizeTxID(t *testing.T) {
	bare := strings.TrimPrefix(validTxID, "0x")

	assert.Equal(t, validTxID, NormalizeTxID(bare))
	assert.Equal(t, validTxID, NormalizeTxID(validTxID))
	assert.Equal(t, validTxID, NormalizeTxID(strings.ToUpper(bare)))
	assert.Equal(t, validTxID, NormalizeTxID("  "+validTxID+"  "))
	assert.Equal(t, "", NormalizeTxID("   "))
}

func TestValidatePrincipal(t *testing.T) {
	valid := []string{
		"SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE",
		"ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM",
		"SM3VDXK3WZZSA84XXFKAFAF15NNZX32CTSG82JFQ4",
	}
	for _, addr := range valid {
		assert.NoError(t, ValidatePrincipal(addr), addr)
	}

	invalid := []string{
		"",
		"not-an-address",
		"SX3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE", // bad version byte
		"SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE.peggate-payments",
		"SPSHORT",
	}
	for _, addr := range invalid {
		assert.Error(t, ValidatePrincipal(addr), addr)
	}
}

func TestValidateContractID(t *testing.T) {
	assert.NoError(t, ValidateContractID("SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE.peggate-payments"))

	invalid := []string{
		"",
		"SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE",
		"SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE.",
		"not-an-address.contract",
	}
	for _, id := range invalid {
		assert.Error(t, ValidateContractID(id), id)
	}
}

func TestPeggedFallbackAmount(t *testing.T) {
	tests := []struct {
		native uint64
		want   uint64
	}{
		{0, 0},
		{1, 1},
		{999, 1},
		{1000, 1},
		{1001, 2},
		{2000, 2},
		{2500, 3},
		{5000, 5},
		{10000, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PeggedFallbackAmount(tt.native), "native=%d", tt.native)
	}
}
