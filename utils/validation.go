package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// c32 alphabet used by Stacks principals: no I, L, O or U.
var principalRe = regexp.MustCompile(`^S[PTMN][0-9A-HJKMNP-TV-Z]{28,40}$`)

// ValidateTxID checks that a proof token is a 0x-prefixed 32-byte hex
// transaction id. Callers normalize the prefix first.
func ValidateTxID(txid string) error {
	if txid == "" {
		return fmt.Errorf("transaction id cannot be empty")
	}

	raw, err := hexutil.Decode(txid)
	if err != nil {
		return fmt.Errorf("invalid transaction id: %w", err)
	}

	if len(raw) != 32 {
		return fmt.Errorf("transaction id must be 32 bytes, got %d", len(raw))
	}

	return nil
}

// NormalizeTxID lowercases a claimed transaction id and ensures the standard
// hex prefix is present.
func NormalizeTxID(txid string) string {
	txid = strings.ToLower(strings.TrimSpace(txid))
	if txid == "" {
		return txid
	}
	if !strings.HasPrefix(txid, "0x") {
		txid = "0x" + txid
	}
	return txid
}

// ValidatePrincipal checks a Stacks standard principal.
func ValidatePrincipal(address string) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if !principalRe.MatchString(strings.ToUpper(address)) {
		return fmt.Errorf("invalid principal: %s", address)
	}

	return nil
}

// ValidateContractID checks an address.name contract identifier. Both parts
// are required.
func ValidateContractID(contractID string) error {
	parts := strings.SplitN(contractID, ".", 2)
	if len(parts) != 2 || parts[1] == "" {
		return fmt.Errorf("contract id must be address.name: %s", contractID)
	}

	return ValidatePrincipal(parts[0])
}
