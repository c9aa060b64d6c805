package utils

import (
	"github.com/shopspring/decimal"
)

// peggedUnitsPerNative is the fixed conversion used when a resource has no
// explicit pegged-asset price: 1000 micro-STX per sat, rounded up.
const peggedUnitsPerNative = 1000

// PeggedFallbackAmount derives a pegged-asset amount from a native amount as
// ceil(native/1000).
func PeggedFallbackAmount(native uint64) uint64 {
	d := decimal.NewFromInt(int64(native)).
		Div(decimal.NewFromInt(peggedUnitsPerNative)).
		Ceil()
	return uint64(d.IntPart())
}
