package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/satflow/peggate/clients"
)

// Peg statuses, from tightest to loosest.
const (
	PegHealthy        = "healthy"
	PegSlightPremium  = "slight-premium"
	PegSlightDiscount = "slight-discount"
	PegWarning        = "warning"
)

// Deviation thresholds on ratio-1: inside ±0.2% is healthy, inside ±1% is a
// slight premium/discount, beyond that a warning.
var (
	healthyBand = decimal.NewFromFloat(0.002)
	slightBand  = decimal.NewFromFloat(0.01)
)

// PegReport describes how closely the pegged asset tracks the reference
// asset.
type PegReport struct {
	Status       string          `json:"status"`
	Ratio        decimal.Decimal `json:"ratio"`
	DeviationPct decimal.Decimal `json:"deviationPct"`
	BTCPriceUSD  decimal.Decimal `json:"btcPriceUsd"`
	PegPriceUSD  decimal.Decimal `json:"peggedPriceUsd"`
	SupplySats   decimal.Decimal `json:"supplySats"`
	Holders      int64           `json:"holders"`

	// Degraded is set when the pegged-asset market price was unavailable
	// and the ratio defaulted to 1.
	Degraded bool `json:"degraded,omitempty"`
}

// ComputePegReport derives the peg ratio and status. When the pegged-asset
// price degraded to zero the ratio defaults to exactly 1 and the report is
// marked degraded.
func ComputePegReport(btcPrice, peggedPrice decimal.Decimal, stats clients.TokenStats) PegReport {
	report := PegReport{
		BTCPriceUSD: btcPrice,
		PegPriceUSD: peggedPrice,
		SupplySats:  stats.TotalSupply,
		Holders:     stats.Holders,
	}

	if peggedPrice.IsZero() || btcPrice.IsZero() {
		report.Ratio = decimal.NewFromInt(1)
		report.Degraded = true
	} else {
		report.Ratio = peggedPrice.Div(btcPrice).Round(6)
	}

	deviation := report.Ratio.Sub(decimal.NewFromInt(1))
	report.DeviationPct = deviation.Mul(decimal.NewFromInt(100)).Round(4)
	report.Status = pegStatus(deviation)

	return report
}

func pegStatus(deviation decimal.Decimal) string {
	abs := deviation.Abs()
	switch {
	case abs.LessThan(healthyBand):
		return PegHealthy
	case abs.LessThan(slightBand) && deviation.IsPositive():
		return PegSlightPremium
	case abs.LessThan(slightBand):
		return PegSlightDiscount
	default:
		return PegWarning
	}
}
