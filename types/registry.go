package types

// RiskTier classifies a protocol's risk.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// ProtocolRecord describes one protocol in the static catalog. The catalog is
// a fixed data source the analytics layer consumes; it is not derived from
// live chain state.
type ProtocolRecord struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	TVL         float64  `json:"tvl"` // USD estimate
	APY         float64  `json:"apy"` // percent estimate
	Risk        RiskTier `json:"risk"`
	Description string   `json:"description"`
}

// DefaultProtocolRegistry is the shipped protocol catalog.
func DefaultProtocolRegistry() []ProtocolRecord {
	return []ProtocolRecord{
		{
			Name:        "StackingDAO",
			Category:    "liquid-stacking",
			TVL:         48_000_000,
			APY:         6.8,
			Risk:        RiskLow,
			Description: "Liquid stacking with stSTX receipt tokens.",
		},
		{
			Name:        "Zest Protocol",
			Category:    "lending",
			TVL:         31_000_000,
			APY:         9.2,
			Risk:        RiskMedium,
			Description: "Bitcoin-collateralized lending markets.",
		},
		{
			Name:        "ALEX",
			Category:    "dex",
			TVL:         27_500_000,
			APY:         11.5,
			Risk:        RiskMedium,
			Description: "AMM pools and yield farms on Stacks.",
		},
		{
			Name:        "Bitflow",
			Category:    "dex",
			TVL:         12_300_000,
			APY:         8.4,
			Risk:        RiskMedium,
			Description: "Stable-swap pools for sBTC and stablecoins.",
		},
		{
			Name:        "Arkadiko",
			Category:    "cdp",
			TVL:         7_900_000,
			APY:         14.1,
			Risk:        RiskHigh,
			Description: "Self-repaying loans backed by STX collateral.",
		},
		{
			Name:        "Hermetica",
			Category:    "derivatives",
			TVL:         5_200_000,
			APY:         17.3,
			Risk:        RiskHigh,
			Description: "Bitcoin-backed synthetic dollar vaults.",
		},
	}
}
