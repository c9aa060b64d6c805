package types

// Tier selects which of a resource's two static amounts applies.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// PriceAmounts holds a price in both denominations, each in the smallest unit
// of its token.
type PriceAmounts struct {
	Native uint64 `json:"native"` // micro-STX
	Pegged uint64 `json:"pegged"` // sats
}

// ResourcePrice is the static price entry for one endpoint: a standard and a
// premium amount. This is configuration, not runtime state.
type ResourcePrice struct {
	Tier     Tier         `json:"tier"`
	Standard PriceAmounts `json:"standard"`
	Premium  PriceAmounts `json:"premium"`
}

// Amounts returns the amounts for the resource's configured tier.
func (r ResourcePrice) Amounts() PriceAmounts {
	if r.Tier == TierPremium {
		return r.Premium
	}
	return r.Standard
}

// PricingTable maps resource path to its static price entry.
type PricingTable map[string]ResourcePrice

// DefaultPricing is the shipped pricing table, in micro-STX and sats.
func DefaultPricing() PricingTable {
	return PricingTable{
		"/yield-opportunities": {
			Tier:     TierStandard,
			Standard: PriceAmounts{Native: 1000, Pegged: 1},
			Premium:  PriceAmounts{Native: 4000, Pegged: 4},
		},
		"/peg-health": {
			Tier:     TierStandard,
			Standard: PriceAmounts{Native: 2000, Pegged: 2},
			Premium:  PriceAmounts{Native: 6000, Pegged: 6},
		},
		"/alpha": {
			Tier:     TierPremium,
			Standard: PriceAmounts{Native: 2500, Pegged: 3},
			Premium:  PriceAmounts{Native: 5000, Pegged: 5},
		},
		"/simulate": {
			Tier:     TierPremium,
			Standard: PriceAmounts{Native: 1500, Pegged: 2},
			Premium:  PriceAmounts{Native: 3000, Pegged: 3},
		},
		"/agent-intel": {
			Tier:     TierPremium,
			Standard: PriceAmounts{Native: 5000, Pegged: 5},
			Premium:  PriceAmounts{Native: 10000, Pegged: 10},
		},
	}
}
