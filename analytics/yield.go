package analytics

import (
	"context"
	"sort"

	"github.com/satflow/peggate/types"
)

// BenchmarkAPY is the base stacking yield opportunities are compared against.
const BenchmarkAPY = 5.0

// YieldOpportunity is one ranked catalog entry with its spread over the
// benchmark.
type YieldOpportunity struct {
	types.ProtocolRecord
	Rank             int     `json:"rank"`
	SpreadVsStacking float64 `json:"spreadVsStacking"`
}

// YieldReport ranks the protocol catalog by APY against the stacking
// benchmark.
type YieldReport struct {
	BenchmarkAPY  float64            `json:"benchmarkApy"`
	Opportunities []YieldOpportunity `json:"opportunities"`
	BestAPY       float64            `json:"bestApy"`
}

// YieldOpportunities ranks the static catalog. The catalog is configuration,
// so no upstream call is made.
func (s *Service) YieldOpportunities(_ context.Context) YieldReport {
	ranked := RankYield(s.registry, BenchmarkAPY)

	best := 0.0
	if len(ranked) > 0 {
		best = ranked[0].APY
	}

	return YieldReport{
		BenchmarkAPY:  BenchmarkAPY,
		Opportunities: ranked,
		BestAPY:       best,
	}
}

// RankYield sorts protocols by APY descending and annotates each with its
// spread over the benchmark. Ties keep catalog order.
func RankYield(registry []types.ProtocolRecord, benchmark float64) []YieldOpportunity {
	out := make([]YieldOpportunity, 0, len(registry))
	for _, p := range registry {
		out = append(out, YieldOpportunity{
			ProtocolRecord:   p,
			SpreadVsStacking: p.APY - benchmark,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].APY > out[j].APY
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
