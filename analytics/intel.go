package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/satflow/peggate/types"
)

// IntelRequest is the JSON body of an agent-intel query. Focus narrows the
// report; empty means everything.
type IntelRequest struct {
	Focus string `json:"focus" validate:"omitempty,oneof=peg yield risk"`
}

// IntelReport is a combined machine-consumable briefing.
type IntelReport struct {
	Focus       string       `json:"focus"`
	Summary     string       `json:"summary"`
	Peg         *PegReport   `json:"peg,omitempty"`
	Yield       *YieldReport `json:"yield,omitempty"`
	Signals     []Signal     `json:"signals,omitempty"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// AgentIntel assembles the briefing for the requested focus.
func (s *Service) AgentIntel(ctx context.Context, req IntelRequest) (*IntelReport, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid intel request: %w", err)
	}

	focus := req.Focus
	if focus == "" {
		focus = "all"
	}

	snap := s.fetchSnapshot(ctx)
	peg := ComputePegReport(snap.btcPrice, snap.market.PriceUSD, snap.stats)

	report := &IntelReport{
		Focus:       focus,
		GeneratedAt: time.Now().UTC(),
	}

	if focus == "all" || focus == "peg" {
		report.Peg = &peg
	}
	if focus == "all" || focus == "yield" {
		yield := s.YieldOpportunities(ctx)
		report.Yield = &yield
	}
	if focus == "all" || focus == "risk" {
		report.Signals = DeriveSignals(peg, s.registry)
	}

	report.Summary = fmt.Sprintf(
		"peg %s (ratio %s), best catalog APY %.1f%% vs %.1f%% stacking benchmark",
		peg.Status, peg.Ratio, bestAPY(s.registry), BenchmarkAPY,
	)

	return report, nil
}

func bestAPY(registry []types.ProtocolRecord) float64 {
	best := 0.0
	for _, p := range registry {
		if p.APY > best {
			best = p.APY
		}
	}
	return best
}
