package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/satflow/peggate/types"
)

// Signal severities.
const (
	SeverityInfo    = "info"
	SeverityWatch   = "watch"
	SeverityWarning = "warning"
)

// Signal is one rule-based observation over the current data.
type Signal struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Protocol string `json:"protocol,omitempty"`
}

// AlphaReport is the priced signals payload.
type AlphaReport struct {
	Signals     []Signal  `json:"signals"`
	Peg         PegReport `json:"peg"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// apyOutlierThreshold marks yields that usually come with elevated risk.
const apyOutlierThreshold = 15.0

// tvlConcentrationShare flags a catalog where one protocol holds this share
// of total TVL.
const tvlConcentrationShare = 0.4

// Alpha derives rule-based signals from the current peg state and the
// protocol catalog.
func (s *Service) Alpha(ctx context.Context) AlphaReport {
	snap := s.fetchSnapshot(ctx)
	peg := ComputePegReport(snap.btcPrice, snap.market.PriceUSD, snap.stats)

	return AlphaReport{
		Signals:     DeriveSignals(peg, s.registry),
		Peg:         peg,
		GeneratedAt: time.Now().UTC(),
	}
}

// DeriveSignals applies the signal rules to a peg report and the catalog.
func DeriveSignals(peg PegReport, registry []types.ProtocolRecord) []Signal {
	signals := make([]Signal, 0, 4)

	if peg.Status == PegWarning {
		signals = append(signals, Signal{
			Kind:     "peg-deviation",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("peg deviation at %s%%, outside the ±1%% band", peg.DeviationPct),
		})
	} else if peg.Status != PegHealthy {
		signals = append(signals, Signal{
			Kind:     "peg-drift",
			Severity: SeverityWatch,
			Message:  fmt.Sprintf("peg trading at a %s (%s%%)", peg.Status, peg.DeviationPct),
		})
	}

	totalTVL := 0.0
	for _, p := range registry {
		totalTVL += p.TVL
	}

	for _, p := range registry {
		if p.APY >= apyOutlierThreshold {
			signals = append(signals, Signal{
				Kind:     "apy-outlier",
				Severity: SeverityWatch,
				Protocol: p.Name,
				Message:  fmt.Sprintf("%s advertises %.1f%% APY at %s risk", p.Name, p.APY, p.Risk),
			})
		}
		if totalTVL > 0 && p.TVL/totalTVL >= tvlConcentrationShare {
			signals = append(signals, Signal{
				Kind:     "tvl-concentration",
				Severity: SeverityInfo,
				Protocol: p.Name,
				Message:  fmt.Sprintf("%s holds %.0f%% of catalog TVL", p.Name, 100*p.TVL/totalTVL),
			})
		}
	}

	if len(signals) == 0 {
		signals = append(signals, Signal{
			Kind:     "all-clear",
			Severity: SeverityInfo,
			Message:  "no active signals",
		})
	}

	return signals
}
