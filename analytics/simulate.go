package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/satflow/peggate/types"
)

var validate = validator.New()

// SimulationRequest is the JSON body of a yield simulation.
type SimulationRequest struct {
	AmountSats   int64  `json:"amountSats" validate:"required,gt=0"`
	Protocol     string `json:"protocol" validate:"required"`
	DurationDays int    `json:"durationDays" validate:"required,gt=0,lte=3650"`
}

// SimulationResult projects a position's yield with daily compounding at the
// protocol's catalog APY.
type SimulationResult struct {
	Protocol      string         `json:"protocol"`
	Risk          types.RiskTier `json:"risk"`
	APY           float64        `json:"apy"`
	AmountSats    int64          `json:"amountSats"`
	DurationDays  int            `json:"durationDays"`
	ProjectedSats int64          `json:"projectedSats"`
	YieldSats     int64          `json:"yieldSats"`
	EffectivePct  float64        `json:"effectivePct"`
}

// Simulate validates the request and projects yield for the named protocol.
func (s *Service) Simulate(req SimulationRequest) (*SimulationResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid simulation request: %w", err)
	}

	var record *types.ProtocolRecord
	for i := range s.registry {
		if strings.EqualFold(s.registry[i].Name, req.Protocol) {
			record = &s.registry[i]
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("unknown protocol: %s", req.Protocol)
	}

	projected := projectCompound(req.AmountSats, record.APY, req.DurationDays)

	return &SimulationResult{
		Protocol:      record.Name,
		Risk:          record.Risk,
		APY:           record.APY,
		AmountSats:    req.AmountSats,
		DurationDays:  req.DurationDays,
		ProjectedSats: projected,
		YieldSats:     projected - req.AmountSats,
		EffectivePct:  100 * float64(projected-req.AmountSats) / float64(req.AmountSats),
	}, nil
}

// projectCompound compounds daily at apy/365 and truncates to whole sats.
func projectCompound(amount int64, apy float64, days int) int64 {
	daily := apy / 100 / 365
	factor := math.Pow(1+daily, float64(days))
	return int64(float64(amount) * factor)
}
