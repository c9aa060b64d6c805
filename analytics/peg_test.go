package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/satflow/peggate/clients"
)

func TestComputePegReportHealthy(t *testing.T) {
	report := ComputePegReport(
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(100_050),
		clients.TokenStats{TotalSupply: decimal.NewFromInt(512_000_000_000), Holders: 4821},
	)

	assert.Equal(t, PegHealthy, report.Status)
	assert.Equal(t, "1.0005", report.Ratio.String())
	assert.Equal(t, "0.05", report.DeviationPct.String())
	assert.False(t, report.Degraded)
	assert.Equal(t, int64(4821), report.Holders)
}

func TestComputePegReportSlightPremium(t *testing.T) {
	report := ComputePegReport(
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(100_500),
		clients.TokenStats{},
	)

	assert.Equal(t, PegSlightPremium, report.Status)
	assert.True(t, report.DeviationPct.IsPositive())
}

func TestComputePegReportSlightDiscount(t *testing.T) {
	report := ComputePegReport(
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(99_500),
		clients.TokenStats{},
	)

	assert.Equal(t, PegSlightDiscount, report.Status)
	assert.True(t, report.DeviationPct.IsNegative())
}

func TestComputePegReportWarning(t *testing.T) {
	report := ComputePegReport(
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(97_000),
		clients.TokenStats{},
	)

	assert.Equal(t, PegWarning, report.Status)
}

func TestComputePegReportDegradedWhenPeggedPriceMissing(t *testing.T) {
	report := ComputePegReport(decimal.NewFromInt(97_000), decimal.Zero, clients.TokenStats{})

	assert.True(t, report.Degraded)
	assert.Equal(t, PegHealthy, report.Status)
	assert.True(t, report.Ratio.Equal(decimal.NewFromInt(1)))
	assert.True(t, report.DeviationPct.IsZero())
}

func TestPegStatusBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		deviation float64
		want      string
	}{
		{"zero", 0, PegHealthy},
		{"just inside healthy", 0.0019, PegHealthy},
		{"at healthy edge", 0.002, PegSlightPremium},
		{"negative inside slight", -0.005, PegSlightDiscount},
		{"at slight edge", 0.01, PegWarning},
		{"far off", -0.05, PegWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pegStatus(decimal.NewFromFloat(tt.deviation)))
		})
	}
}
