// Package analytics derives simple reports from already-fetched data: peg
// health, yield ranking, rule-based signals, yield simulation. Formulas are
// pure; the service only adds concurrent upstream fan-out with per-field
// fallbacks.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/satflow/peggate/clients"
	"github.com/satflow/peggate/logger"
	"github.com/satflow/peggate/metrics"
	"github.com/satflow/peggate/types"
)

// Service computes resource payloads from the protocol registry and the
// upstream read APIs.
type Service struct {
	registry []types.ProtocolRecord
	oracle   *clients.PriceOracle
	market   *clients.MarketDataClient
	stats    *clients.TokenStatsClient
	timeout  time.Duration
	logger   logger.Logger
	metrics  metrics.Recorder
}

func NewService(
	registry []types.ProtocolRecord,
	oracle *clients.PriceOracle,
	market *clients.MarketDataClient,
	stats *clients.TokenStatsClient,
	timeout time.Duration,
	lg logger.Logger,
	rec metrics.Recorder,
) *Service {
	if timeout <= 0 {
		timeout = clients.DefaultTimeout
	}
	if lg == nil {
		lg = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Service{
		registry: registry,
		oracle:   oracle,
		market:   market,
		stats:    stats,
		timeout:  timeout,
		logger:   lg,
		metrics:  rec,
	}
}

// Registry returns the static protocol catalog.
func (s *Service) Registry() []types.ProtocolRecord {
	return s.registry
}

// snapshot is the joined result of the independent upstream reads a handler
// needs. Fields degrade to fallbacks individually.
type snapshot struct {
	btcPrice  decimal.Decimal
	livePrice bool
	market    clients.MarketData
	stats     clients.TokenStats
}

// fetchSnapshot issues the three upstream reads concurrently and joins them.
// There is no ordering requirement between them; a failed fetch degrades to
// its fallback instead of failing the snapshot.
func (s *Service) fetchSnapshot(ctx context.Context) snapshot {
	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	type part func(*snapshot)
	partChan := make(chan part, 3)

	go func() {
		price, live := s.oracle.BTCPriceUSD(fetchCtx)
		partChan <- func(snap *snapshot) {
			snap.btcPrice = price
			snap.livePrice = live
		}
	}()
	go func() {
		market := s.market.PeggedAssetMarket(fetchCtx)
		partChan <- func(snap *snapshot) {
			snap.market = market
		}
	}()
	go func() {
		stats := s.stats.PeggedAssetStats(fetchCtx)
		partChan <- func(snap *snapshot) {
			snap.stats = stats
		}
	}()

	var snap snapshot
	for i := 0; i < 3; i++ {
		apply := <-partChan
		apply(&snap)
	}

	s.metrics.ObserveLatency(metrics.OperationUpstreamFetch, time.Since(start), map[string]string{metrics.LabelUpstream: "all"})
	if !snap.livePrice {
		s.metrics.IncCounter(metrics.CounterUpstreamFallback, map[string]string{metrics.LabelUpstream: "btc_price"})
		s.logger.Warn("price oracle unavailable, using fallback", map[string]any{
			"fallback": snap.btcPrice,
		})
	}

	return snap
}

// Overview is the unauthenticated aggregate view.
type Overview struct {
	BTCPriceUSD    decimal.Decimal    `json:"btcPriceUsd"`
	PriceLive      bool               `json:"priceLive"`
	Market         clients.MarketData `json:"market"`
	Supply         decimal.Decimal    `json:"supplySats"`
	Holders        int64              `json:"holders"`
	Peg            PegReport          `json:"peg"`
	ProtocolCount  int                `json:"protocolCount"`
	TotalTVL       float64            `json:"totalTvl"`
	GeneratedAtUTC time.Time          `json:"generatedAt"`
}

func (s *Service) Overview(ctx context.Context) Overview {
	snap := s.fetchSnapshot(ctx)

	totalTVL := 0.0
	for _, p := range s.registry {
		totalTVL += p.TVL
	}

	return Overview{
		BTCPriceUSD:    snap.btcPrice,
		PriceLive:      snap.livePrice,
		Market:         snap.market,
		Supply:         snap.stats.TotalSupply,
		Holders:        snap.stats.Holders,
		Peg:            ComputePegReport(snap.btcPrice, snap.market.PriceUSD, snap.stats),
		ProtocolCount:  len(s.registry),
		TotalTVL:       totalTVL,
		GeneratedAtUTC: time.Now().UTC(),
	}
}

// PegHealth is the priced peg report.
func (s *Service) PegHealth(ctx context.Context) PegReport {
	snap := s.fetchSnapshot(ctx)
	return ComputePegReport(snap.btcPrice, snap.market.PriceUSD, snap.stats)
}
