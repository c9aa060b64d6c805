// Package peggate assembles the metered sBTC analytics API: upstream
// clients, the payment gate, the analytics service and the HTTP server, all
// driven by one immutable configuration.
package peggate

import (
	"fmt"
	"net/http"

	"github.com/satflow/peggate/analytics"
	"github.com/satflow/peggate/clients"
	"github.com/satflow/peggate/config"
	"github.com/satflow/peggate/gate"
	"github.com/satflow/peggate/logger"
	"github.com/satflow/peggate/metrics"
	"github.com/satflow/peggate/server"
)

// App is the assembled application.
type App struct {
	cfg       config.Config
	logger    logger.Logger
	metrics   metrics.Recorder
	gate      *gate.Gate
	analytics *analytics.Service
	server    *server.Server
}

// New wires the application from configuration. The configuration is treated
// as immutable after this call.
func New(cfg config.Config, opts ...Option) (*App, error) {
	app := &App{
		cfg:     cfg,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(app)
	}

	ledger := clients.NewLedgerClient(cfg.Network, cfg.LedgerAPIURL, cfg.UpstreamTimeout)
	oracle := clients.NewPriceOracle(cfg.PriceOracleURL, cfg.UpstreamTimeout)
	market := clients.NewMarketDataClient(cfg.MarketDataURL, cfg.UpstreamTimeout)

	// The indexing service identifies a fungible token asset as
	// contract-id::asset-name.
	assetID := fmt.Sprintf("%s::%s", cfg.Payment.PeggedAsset.ContractID(), cfg.Payment.PeggedAsset.AssetName)
	stats := clients.NewTokenStatsClient(cfg.LedgerAPIURL, assetID, cfg.UpstreamTimeout)

	g, err := gate.New(cfg.Payment, ledger,
		gate.WithLogger(app.logger),
		gate.WithMetrics(app.metrics),
		gate.WithTimeout(cfg.VerifyTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build payment gate: %w", err)
	}
	app.gate = g

	app.analytics = analytics.NewService(
		cfg.Registry, oracle, market, stats,
		cfg.UpstreamTimeout, app.logger, app.metrics,
	)

	app.server = server.New(g, app.analytics, cfg.Pricing, app.logger, cfg.MetricsEnabled)

	return app, nil
}

// Handler returns the HTTP surface.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Gate returns the payment gate.
func (a *App) Gate() *gate.Gate {
	return a.gate
}

// Analytics returns the analytics service.
func (a *App) Analytics() *analytics.Service {
	return a.analytics
}
