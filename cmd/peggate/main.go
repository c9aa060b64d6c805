package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/satflow/peggate"
	"github.com/satflow/peggate/config"
	"github.com/satflow/peggate/logger"
	"github.com/satflow/peggate/metrics"
)

func main() {
	root := &cobra.Command{
		Use:          "peggate",
		Short:        "Metered sBTC analytics API",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE:  runServe,
	}

	serveCmd.Flags().String("listen", ":8080", "listen address")
	serveCmd.Flags().String("network", "stacks-mainnet", "chain network identifier")
	serveCmd.Flags().String("ledger-api", "", "chain-indexing API base URL")
	serveCmd.Flags().String("price-api", "", "BTC price oracle URL")
	serveCmd.Flags().String("market-api", "", "pegged-asset market-data URL")
	serveCmd.Flags().String("pay-to", "", "payment recipient principal")
	serveCmd.Flags().String("payment-contract", "", "payment contract id (address.name)")
	serveCmd.Flags().String("payment-function", "", "payment contract function")
	serveCmd.Flags().Duration("upstream-timeout", 10*time.Second, "upstream call timeout")
	serveCmd.Flags().Duration("verify-timeout", 15*time.Second, "verification timeout")
	serveCmd.Flags().Bool("metrics-enabled", true, "expose /metrics")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.NewZapLogger(cfg.LogLevel)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.MetricsEnabled {
		recorder = metrics.NewPrometheusRecorder()
	}

	app, err := peggate.New(cfg, peggate.WithLogger(log), peggate.WithMetrics(recorder))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("server listening", map[string]any{
			"addr":    cfg.ListenAddr,
			"network": cfg.Network,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
