package peggate

import (
	"github.com/satflow/peggate/logger"
	"github.com/satflow/peggate/metrics"
)

type Option func(*App)

func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(a *App) {
		a.metrics = r
	}
}
