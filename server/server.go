// Package server wires the payment gate and the analytics service onto the
// HTTP surface. Priced routes go through the payment middleware; everything
// else is open.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/satflow/peggate/analytics"
	"github.com/satflow/peggate/gate"
	"github.com/satflow/peggate/logger"
	"github.com/satflow/peggate/types"
)

// Request metadata the gate reads.
const (
	HeaderPayment   = "X-Payment"
	HeaderTokenType = "X-Token-Type"
	QueryTokenType  = "tokenType"
)

// payerKey is the context key the middleware stores the verified payer under.
const payerKey = "payer"

type Server struct {
	engine    *gin.Engine
	gate      *gate.Gate
	analytics *analytics.Service
	pricing   types.PricingTable
	logger    logger.Logger
}

func New(g *gate.Gate, svc *analytics.Service, pricing types.PricingTable, lg logger.Logger, metricsEnabled bool) *Server {
	if lg == nil {
		lg = logger.NoopLogger{}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		gate:      g,
		analytics: svc,
		pricing:   pricing,
		logger:    lg,
	}

	engine.Use(s.requestLog())

	engine.GET("/", s.handleFrontend)
	engine.GET("/health", s.handleHealth)
	engine.GET("/overview", s.handleOverview)
	if metricsEnabled {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	priced := engine.Group("/", s.paymentRequired())
	priced.GET("/yield-opportunities", s.handleYield)
	priced.GET("/peg-health", s.handlePegHealth)
	priced.GET("/alpha", s.handleAlpha)
	priced.POST("/simulate", s.handleSimulate)
	priced.POST("/agent-intel", s.handleAgentIntel)

	return s
}

// Handler exposes the router for tests and for the serve command.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request", map[string]any{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
	}
}
