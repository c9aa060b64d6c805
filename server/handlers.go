package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satflow/peggate/analytics"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"network": s.gate.Config().Network,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleOverview(c *gin.Context) {
	c.JSON(http.StatusOK, s.analytics.Overview(c.Request.Context()))
}

func (s *Server) handleYield(c *gin.Context) {
	report := s.analytics.YieldOpportunities(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"paymentVerified": true,
		"payer":           verifiedPayer(c),
		"yield":           report,
	})
}

func (s *Server) handlePegHealth(c *gin.Context) {
	report := s.analytics.PegHealth(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"paymentVerified": true,
		"payer":           verifiedPayer(c),
		"peg":             report,
	})
}

func (s *Server) handleAlpha(c *gin.Context) {
	report := s.analytics.Alpha(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"paymentVerified": true,
		"payer":           verifiedPayer(c),
		"alpha":           report,
	})
}

func (s *Server) handleSimulate(c *gin.Context) {
	var req analytics.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := s.analytics.Simulate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "simulation rejected",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentVerified": true,
		"payer":           verifiedPayer(c),
		"simulation":      result,
	})
}

func (s *Server) handleAgentIntel(c *gin.Context) {
	// An empty body is a valid "no focus" query.
	var req analytics.IntelRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	report, err := s.analytics.AgentIntel(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "intel request rejected",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentVerified": true,
		"payer":           verifiedPayer(c),
		"intel":           report,
	})
}
