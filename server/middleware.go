package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satflow/peggate/gate"
)

// paymentRequired gates every priced route. With no proof header the request
// stops at a 402 challenge before any upstream fetch happens: upstream reads
// may themselves be rate-limited or costly, so unauthenticated requests must
// not trigger them. With a proof header the gate verifies it on every
// request; there is no idempotency window, so concurrent requests with the
// same token verify independently.
func (s *Server) paymentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		price, ok := s.pricing[path]
		if !ok {
			// A priced route without a pricing entry is a wiring bug.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "pricing not configured",
				"details": path,
			})
			return
		}

		proof := c.GetHeader(HeaderPayment)
		if proof == "" {
			tokenType := gate.SelectTokenType(c.GetHeader(HeaderTokenType), c.Query(QueryTokenType))
			challenge := s.gate.BuildChallenge(tokenType, path, price.Amounts())
			c.AbortWithStatusJSON(http.StatusPaymentRequired, challenge)
			return
		}

		result := s.gate.VerifyPayment(c.Request.Context(), proof)
		if !result.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "payment verification failed",
				"details": result.FailureReason,
			})
			return
		}

		c.Set(payerKey, result.Payer)
		c.Next()
	}
}

// verifiedPayer returns the payer identity stored by the middleware.
func verifiedPayer(c *gin.Context) string {
	payer, _ := c.Get(payerKey)
	str, _ := payer.(string)
	return str
}
