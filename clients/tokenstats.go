package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TokenStats describes pegged-asset supply and distribution. Zero values mean
// the upstream was unavailable.
type TokenStats struct {
	TotalSupply decimal.Decimal `json:"totalSupply"` // sats
	Holders     int64           `json:"holders"`
}

// TokenStatsClient reads pegged-asset supply and holder counts from the
// indexing service.
type TokenStatsClient struct {
	baseURL string
	assetID string
	client  *http.Client
}

func NewTokenStatsClient(baseURL, assetID string, timeout time.Duration) *TokenStatsClient {
	return &TokenStatsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		assetID: assetID,
		client:  newHTTPClient(timeout),
	}
}

type holdersResponse struct {
	TotalSupply string `json:"total_supply"`
	Total       int64  `json:"total"`
}

// PeggedAssetStats returns supply and holder counts, or zero values on any
// failure.
func (c *TokenStatsClient) PeggedAssetStats(ctx context.Context) TokenStats {
	url := fmt.Sprintf("%s/extended/v2/tokens/ft/%s/holders", c.baseURL, c.assetID)

	var raw holdersResponse
	if _, err := getJSON(ctx, c.client, url, &raw); err != nil {
		return TokenStats{}
	}

	supply, err := decimal.NewFromString(raw.TotalSupply)
	if err != nil {
		return TokenStats{}
	}

	return TokenStats{
		TotalSupply: supply,
		Holders:     raw.Total,
	}
}
