package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// MarketData is a point-in-time market reading for the pegged asset. Zero
// values mean the upstream was unavailable and the field degraded.
type MarketData struct {
	PriceUSD    decimal.Decimal `json:"priceUsd"`
	Volume24h   decimal.Decimal `json:"volume24h"`
	ChangePct24 decimal.Decimal `json:"changePct24h"`
}

// MarketDataClient fetches pegged-asset price and volume from a market-data
// API.
type MarketDataClient struct {
	url    string
	client *http.Client
}

func NewMarketDataClient(url string, timeout time.Duration) *MarketDataClient {
	return &MarketDataClient{
		url:    url,
		client: newHTTPClient(timeout),
	}
}

type marketResponse struct {
	SBTC struct {
		USD       float64 `json:"usd"`
		USDVol24h float64 `json:"usd_24h_vol"`
		USDChg24h float64 `json:"usd_24h_change"`
	} `json:"sbtc"`
}

// PeggedAssetMarket returns the current market reading, or zero values on any
// failure.
func (c *MarketDataClient) PeggedAssetMarket(ctx context.Context) MarketData {
	var raw marketResponse
	if _, err := getJSON(ctx, c.client, c.url, &raw); err != nil {
		return MarketData{}
	}

	return MarketData{
		PriceUSD:    decimal.NewFromFloat(raw.SBTC.USD),
		Volume24h:   decimal.NewFromFloat(raw.SBTC.USDVol24h),
		ChangePct24: decimal.NewFromFloat(raw.SBTC.USDChg24h),
	}
}
