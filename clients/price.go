package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// FallbackBTCPriceUSD is the fixed reference price used when the oracle
// cannot be reached.
var FallbackBTCPriceUSD = decimal.NewFromInt(97_000)

// PriceOracle fetches the USD reference price for the base asset.
type PriceOracle struct {
	url    string
	client *http.Client
}

func NewPriceOracle(url string, timeout time.Duration) *PriceOracle {
	return &PriceOracle{
		url:    url,
		client: newHTTPClient(timeout),
	}
}

type simplePriceResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}

// BTCPriceUSD returns the reference BTC price. On any failure it returns the
// fixed fallback constant and live=false; it never returns an error.
func (o *PriceOracle) BTCPriceUSD(ctx context.Context) (price decimal.Decimal, live bool) {
	var raw simplePriceResponse
	if _, err := getJSON(ctx, o.client, o.url, &raw); err != nil {
		return FallbackBTCPriceUSD, false
	}

	if raw.Bitcoin.USD <= 0 {
		return FallbackBTCPriceUSD, false
	}

	return decimal.NewFromFloat(raw.Bitcoin.USD), true
}
