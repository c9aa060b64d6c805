package gate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satflow/peggate/metrics"
	"github.com/satflow/peggate/types"
	"github.com/satflow/peggate/utils"
)

// BuildChallenge constructs the 402 body for a priced resource. Every call
// generates a fresh nonce and a fixed ten-minute expiry; nothing is
// persisted, so a client may request unlimited distinct challenges for the
// same resource.
func (g *Gate) BuildChallenge(tokenType types.PriceToken, resource string, amounts types.PriceAmounts) types.ChallengeResponse {
	challenge := types.PaymentChallenge{
		Resource:  resource,
		Nonce:     uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(ChallengeTTL),
		Network:   g.cfg.Network.String(),
		PayTo:     g.cfg.PayTo,
	}

	if tokenType == types.TokenPeggedAsset && amounts.Pegged > 0 {
		g.fillPeggedChallenge(&challenge, amounts)
	} else {
		g.fillNativeChallenge(&challenge, amounts)
	}

	g.metrics.IncCounter(metrics.CounterChallengeIssued, map[string]string{metrics.LabelTokenType: challenge.TokenType.String()})
	g.logger.Debug("issued payment challenge", map[string]any{
		"resource":  resource,
		"tokenType": challenge.TokenType,
		"price":     challenge.Price,
	})

	return types.ChallengeResponse{
		Error:   fmt.Sprintf("payment required to access %s", resource),
		Code:    types.CodePaymentRequired,
		Payment: challenge,
	}
}

func (g *Gate) fillPeggedChallenge(c *types.PaymentChallenge, amounts types.PriceAmounts) {
	asset := g.cfg.PeggedAsset

	c.TokenType = types.TokenPeggedAsset
	c.Price = amounts.Pegged
	c.Unit = types.TokenPeggedAsset.Unit()
	c.Asset = &asset
	c.Instructions = []string{
		fmt.Sprintf("Sign an %s transfer of %d sats from %s to %s.", asset.AssetName, amounts.Pegged, asset.ContractID(), g.cfg.PayTo),
		"Include the signed transaction hex in the X-Payment header, or broadcast it yourself.",
		"Once the transaction is broadcast, retry this request with its id in the X-Payment header.",
	}
}

func (g *Gate) fillNativeChallenge(c *types.PaymentChallenge, amounts types.PriceAmounts) {
	contract := g.cfg.PaymentContract

	pegged := amounts.Pegged
	if pegged == 0 {
		pegged = utils.PeggedFallbackAmount(amounts.Native)
	}

	c.TokenType = types.TokenNative
	c.Price = amounts.Native
	c.Unit = types.TokenNative.Unit()
	c.Contract = &types.PaymentContractInfo{
		Address:  contract.Address,
		Name:     contract.Name,
		Function: g.cfg.PaymentFunction,
	}
	c.PaymentOptions = &types.PaymentOptions{
		Native: types.PaymentOption{
			Token:  types.TokenNative,
			Amount: amounts.Native,
			Unit:   types.TokenNative.Unit(),
		},
		Pegged: types.PaymentOption{
			Token:  types.TokenPeggedAsset,
			Amount: pegged,
			Unit:   types.TokenPeggedAsset.Unit(),
		},
	}
	c.Instructions = []string{
		fmt.Sprintf("Call %s::%s with %d micro-STX.", contract.String(), g.cfg.PaymentFunction, amounts.Native),
		fmt.Sprintf("Wait for the transaction to confirm on %s.", g.cfg.Network),
		"Retry this request with the transaction id in the X-Payment header.",
	}
}
