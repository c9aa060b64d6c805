// Package gate implements the payment gate: token-type selection, 402
// challenge construction and payment verification against the ledger.
//
// The gate holds no mutable state across requests. Verification re-checks the
// ledger on every call, so the same proof token validates repeatedly across
// requests; amounts are not compared against the price and the challenge
// nonce is never bound to the transaction. These are known gaps of the
// current protocol version, kept deliberately.
package gate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/satflow/peggate/clients"
	"github.com/satflow/peggate/logger"
	"github.com/satflow/peggate/metrics"
	"github.com/satflow/peggate/types"
	"github.com/satflow/peggate/utils"
)

// ChallengeTTL is the advertised challenge validity window. It is emitted in
// every challenge but not enforced during verification.
const ChallengeTTL = 10 * time.Minute

// Gate decides challenge-vs-verify-vs-release for priced resources.
type Gate struct {
	cfg     types.PaymentConfig
	ledger  clients.TxLookuper
	timeout time.Duration
	logger  logger.Logger
	metrics metrics.Recorder
}

// New creates a payment gate bound to an immutable payment configuration and
// a ledger backend.
func New(cfg types.PaymentConfig, ledger clients.TxLookuper, opts ...Option) (*Gate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("gate requires a ledger client")
	}

	g := &Gate{
		cfg:     cfg,
		ledger:  ledger,
		timeout: 30 * time.Second,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type Option func(*Gate)

func WithLogger(l logger.Logger) Option {
	return func(g *Gate) {
		g.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(g *Gate) {
		g.metrics = r
	}
}

func WithTimeout(t time.Duration) Option {
	return func(g *Gate) {
		g.timeout = t
	}
}

// Config returns the gate's payment configuration.
func (g *Gate) Config() types.PaymentConfig {
	return g.cfg
}

// SelectTokenType resolves the payment denomination from an explicit hint.
// The header takes precedence over the query parameter; any value equal to
// the pegged-asset ticker, case-insensitively, selects the pegged asset and
// everything else selects the native token. Pure and total.
func SelectTokenType(header, query string) types.PriceToken {
	hint := strings.TrimSpace(header)
	if hint == "" {
		hint = strings.TrimSpace(query)
	}
	if strings.EqualFold(hint, types.TokenPeggedAsset.String()) {
		return types.TokenPeggedAsset
	}
	return types.TokenNative
}

// VerifyPayment checks a claimed payment transaction against the ledger. It
// always produces a definite verdict: transport and parse failures fold into
// an invalid result with a descriptive reason, never an error.
func (g *Gate) VerifyPayment(ctx context.Context, proofToken string) *types.VerificationResult {
	start := time.Now()
	result := g.verify(ctx, proofToken)
	g.metrics.ObserveLatency(metrics.OperationVerifyPayment, time.Since(start), map[string]string{metrics.LabelUpstream: "ledger"})

	outcome := "valid"
	if !result.Valid {
		outcome = "invalid"
		g.logger.Info("payment verification rejected", map[string]any{
			"proof":  proofToken,
			"reason": result.FailureReason,
		})
	}
	g.metrics.IncCounter(metrics.CounterVerification, map[string]string{metrics.LabelOutcome: outcome})

	return result
}

func (g *Gate) verify(ctx context.Context, proofToken string) *types.VerificationResult {
	txid := utils.NormalizeTxID(proofToken)

	if err := utils.ValidateTxID(txid); err != nil {
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("malformed proof token: %v", err),
		}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	lookup := g.ledger.GetTransaction(lookupCtx, txid)

	switch lookup.Outcome {
	case types.LookupNotFound:
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("transaction %s not found on %s", txid, g.cfg.Network),
		}

	case types.LookupTransportError:
		// Network or parse failures talking to the ledger fold into a
		// generic invalid verdict rather than a distinct fault.
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("could not verify transaction: %v", lookup.Err),
		}

	case types.LookupFound:
		return g.checkTransaction(lookup.Tx)

	default:
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("unexpected lookup outcome %d", lookup.Outcome),
		}
	}
}

// checkTransaction applies the four payment checks in order: status, kind,
// and target (address + name). No partial credit.
func (g *Gate) checkTransaction(tx *types.TransactionInfo) *types.VerificationResult {
	if tx.Status != types.TxStatusSuccess {
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("transaction status is %q, payment requires %q", tx.Status, types.TxStatusSuccess),
		}
	}

	if tx.Kind != types.TxKindContractCall {
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("transaction is a %q, payment requires a direct %q", tx.Kind, types.TxKindContractCall),
		}
	}

	want := g.cfg.PaymentContract.String()
	if tx.ContractID != want {
		return &types.VerificationResult{
			Valid:         false,
			FailureReason: fmt.Sprintf("transaction calls %q, payment requires %q", tx.ContractID, want),
		}
	}

	return &types.VerificationResult{
		Valid: true,
		Payer: tx.Sender,
	}
}
