// Package metrics records gate and upstream activity. The Recorder interface
// keeps the instrumented packages free of a prometheus dependency; the noop
// recorder is the default when metrics are disabled.
package metrics

import "time"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Event and operation names recorded by the gate and the upstream clients.
const (
	CounterChallengeIssued  = "challenge_issued"
	CounterVerification     = "verification"
	CounterUpstreamFallback = "upstream_fallback"
	OperationUpstreamFetch  = "upstream_fetch"
	OperationVerifyPayment  = "verify_payment"
)

// Label keys the recorders read from the labels map.
const (
	LabelTokenType = "token_type"
	LabelOutcome   = "outcome"
	LabelUpstream  = "upstream"
)

// NoopRecorder discards every observation.
type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                    {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
