package types

import (
	"fmt"
	"time"
)

// PriceToken selects which currency a payment is denominated in.
type PriceToken string

const (
	// TokenNative is the chain's base gas/settlement currency.
	TokenNative PriceToken = "STX"

	// TokenPeggedAsset is the Bitcoin-pegged token.
	TokenPeggedAsset PriceToken = "sBTC"
)

func (t PriceToken) String() string {
	return string(t)
}

// Unit returns the smallest denomination unit for the token.
func (t PriceToken) Unit() string {
	if t == TokenPeggedAsset {
		return "sats"
	}
	return "micro-STX"
}

// ContractID identifies a deployed contract as address.name.
type ContractID struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

func (c ContractID) String() string {
	return fmt.Sprintf("%s.%s", c.Address, c.Name)
}

// AssetPointer identifies the pegged-asset token contract.
type AssetPointer struct {
	ContractAddress string `json:"contractAddress"`
	ContractName    string `json:"contractName"`
	AssetName       string `json:"assetName"`
	Decimals        int    `json:"decimals"`
}

func (a AssetPointer) ContractID() string {
	return fmt.Sprintf("%s.%s", a.ContractAddress, a.ContractName)
}

// PaymentOptions shows the price of a resource in both denominations so a
// client can decide how to pay before retrying.
type PaymentOptions struct {
	Native PaymentOption `json:"native"`
	Pegged PaymentOption `json:"pegged"`
}

type PaymentOption struct {
	Token  PriceToken `json:"token"`
	Amount uint64     `json:"amount"`
	Unit   string     `json:"unit"`
}

// PaymentChallenge is the body of an HTTP 402 response. It is a pure response
// artifact: challenges are never stored, and ExpiresAt is emitted but not
// enforced at verification time.
type PaymentChallenge struct {
	Resource  string    `json:"resource"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
	Network   string    `json:"network"`

	// Price is the required amount in the smallest unit of TokenType.
	Price     uint64     `json:"price"`
	Unit      string     `json:"unit"`
	PayTo     string     `json:"payTo"`
	TokenType PriceToken `json:"tokenType"`

	// Contract is set on the native branch: the payment contract to call.
	Contract *PaymentContractInfo `json:"contract,omitempty"`

	// Asset is set on the pegged branch: the token contract to transfer.
	Asset *AssetPointer `json:"asset,omitempty"`

	PaymentOptions *PaymentOptions `json:"paymentOptions,omitempty"`
	Instructions   []string        `json:"instructions"`
}

// PaymentContractInfo describes the contract call a native payment must make.
type PaymentContractInfo struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Function string `json:"function"`
}

// ChallengeResponse wraps a challenge with the machine-readable code clients
// dispatch on.
type ChallengeResponse struct {
	Error   string           `json:"error"`
	Code    string           `json:"code"`
	Payment PaymentChallenge `json:"payment"`
}

// CodePaymentRequired is the code carried by every 402 body.
const CodePaymentRequired = "PAYMENT_REQUIRED"

// VerificationResult is the Payment Gate's verdict on a proof token. Produced
// once per verification call and never cached.
type VerificationResult struct {
	Valid         bool   `json:"valid"`
	FailureReason string `json:"failureReason,omitempty"`
	Payer         string `json:"payer,omitempty"`
}

// GateError is a structured error surfaced to API clients.
type GateError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Verification failure codes. Every failure is terminal for the request; the
// caller resubmits with a new or corrected proof token.
const (
	ErrTransactionNotFound      = "TRANSACTION_NOT_FOUND"
	ErrTransactionNotSuccessful = "TRANSACTION_NOT_SUCCESSFUL"
	ErrWrongOperationKind       = "WRONG_OPERATION_KIND"
	ErrWrongContractTarget      = "WRONG_CONTRACT_TARGET"
	ErrVerificationTransport    = "VERIFICATION_TRANSPORT_FAILURE"
)

// PaymentConfig is the immutable payment configuration injected into the gate
// at startup.
type PaymentConfig struct {
	Network Network `json:"network"`

	// PayTo receives payments in both denominations.
	PayTo string `json:"payTo" validate:"required"`

	// PaymentContract is the contract a native payment must call directly.
	PaymentContract ContractID `json:"paymentContract"`

	// PaymentFunction is the function name advertised in challenges.
	PaymentFunction string `json:"paymentFunction" validate:"required"`

	// PeggedAsset is the sBTC token contract.
	PeggedAsset AssetPointer `json:"peggedAsset"`
}

func (c *PaymentConfig) Validate() error {
	if c.PayTo == "" {
		return fmt.Errorf("paymentConfig.payTo is required")
	}
	if c.PaymentContract.Address == "" || c.PaymentContract.Name == "" {
		return fmt.Errorf("paymentConfig.paymentContract requires both address and name")
	}
	if c.PaymentFunction == "" {
		return fmt.Errorf("paymentConfig.paymentFunction is required")
	}
	if c.Network == "" {
		return fmt.Errorf("paymentConfig.network is required")
	}
	return nil
}
