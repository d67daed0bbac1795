package entities

import "encoding/json"

// ServiceName selects the gateway operation.
type ServiceName string

const (
	ServiceNamePurchase        ServiceName = "HPP_PURCHASE"
	ServiceNameRefundPurchase  ServiceName = "HPP_REFUNDPURCHASE"
	ServiceNameTransactionInfo ServiceName = "HPP_GETTRANINFO"
)

const (
	SchemaVersion   = "1.0"
	ChannelNameWeb  = "WEB"
	TimestampLayout = "2006-01-02 15:04:05"

	// HppRespDataFormatJSON asks the gateway for a JSON response body.
	HppRespDataFormatJSON = 1
)

// Envelope is the request body posted to the WaafiPay HPP API.
//
// ServiceParams holds one of PurchaseParams, RefundParams or TransactionInfoParams.
type Envelope struct {
	SchemaVersion string      `json:"schemaVersion"`
	RequestID     string      `json:"requestId"`
	Timestamp     string      `json:"timestamp"`
	ChannelName   string      `json:"channelName"`
	ServiceName   ServiceName `json:"serviceName"`
	ServiceParams any         `json:"serviceParams"`
}

type PurchaseParams struct {
	MerchantCredentials
	PaymentMethod         string          `json:"paymentMethod"`
	HppSuccessCallbackURL string          `json:"hppSuccessCallbackUrl"`
	HppFailureCallbackURL string          `json:"hppFailureCallbackUrl"`
	HppRespDataFormat     int             `json:"hppRespDataFormat"`
	TransactionInfo       TransactionInfo `json:"transactionInfo"`
}

type TransactionInfo struct {
	ReferenceID string      `json:"referenceId"`
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
}

type RefundParams struct {
	MerchantCredentials
	Amount        json.Number `json:"amount"`
	TransactionID json.Number `json:"transactionId"`
	Description   string      `json:"description"`
}

type TransactionInfoParams struct {
	MerchantCredentials
	ReferenceID string `json:"referenceId"`
}
