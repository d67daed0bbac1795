package request

import (
	"encoding/json"
	"strings"

	"waafipay_hpp/internal/usecase"

	"github.com/shopspring/decimal"
)

// HPPRequest is the merchant-facing body shared by every HPP route.
//
// `action` is only read by the unified endpoint. `amount` accepts a JSON number
// or a numeric string; `transactionId` likewise.
type HPPRequest struct {
	Action        string           `json:"action" example:"purchase"`
	ReferenceID   string           `json:"referenceId" example:"ORD-1001"`
	Amount        *decimal.Decimal `json:"amount" swaggertype:"number" example:"10.5"`
	Currency      string           `json:"currency" example:"USD"`
	Description   string           `json:"description" example:"Payment for order"`
	PaymentMethod string           `json:"paymentMethod" example:"MWALLET_ACCOUNT"`
	SuccessURL    string           `json:"successUrl" example:"http://localhost:3000/api/hpp/success"`
	FailureURL    string           `json:"failureUrl" example:"http://localhost:3000/api/hpp/failure"`
	TransactionID json.Number      `json:"transactionId" swaggertype:"integer" example:"40031129"`
}

func (r HPPRequest) NormalizedAction() string {
	return strings.ToLower(strings.TrimSpace(r.Action))
}

func (r HPPRequest) ToPurchaseInput() usecase.PurchaseInput {
	return usecase.PurchaseInput{
		ReferenceID:   r.ReferenceID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		SuccessURL:    r.SuccessURL,
		FailureURL:    r.FailureURL,
	}
}

func (r HPPRequest) ToRefundInput() usecase.RefundInput {
	return usecase.RefundInput{
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Description:   r.Description,
	}
}

func (r HPPRequest) ToTransactionInfoInput() usecase.TransactionInfoInput {
	return usecase.TransactionInfoInput{ReferenceID: r.ReferenceID}
}
