package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"waafipay_hpp/internal/domain/entities"
	"waafipay_hpp/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=hpp_usecase.go -destination=../adapter/http/handlers/mocks/mock_hpp_usecase.go -package=mocks

const (
	DefaultCurrency            = "USD"
	DefaultPurchaseDescription = "Payment for order"
	DefaultRefundDescription   = "Order refund"
	DefaultPaymentMethod       = "MWALLET_ACCOUNT"
	DefaultSuccessURL          = "http://localhost:3000/api/hpp/success"
	DefaultFailureURL          = "http://localhost:3000/api/hpp/failure"
)

var (
	ErrMissingReferenceID   = errors.New("referenceId is required")
	ErrMissingAmount        = errors.New("amount is required")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrMissingTransactionID = errors.New("transactionId is required")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// PurchaseInput carries the caller fields of a purchase. Empty optional fields get defaults.
type PurchaseInput struct {
	ReferenceID   string
	Amount        *decimal.Decimal
	Currency      string
	Description   string
	PaymentMethod string
	SuccessURL    string
	FailureURL    string
}

type RefundInput struct {
	TransactionID json.Number
	Amount        *decimal.Decimal
	Description   string
}

type TransactionInfoInput struct {
	ReferenceID string
}

// IHPPUseCase translates merchant requests into WaafiPay HPP calls.
type IHPPUseCase interface {
	Purchase(ctx context.Context, in PurchaseInput) (json.RawMessage, error)
	Refund(ctx context.Context, in RefundInput) (json.RawMessage, error)
	TransactionInfo(ctx context.Context, in TransactionInfoInput) (json.RawMessage, error)
}

type HPPUseCase struct {
	merchant entities.MerchantConfig
	gateway  interfaces.IPaymentGateway

	now          func() time.Time
	newRequestID func() string
}

var _ IHPPUseCase = (*HPPUseCase)(nil)

func NewHPPUseCase(merchant entities.MerchantConfig, gateway interfaces.IPaymentGateway) *HPPUseCase {
	return &HPPUseCase{
		merchant:     merchant,
		gateway:      gateway,
		now:          time.Now,
		newRequestID: uuid.NewString,
	}
}

func (u *HPPUseCase) Purchase(ctx context.Context, in PurchaseInput) (json.RawMessage, error) {
	referenceID := strings.TrimSpace(in.ReferenceID)
	log.Printf("[hpp][usecase] purchase start reference_id=%q", referenceID)
	if referenceID == "" {
		return nil, ErrMissingReferenceID
	}
	amount, err := requirePositiveAmount(in.Amount)
	if err != nil {
		log.Printf("[hpp][usecase] purchase invalid amount reference_id=%s err=%v", referenceID, err)
		return nil, err
	}

	params := entities.PurchaseParams{
		MerchantCredentials:   u.merchant.Credentials(),
		PaymentMethod:         valueOrDefault(in.PaymentMethod, DefaultPaymentMethod),
		HppSuccessCallbackURL: valueOrDefault(in.SuccessURL, DefaultSuccessURL),
		HppFailureCallbackURL: valueOrDefault(in.FailureURL, DefaultFailureURL),
		HppRespDataFormat:     entities.HppRespDataFormatJSON,
		TransactionInfo: entities.TransactionInfo{
			ReferenceID: referenceID,
			Amount:      amount,
			Currency:    valueOrDefault(in.Currency, DefaultCurrency),
			Description: valueOrDefault(in.Description, DefaultPurchaseDescription),
		},
	}
	return u.send(ctx, entities.ServiceNamePurchase, params)
}

func (u *HPPUseCase) Refund(ctx context.Context, in RefundInput) (json.RawMessage, error) {
	transactionID := json.Number(strings.TrimSpace(in.TransactionID.String()))
	log.Printf("[hpp][usecase] refund start transaction_id=%q", transactionID)
	if transactionID == "" {
		return nil, ErrMissingTransactionID
	}
	amount, err := requirePositiveAmount(in.Amount)
	if err != nil {
		log.Printf("[hpp][usecase] refund invalid amount transaction_id=%s err=%v", transactionID, err)
		return nil, err
	}

	params := entities.RefundParams{
		MerchantCredentials: u.merchant.Credentials(),
		Amount:              amount,
		TransactionID:       transactionID,
		Description:         valueOrDefault(in.Description, DefaultRefundDescription),
	}
	return u.send(ctx, entities.ServiceNameRefundPurchase, params)
}

func (u *HPPUseCase) TransactionInfo(ctx context.Context, in TransactionInfoInput) (json.RawMessage, error) {
	referenceID := strings.TrimSpace(in.ReferenceID)
	log.Printf("[hpp][usecase] transaction-info start reference_id=%q", referenceID)
	if referenceID == "" {
		return nil, ErrMissingReferenceID
	}

	params := entities.TransactionInfoParams{
		MerchantCredentials: u.merchant.Credentials(),
		ReferenceID:         referenceID,
	}
	return u.send(ctx, entities.ServiceNameTransactionInfo, params)
}

func (u *HPPUseCase) send(ctx context.Context, service entities.ServiceName, params any) (json.RawMessage, error) {
	if u.gateway == nil {
		log.Printf("[hpp][usecase] gateway not configured service=%s", service)
		return nil, ErrGatewayNotConfigured
	}

	env := u.envelope(service, params)
	log.Printf("[hpp][usecase] calling gateway service=%s request_id=%s", service, env.RequestID)

	resp, err := u.gateway.Send(ctx, env)
	if err != nil {
		log.Printf("[hpp][usecase] gateway failed service=%s request_id=%s err=%v", service, env.RequestID, err)
		return nil, fmt.Errorf("%s: %w", service, err)
	}
	log.Printf("[hpp][usecase] gateway success service=%s request_id=%s resp_len=%d", service, env.RequestID, len(resp))
	return resp, nil
}

func (u *HPPUseCase) envelope(service entities.ServiceName, params any) entities.Envelope {
	return entities.Envelope{
		SchemaVersion: entities.SchemaVersion,
		RequestID:     u.newRequestID(),
		Timestamp:     u.now().Format(entities.TimestampLayout),
		ChannelName:   entities.ChannelNameWeb,
		ServiceName:   service,
		ServiceParams: params,
	}
}

func requirePositiveAmount(amount *decimal.Decimal) (json.Number, error) {
	if amount == nil {
		return "", ErrMissingAmount
	}
	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}
	return json.Number(amount.String()), nil
}

func valueOrDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
