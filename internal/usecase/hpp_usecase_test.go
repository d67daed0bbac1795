package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"waafipay_hpp/internal/domain/entities"
	mock_interfaces "waafipay_hpp/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMerchant = entities.MerchantConfig{
	MerchantUID: "M0910291",
	StoreID:     "1000297",
	HppKey:      "HPP-KEY",
	BaseURL:     "https://sandbox.waafipay.net/asm",
}

func amountOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newFixedUseCase(gateway *mock_interfaces.MockIPaymentGateway) *HPPUseCase {
	uc := NewHPPUseCase(testMerchant, gateway)
	uc.now = func() time.Time { return time.Date(2026, time.October, 19, 9, 5, 7, 0, time.Local) }
	uc.newRequestID = func() string { return "req-fixed" }
	return uc
}

// captureEnvelope records the envelope sent to the gateway and answers with resp.
func captureEnvelope(gateway *mock_interfaces.MockIPaymentGateway, resp string, got *entities.Envelope) {
	gateway.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, env entities.Envelope) (json.RawMessage, error) {
			*got = env
			return json.RawMessage(resp), nil
		})
}

func TestHPPUseCase_Purchase(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		var env entities.Envelope
		captureEnvelope(gateway, `{"responseCode":"2001"}`, &env)

		resp, err := uc.Purchase(context.Background(), PurchaseInput{ReferenceID: "ORD-1", Amount: amountOf("10.50")})
		require.NoError(t, err)
		require.JSONEq(t, `{"responseCode":"2001"}`, string(resp))

		b, err := json.Marshal(env)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"schemaVersion": "1.0",
			"requestId": "req-fixed",
			"timestamp": "2026-10-19 09:05:07",
			"channelName": "WEB",
			"serviceName": "HPP_PURCHASE",
			"serviceParams": {
				"merchantUid": "M0910291",
				"storeId": "1000297",
				"hppKey": "HPP-KEY",
				"paymentMethod": "MWALLET_ACCOUNT",
				"hppSuccessCallbackUrl": "http://localhost:3000/api/hpp/success",
				"hppFailureCallbackUrl": "http://localhost:3000/api/hpp/failure",
				"hppRespDataFormat": 1,
				"transactionInfo": {
					"referenceId": "ORD-1",
					"amount": 10.5,
					"currency": "USD",
					"description": "Payment for order"
				}
			}
		}`, string(b))
	})

	t.Run("keeps caller values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		var env entities.Envelope
		captureEnvelope(gateway, `{}`, &env)

		_, err := uc.Purchase(context.Background(), PurchaseInput{
			ReferenceID:   "ORD-2",
			Amount:        amountOf("3"),
			Currency:      "SLSH",
			Description:   "Two coffees",
			PaymentMethod: "CREDIT_CARD",
			SuccessURL:    "https://shop.example/ok",
			FailureURL:    "https://shop.example/ko",
		})
		require.NoError(t, err)

		params, ok := env.ServiceParams.(entities.PurchaseParams)
		require.True(t, ok)
		require.Equal(t, "CREDIT_CARD", params.PaymentMethod)
		require.Equal(t, "https://shop.example/ok", params.HppSuccessCallbackURL)
		require.Equal(t, "https://shop.example/ko", params.HppFailureCallbackURL)
		require.Equal(t, "SLSH", params.TransactionInfo.Currency)
		require.Equal(t, "Two coffees", params.TransactionInfo.Description)
		require.Equal(t, json.Number("3"), params.TransactionInfo.Amount)
	})

	t.Run("validation never reaches gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		_, err := uc.Purchase(context.Background(), PurchaseInput{Amount: amountOf("1")})
		require.ErrorIs(t, err, ErrMissingReferenceID)

		_, err = uc.Purchase(context.Background(), PurchaseInput{ReferenceID: "ORD-1"})
		require.ErrorIs(t, err, ErrMissingAmount)

		_, err = uc.Purchase(context.Background(), PurchaseInput{ReferenceID: "ORD-1", Amount: amountOf("0")})
		require.ErrorIs(t, err, ErrInvalidAmount)

		_, err = uc.Purchase(context.Background(), PurchaseInput{ReferenceID: "ORD-1", Amount: amountOf("-2")})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestHPPUseCase_Refund(t *testing.T) {
	t.Run("builds refund params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		var env entities.Envelope
		captureEnvelope(gateway, `{"responseCode":"2001"}`, &env)

		_, err := uc.Refund(context.Background(), RefundInput{TransactionID: "40031129", Amount: amountOf("5.25")})
		require.NoError(t, err)
		require.Equal(t, entities.ServiceNameRefundPurchase, env.ServiceName)

		b, err := json.Marshal(env.ServiceParams)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"merchantUid": "M0910291",
			"storeId": "1000297",
			"hppKey": "HPP-KEY",
			"amount": 5.25,
			"transactionId": 40031129,
			"description": "Order refund"
		}`, string(b))
	})

	t.Run("validation never reaches gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		_, err := uc.Refund(context.Background(), RefundInput{Amount: amountOf("1")})
		require.ErrorIs(t, err, ErrMissingTransactionID)

		_, err = uc.Refund(context.Background(), RefundInput{TransactionID: "1"})
		require.ErrorIs(t, err, ErrMissingAmount)
	})
}

func TestHPPUseCase_TransactionInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := newFixedUseCase(gateway)

	var env entities.Envelope
	captureEnvelope(gateway, `{"params":{"state":"APPROVED"}}`, &env)

	resp, err := uc.TransactionInfo(context.Background(), TransactionInfoInput{ReferenceID: " ORD-1 "})
	require.NoError(t, err)
	require.JSONEq(t, `{"params":{"state":"APPROVED"}}`, string(resp))
	require.Equal(t, entities.ServiceNameTransactionInfo, env.ServiceName)

	b, err := json.Marshal(env.ServiceParams)
	require.NoError(t, err)
	require.JSONEq(t, `{"merchantUid":"M0910291","storeId":"1000297","hppKey":"HPP-KEY","referenceId":"ORD-1"}`, string(b))

	_, err = uc.TransactionInfo(context.Background(), TransactionInfoInput{})
	require.ErrorIs(t, err, ErrMissingReferenceID)
}

func TestHPPUseCase_GatewayErrors(t *testing.T) {
	t.Run("status error keeps type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, &entities.GatewayStatusError{StatusCode: 500})

		_, err := uc.TransactionInfo(context.Background(), TransactionInfoInput{ReferenceID: "ORD-1"})
		var statusErr *entities.GatewayStatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, 500, statusErr.StatusCode)
	})

	t.Run("timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newFixedUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, entities.ErrGatewayTimeout)

		_, err := uc.Refund(context.Background(), RefundInput{TransactionID: "7", Amount: amountOf("1")})
		require.ErrorIs(t, err, entities.ErrGatewayTimeout)
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewHPPUseCase(testMerchant, nil)
		_, err := uc.TransactionInfo(context.Background(), TransactionInfoInput{ReferenceID: "ORD-1"})
		require.ErrorIs(t, err, ErrGatewayNotConfigured)
	})
}

func TestHPPUseCase_RequestIDAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewHPPUseCase(testMerchant, gateway)

	var envs []entities.Envelope
	gateway.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, env entities.Envelope) (json.RawMessage, error) {
			envs = append(envs, env)
			return json.RawMessage(`{}`), nil
		})

	before := time.Now().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		_, err := uc.TransactionInfo(context.Background(), TransactionInfoInput{ReferenceID: "ORD-1"})
		require.NoError(t, err)
	}
	after := time.Now()

	require.Len(t, envs, 2)
	require.NotEmpty(t, envs[0].RequestID)
	require.NotEqual(t, envs[0].RequestID, envs[1].RequestID)

	ts, err := time.ParseInLocation(entities.TimestampLayout, envs[0].Timestamp, time.Local)
	require.NoError(t, err)
	require.False(t, ts.Before(before))
	require.False(t, ts.After(after))
}
