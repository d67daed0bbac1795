package interfaces

import (
	"context"
	"encoding/json"

	"waafipay_hpp/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts the WaafiPay HPP API.
//
// Send posts one envelope and returns the gateway JSON body as-is on HTTP 200.
// Failures are reported as *entities.GatewayStatusError (non-200),
// entities.ErrGatewayTimeout, entities.ErrGatewayUnavailable or
// entities.ErrGatewayInvalidResponse.
type IPaymentGateway interface {
	Send(ctx context.Context, envelope entities.Envelope) (json.RawMessage, error)
}
