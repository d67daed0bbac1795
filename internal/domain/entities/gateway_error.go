package entities

import (
	"errors"
	"fmt"
)

var (
	ErrGatewayUnavailable     = errors.New("payment gateway unavailable")
	ErrGatewayTimeout         = errors.New("payment gateway timeout")
	ErrGatewayInvalidResponse = errors.New("payment gateway invalid response")
)

// GatewayStatusError reports a gateway answer with a non-200 status.
//
// Body is kept for logging only and never relayed to the caller.
type GatewayStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *GatewayStatusError) Error() string {
	return fmt.Sprintf("payment gateway returned status %d", e.StatusCode)
}
