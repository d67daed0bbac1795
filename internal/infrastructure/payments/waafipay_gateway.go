package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"waafipay_hpp/internal/domain/entities"
	"waafipay_hpp/internal/usecase/interfaces"
)

var ErrMissingBaseURL = errors.New("missing BASE_URL")

const maxResponseBytes = 1 << 20

type WaafiPayGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*WaafiPayGateway)(nil)

func NewWaafiPayGateway(baseURL string, timeout time.Duration, mockMode bool) (*WaafiPayGateway, error) {
	if mockMode {
		log.Printf("[hpp][gateway] mock mode enabled")
		return &WaafiPayGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		log.Printf("[hpp][gateway] missing BASE_URL")
		return nil, ErrMissingBaseURL
	}
	log.Printf("[hpp][gateway] WaafiPay client initialized base_url=%s timeout=%s", baseURL, timeout)

	return &WaafiPayGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (g *WaafiPayGateway) Send(ctx context.Context, envelope entities.Envelope) (json.RawMessage, error) {
	if g.mockMode {
		return mockResponse(envelope)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("[hpp][gateway] payload marshal failed request_id=%s err=%v", envelope.RequestID, err)
		return nil, err
	}
	log.Printf("[hpp][gateway] send start service=%s request_id=%s payload_len=%d", envelope.ServiceName, envelope.RequestID, len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[hpp][gateway] transport failed request_id=%s err=%v", envelope.RequestID, err)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Printf("[hpp][gateway] reading body failed request_id=%s err=%v", envelope.RequestID, err)
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[hpp][gateway] non-200 response request_id=%s status=%d body=%s", envelope.RequestID, resp.StatusCode, string(raw))
		return nil, &entities.GatewayStatusError{StatusCode: resp.StatusCode, Body: raw}
	}

	if !json.Valid(raw) {
		log.Printf("[hpp][gateway] invalid json response request_id=%s body_len=%d", envelope.RequestID, len(raw))
		return nil, entities.ErrGatewayInvalidResponse
	}
	log.Printf("[hpp][gateway] send success service=%s request_id=%s resp_len=%d", envelope.ServiceName, envelope.RequestID, len(raw))

	return json.RawMessage(raw), nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", entities.ErrGatewayTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", entities.ErrGatewayTimeout, err)
	}
	return fmt.Errorf("%w: %v", entities.ErrGatewayUnavailable, err)
}
