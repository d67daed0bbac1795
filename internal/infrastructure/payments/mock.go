package payments

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"waafipay_hpp/internal/domain/entities"
)

const mockHppURL = "https://sandbox.waafipay.net/hpp/mock"

// mockResponse answers like a successful HPP call without leaving the process.
func mockResponse(envelope entities.Envelope) (json.RawMessage, error) {
	log.Printf("[hpp][gateway] mock send start service=%s request_id=%s", envelope.ServiceName, envelope.RequestID)

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	params := map[string]any{}
	switch p := envelope.ServiceParams.(type) {
	case entities.PurchaseParams:
		params["hppUrl"] = mockHppURL + "?hppRequestId=" + id
		params["hppRequestId"] = id
		params["referenceId"] = p.TransactionInfo.ReferenceID
	case entities.RefundParams:
		params["transactionId"] = p.TransactionID
		params["state"] = "APPROVED"
	case entities.TransactionInfoParams:
		params["referenceId"] = p.ReferenceID
		params["transactionId"] = id
		params["state"] = "APPROVED"
	}

	resp := map[string]any{
		"schemaVersion": entities.SchemaVersion,
		"timestamp":     time.Now().Format(entities.TimestampLayout),
		"responseId":    id,
		"requestId":     envelope.RequestID,
		"responseCode":  "2001",
		"errorCode":     "0",
		"responseMsg":   "RCS_SUCCESS",
		"params":        params,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[hpp][gateway] mock response marshal failed err=%v", err)
		return nil, err
	}
	log.Printf("[hpp][gateway] mock send success service=%s response_id=%s", envelope.ServiceName, id)
	return b, nil
}
