package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "waafipay_hpp/internal/adapter/http/dto/request"
	"waafipay_hpp/internal/domain/entities"
	"waafipay_hpp/internal/usecase"
	"waafipay_hpp/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMethodNotAllowed = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed. Use POST.", http.StatusMethodNotAllowed)
	errInvalidAction    = pkg.NewDomainErrorSimple("INVALID_ACTION", `Invalid action. Use "purchase", "withdraw", "refund", or "info".`, http.StatusBadRequest)
	errInvalidBody      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errGatewayService   = pkg.NewDomainErrorSimple("GATEWAY_ERROR", "WaafiPay service error", http.StatusBadGateway)
)

// HPPHandler exposes the WaafiPay HPP operations over HTTP.
type HPPHandler struct {
	usecase usecase.IHPPUseCase
}

func NewHPPHandler(uc usecase.IHPPUseCase) *HPPHandler {
	return &HPPHandler{usecase: uc}
}

type hppOperation func(ctx context.Context, payload request.HPPRequest) (json.RawMessage, error)

// Dispatch routes a request to purchase, refund or transaction info by its `action` field.
//
// @Summary      Run an HPP operation selected by action
// @Description  action is one of purchase, withdraw, refund, info, transaction-info (case-insensitive).
// @Tags         hpp
// @Accept       json
// @Produce      json
// @Param        request  body      request.HPPRequest  true  "HPP request"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      405      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      504      {object}  pkg.HTTPError
// @Router       /hpp [post]
func (h *HPPHandler) Dispatch(c *gin.Context) {
	payload, err := readHPPPayload(c)
	if err != nil {
		log.Printf("[hpp][handler] invalid payload err=%v", err)
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}

	action := payload.NormalizedAction()
	log.Printf("[hpp][handler] dispatch action=%q", action)

	switch action {
	case "purchase":
		h.run(c, "purchase", payload, h.purchase)
	case "withdraw", "refund":
		h.run(c, action, payload, h.refund)
	case "info", "transaction-info":
		h.run(c, action, payload, h.transactionInfo)
	default:
		c.JSON(errInvalidAction.HTTPStatus, errInvalidAction.ToHTTPError())
	}
}

// Purchase starts a hosted payment page purchase.
//
// @Summary      Create an HPP purchase
// @Tags         hpp
// @Accept       json
// @Produce      json
// @Param        request  body      request.HPPRequest  true  "referenceId and amount are required"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /hpp/purchase [post]
func (h *HPPHandler) Purchase(c *gin.Context) {
	h.bindAndRun(c, "purchase", h.purchase)
}

// Refund refunds (withdraws) a previous purchase.
//
// @Summary      Refund an HPP purchase
// @Tags         hpp
// @Accept       json
// @Produce      json
// @Param        request  body      request.HPPRequest  true  "transactionId and amount are required"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /hpp/refund [post]
// @Router       /hpp/withdraw [post]
func (h *HPPHandler) Refund(c *gin.Context) {
	h.bindAndRun(c, "refund", h.refund)
}

// TransactionInfo looks up a transaction by merchant reference.
//
// @Summary      Get HPP transaction info
// @Tags         hpp
// @Accept       json
// @Produce      json
// @Param        request  body      request.HPPRequest  true  "referenceId is required"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /hpp/transaction-info [post]
func (h *HPPHandler) TransactionInfo(c *gin.Context) {
	h.bindAndRun(c, "transaction-info", h.transactionInfo)
}

// MethodNotAllowed answers every non-POST request on an HPP route.
func MethodNotAllowed(c *gin.Context) {
	log.Printf("[hpp][handler] method not allowed method=%s path=%s", c.Request.Method, c.Request.URL.Path)
	c.JSON(errMethodNotAllowed.HTTPStatus, errMethodNotAllowed.ToHTTPError())
}

func (h *HPPHandler) purchase(ctx context.Context, payload request.HPPRequest) (json.RawMessage, error) {
	return h.usecase.Purchase(ctx, payload.ToPurchaseInput())
}

func (h *HPPHandler) refund(ctx context.Context, payload request.HPPRequest) (json.RawMessage, error) {
	return h.usecase.Refund(ctx, payload.ToRefundInput())
}

func (h *HPPHandler) transactionInfo(ctx context.Context, payload request.HPPRequest) (json.RawMessage, error) {
	return h.usecase.TransactionInfo(ctx, payload.ToTransactionInfoInput())
}

func (h *HPPHandler) bindAndRun(c *gin.Context, name string, op hppOperation) {
	payload, err := readHPPPayload(c)
	if err != nil {
		log.Printf("[hpp][handler] %s invalid payload err=%v", name, err)
		c.JSON(errInvalidBody.HTTPStatus, errInvalidBody.ToHTTPError())
		return
	}
	h.run(c, name, payload, op)
}

func (h *HPPHandler) run(c *gin.Context, name string, payload request.HPPRequest, op hppOperation) {
	log.Printf("[hpp][handler] %s start", name)

	resp, err := op(c.Request.Context(), payload)
	if err != nil {
		appErr := mapHPPError(err)
		log.Printf("[hpp][handler] %s failed status=%d code=%s err=%v", name, appErr.HTTPStatus, appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hpp][handler] %s success resp_len=%d", name, len(resp))

	c.Data(http.StatusOK, "application/json; charset=utf-8", resp)
}

// readHPPPayload decodes the body. An empty body decodes to a zero request.
func readHPPPayload(c *gin.Context) (request.HPPRequest, error) {
	var payload request.HPPRequest

	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func mapHPPError(err error) *pkg.AppError {
	var statusErr *entities.GatewayStatusError
	switch {
	case errors.Is(err, usecase.ErrMissingReferenceID),
		errors.Is(err, usecase.ErrMissingAmount),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.As(err, &statusErr):
		return errGatewayService.WithStatus(statusErr.StatusCode)
	case errors.Is(err, entities.ErrGatewayTimeout):
		return pkg.NewDomainError("GATEWAY_TIMEOUT", "WaafiPay service timeout", err, http.StatusGatewayTimeout)
	case errors.Is(err, entities.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "WaafiPay service unavailable", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrGatewayInvalidResponse):
		return pkg.NewDomainError("GATEWAY_INVALID_RESPONSE", "WaafiPay service returned an invalid response", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
