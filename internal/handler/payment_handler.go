package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"medvisa/internal/errors"
	"medvisa/internal/middleware"
	"medvisa/internal/service"
)

// PaymentHandler handles payment order and webhook endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrderRequest opens a payment order.
type CreateOrderRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// webhookBody is the gateway notification payload.
type webhookBody struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Event     string `json:"event"`
}

// CreateOrder godoc
// @Summary Create a payment order with the gateway
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Amount"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /payments/order [post]
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, errors.ErrInvalidToken)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return respondBadRequest(c, "amount must be positive")
	}

	txn, err := h.paymentService.CreateOrder(c.Request().Context(), user.ID, req.Amount)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusCreated, "payment order created", txn)
}

// ListTransactions godoc
// @Summary List the caller's payment transactions
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /payments [get]
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, errors.ErrInvalidToken)
	}

	txns, err := h.paymentService.ListTransactions(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "", txns)
}

// Webhook godoc
// @Summary Payment gateway webhook
// @Tags payment
// @Accept json
// @Produce json
// @Param X-Signature header string true "HMAC signature of the raw body"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondBadRequest(c, "failed to read body")
	}

	var body webhookBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return respondBadRequest(c, "invalid webhook payload")
	}

	txn, err := h.paymentService.HandleWebhook(c.Request().Context(), service.WebhookNotice{
		OrderID:   body.OrderID,
		PaymentID: body.PaymentID,
		Event:     body.Event,
		Signature: c.Request().Header.Get("X-Signature"),
		Raw:       raw,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "webhook processed", txn)
}
