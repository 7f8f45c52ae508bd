package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gramola/internal/errors"
	"gramola/internal/service"
)

// PaymentHandler handles plan listing and the prepay/confirm flow.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PrepayRequest represents a prepay request.
type PrepayRequest struct {
	PlanID string `json:"planId" validate:"required"`
}

// PrepayResponse carries the local transaction id and the provider payload,
// client_secret included, for the SPA's card widget.
type PrepayResponse struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

// ConfirmRequest represents a confirmation request. Token is either the
// payer's email or their confirmation-token id.
type ConfirmRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Token         string `json:"token" validate:"required"`
}

// ConfirmResponse represents a confirmation response.
type ConfirmResponse struct {
	Status  string `json:"status"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Plans godoc
// @Summary List the available subscription plans
// @Tags payments
// @Produce json
// @Success 200 {array} model.SubscriptionPlan
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/plans [get]
func (h *PaymentHandler) Plans(c echo.Context) error {
	plans, err := h.paymentService.GetAvailablePlans(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, plans)
}

// Prepay godoc
// @Summary Create a payment intent for a plan
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PrepayRequest true "Plan to pay for"
// @Success 200 {object} PrepayResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/prepay [post]
func (h *PaymentHandler) Prepay(c echo.Context) error {
	var req PrepayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	tx, err := h.paymentService.Prepay(c.Request().Context(), req.PlanID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PrepayResponse{
		ID:   tx.ID,
		Data: tx.DataMap(),
	})
}

// Confirm godoc
// @Summary Confirm a transaction after the provider reports success
// @Tags payments
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "Transaction and payer identity"
// @Success 200 {object} ConfirmResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/confirm [post]
func (h *PaymentHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	tx, err := h.paymentService.FindTransaction(c.Request().Context(), req.TransactionID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if tx == nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrTransactionNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, err := h.paymentService.ConfirmTransaction(c.Request().Context(), tx, req.Token)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ConfirmResponse{
		Status:  "succeeded",
		Email:   user.Email,
		Message: "payment confirmed",
	})
}

// Diag godoc
// @Summary Check Stripe configuration and connectivity
// @Tags payments
// @Produce json
// @Success 200 {object} service.DiagReport
// @Router /payments/diag [get]
func (h *PaymentHandler) Diag(c echo.Context) error {
	return c.JSON(http.StatusOK, h.paymentService.Diagnose(c.Request().Context()))
}
