package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// PaymentHandler serves the gateway redirect landing pages. The gateway
// appends its own encoded payload; orders stay pending until an admin
// reconciles them, so these endpoints only acknowledge the redirect.
type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"message": "Payment completed. Your order is being processed.",
		"data":    c.QueryParam("data"),
	}))
}

func (h *PaymentHandler) PaymentFailure(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"message": "Payment was not completed. Your order remains unpaid.",
		"data":    c.QueryParam("data"),
	}))
}
