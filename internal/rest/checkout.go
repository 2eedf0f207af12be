package rest

import (
	"context"
	"net/http"
	"time"

	"nepolianStore/business/checkout"
	"nepolianStore/domain"
	"nepolianStore/internal/middleware"
	"nepolianStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CheckoutHandler struct {
		validate        *validator.Validate
		checkoutService CheckoutService
		timeout         time.Duration
	}

	CheckoutService interface {
		GetSession(ctx context.Context, userID string) (domain.CheckoutSession, error)
		SelectPaymentMethod(ctx context.Context, userID, paymentMethod string) (domain.CheckoutSession, error)
		SubmitAddress(ctx context.Context, userID string, details domain.DeliveryDetails) (domain.CheckoutSession, error)
		Confirm(ctx context.Context, userID string) (checkout.ConfirmResult, error)
	}

	SelectPaymentMethodRequest struct {
		PaymentMethod string `json:"payment_method" validate:"required"`
	}

	SubmitAddressRequest struct {
		FullName      string `json:"full_name" validate:"required"`
		Province      string `json:"province" validate:"required"`
		District      string `json:"district" validate:"required"`
		LocalArea     string `json:"local_area" validate:"required"`
		ContactNumber string `json:"contact_number" validate:"required,len=10,numeric"`
	}
)

func NewCheckoutHandler(checkoutService CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		validate:        validator.New(),
		checkoutService: checkoutService,
		timeout:         30 * time.Second,
	}
}

func (h *CheckoutHandler) GetSession(c echo.Context) error {
	userID := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.checkoutService.GetSession(ctx, userID)
	if err != nil {
		logger.Error("Failed to get checkout session", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}

func (h *CheckoutHandler) SelectPaymentMethod(c echo.Context) error {
	userID := middleware.UserID(c)

	var request SelectPaymentMethodRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate payment method request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.checkoutService.SelectPaymentMethod(ctx, userID, request.PaymentMethod)
	if err != nil {
		logger.Error("Failed to select payment method", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}

func (h *CheckoutHandler) SubmitAddress(c echo.Context) error {
	userID := middleware.UserID(c)

	var request SubmitAddressRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate delivery details", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.checkoutService.SubmitAddress(ctx, userID, domain.DeliveryDetails{
		UserID:        userID,
		FullName:      request.FullName,
		Province:      request.Province,
		District:      request.District,
		LocalArea:     request.LocalArea,
		ContactNumber: request.ContactNumber,
	})
	if err != nil {
		logger.Error("Failed to submit delivery details", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(session))
}

func (h *CheckoutHandler) Confirm(c echo.Context) error {
	userID := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.checkoutService.Confirm(ctx, userID)
	if err != nil {
		logger.Error("Failed to confirm checkout", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(result))
}
