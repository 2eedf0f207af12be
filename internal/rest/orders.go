package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"nepolianStore/domain"
	"nepolianStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		ListOrders(ctx context.Context, filter domain.OrderFilter, page int) ([]domain.Orders, int64, error)
		GetOrder(ctx context.Context, id uint64) (domain.Orders, error)
		MarkDelivered(ctx context.Context, id uint64) error
	}

	OrdersPage struct {
		Orders []domain.Orders `json:"orders"`
		Total  int64           `json:"total"`
		Page   int             `json:"page"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

// GetOrders serves the admin console list. All query filters combine with
// AND; payment takes paid, unpaid, or all.
func (h *OrdersHandler) GetOrders(c echo.Context) error {
	filter := domain.OrderFilter{
		Status:        c.QueryParam("status"),
		PaymentMethod: c.QueryParam("payment_method"),
		Search:        c.QueryParam("search"),
		SearchBy:      c.QueryParam("search_by"),
	}

	switch c.QueryParam("payment") {
	case "paid":
		paid := true
		filter.Payment = &paid
	case "unpaid":
		paid := false
		filter.Payment = &paid
	case "", "all":
	default:
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "payment must be paid, unpaid or all"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, total, err := h.ordersService.ListOrders(ctx, filter, page)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if page < 1 {
		page = 1
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(OrdersPage{
		Orders: orders,
		Total:  total,
		Page:   page,
	}))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, orderId)
	if err != nil {
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get order by id", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) MarkDelivered(c echo.Context) error {
	orderId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.MarkDelivered(ctx, orderId); err != nil {
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to mark order delivered", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Order marked as delivered"))
}
