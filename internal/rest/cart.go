package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"nepolianStore/domain"
	"nepolianStore/internal/middleware"
	"nepolianStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CartHandler struct {
		validate    *validator.Validate
		cartService CartService
		timeout     time.Duration
	}

	CartService interface {
		GetCart(ctx context.Context, userID string) (domain.Cart, error)
		Add(ctx context.Context, userID string, productID uint64) (domain.Cart, error)
		SetQuantity(ctx context.Context, userID string, productID uint64, quantity int) (domain.Cart, error)
		Remove(ctx context.Context, userID string, productID uint64) (domain.Cart, error)
		Clear(ctx context.Context, userID string) error
	}

	AddToCartRequest struct {
		ProductID uint64 `json:"product_id" validate:"required"`
	}

	SetQuantityRequest struct {
		Quantity int `json:"quantity" validate:"required"`
	}

	CartResponse struct {
		Lines []domain.CartLine `json:"lines"`
		Total float64           `json:"total"`
	}
)

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		validate:    validator.New(),
		cartService: cartService,
		timeout:     10 * time.Second,
	}
}

func cartResponse(cart domain.Cart) CartResponse {
	return CartResponse{
		Lines: cart.Lines,
		Total: cart.Total(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cartResponse(cart)))
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userID := middleware.UserID(c)

	var request AddToCartRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate add to cart request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.Add(ctx, userID, request.ProductID)
	if err != nil {
		logger.Error("Failed to add product to cart", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(cartResponse(cart)))
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	userID := middleware.UserID(c)

	productId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var request SetQuantityRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate quantity request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.SetQuantity(ctx, userID, productId, request.Quantity)
	if err != nil {
		logger.Error("Failed to update cart quantity", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cartResponse(cart)))
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID := middleware.UserID(c)

	productId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cart, err := h.cartService.Remove(ctx, userID, productId)
	if err != nil {
		logger.Error("Failed to remove product from cart", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cartResponse(cart)))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.Clear(ctx, userID); err != nil {
		logger.Error("Failed to clear cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Cart cleared successfully"))
}
