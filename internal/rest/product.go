package rest

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"nepolianStore/domain"
	"nepolianStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	UploadProductImage(ctx context.Context, filename, contentType string, content []byte) (string, error)
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url"`
	Available   int     `json:"available" validate:"gte=0"`
}

type UpdateProductRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url"`
	Available   int     `json:"available" validate:"gte=0"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.CreateProduct(ctx, &domain.Product{
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.Category(req.Category),
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	})
	if err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.UpdateProduct(ctx, &domain.Product{
		ID:          productId,
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.Category(req.Category),
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	})
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to update product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productId); err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to delete product", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Product deleted successfully"))
}

func (h *ProductHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		logger.Error("Missing image file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	imageURL, err := h.productService.UploadProductImage(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), content)
	if err != nil {
		logger.Error("Failed to upload product image", err)
		return c.JSON(http.StatusBadGateway, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]interface{}{
		"image_url": imageURL,
	}))
}
