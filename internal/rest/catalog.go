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
	CatalogHandler struct {
		catalogService CatalogService
		timeout        time.Duration
	}

	CatalogService interface {
		ListCategory(ctx context.Context, category domain.Category, page int) ([]domain.Product, bool, error)
		Search(ctx context.Context, query string) ([]domain.Product, error)
		GetProductByID(ctx context.Context, id uint64) (domain.Product, error)
	}

	CategoryPage struct {
		Category domain.Category  `json:"category"`
		Products []domain.Product `json:"products"`
		Page     int              `json:"page"`
		HasMore  bool             `json:"has_more"`
	}
)

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		timeout:        10 * time.Second,
	}
}

// GetProducts serves the storefront listing. With ?search= it returns a flat
// result list; otherwise it returns one page per category. A category whose
// rows cannot be read is shown empty rather than failing the whole page.
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if query := c.QueryParam("search"); query != "" {
		products, err := h.catalogService.Search(ctx, query)
		if err != nil {
			logger.Error("Failed to search products", err)
			products = []domain.Product{}
		}

		return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
			"search":   query,
			"products": products,
		}))
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	if category := domain.Category(c.QueryParam("category")); category != "" {
		if !category.Valid() {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "unknown category"})
		}

		products, hasMore, err := h.catalogService.ListCategory(ctx, category, page)
		if err != nil {
			logger.Error("Failed to list category", err)
			products, hasMore = []domain.Product{}, false
		}

		return c.JSON(http.StatusOK, fres.Response.StatusOK(CategoryPage{
			Category: category,
			Products: products,
			Page:     page,
			HasMore:  hasMore,
		}))
	}

	pages := make([]CategoryPage, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		products, hasMore, err := h.catalogService.ListCategory(ctx, category, page)
		if err != nil {
			logger.Error("Failed to list category", err)
			products, hasMore = []domain.Product{}, false
		}

		pages = append(pages, CategoryPage{
			Category: category,
			Products: products,
			Page:     page,
			HasMore:  hasMore,
		})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(pages))
}

func (h *CatalogHandler) GetProductByID(c echo.Context) error {
	productIdStr := c.Param("id")

	productId, err := strconv.ParseUint(productIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.GetProductByID(ctx, productId)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}
