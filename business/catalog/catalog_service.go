package catalog

import (
	"context"
	"errors"
	"fmt"
	"nepolianStore/domain"
	"nepolianStore/pkg/logger"
)

// DefaultPageSize is how many products a storefront category shows per page.
const DefaultPageSize = 5

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category, offset, limit int) ([]domain.Product, error)
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
}

type catalogService struct {
	productRepo ProductRepository
}

func NewCatalogService(productRepo ProductRepository) *catalogService {
	return &catalogService{
		productRepo: productRepo,
	}
}

// ListCategory returns one page of a category. hasMore is a heuristic: a full
// page is assumed to have a next page, so when the category's row count is an
// exact multiple of the page size the last page still advertises more.
func (s *catalogService) ListCategory(ctx context.Context, category domain.Category, page int) ([]domain.Product, bool, error) {
	if !category.Valid() {
		logger.Error("unknown category", string(category))
		return nil, false, errors.New("unknown category")
	}

	if page < 1 {
		page = 1
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing category")
		return nil, false, fmt.Errorf("context error: %w", err)
	}

	offset := (page - 1) * DefaultPageSize
	products, err := s.productRepo.FindByCategory(ctx, category, offset, DefaultPageSize)
	if err != nil {
		logger.Error("Failed to find products by category", err)
		return nil, false, err
	}

	hasMore := len(products) == DefaultPageSize

	return products, hasMore, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return []domain.Product{}, nil
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.SearchByName(ctx, query)
	if err != nil {
		logger.Error("Failed to search products", err)
		return nil, err
	}

	return products, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return domain.Product{}, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting product")
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return domain.Product{}, err
	}

	return product, nil
}
