package product

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"nepolianStore/domain"
	"nepolianStore/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

// StorageRepository contract interface
type StorageRepository interface {
	Upload(filename, contentType string, content []byte) (string, error)
	Remove(objectName string) error
}

type productService struct {
	productRepo ProductRepository
	storageRepo StorageRepository
}

func NewProductService(productRepo ProductRepository, storageRepo StorageRepository) *productService {
	return &productService{
		productRepo: productRepo,
		storageRepo: storageRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("Invalid product data", err)
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("Invalid product data", err)
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		logger.Error("Failed to find product for update", err)
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("Failed to update product", err)
		return nil, err
	}

	updated, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("Failed to re-fetch updated product", err)
		return nil, err
	}

	return &updated, nil
}

// DeleteProduct removes the row and then its stored image. The image removal
// is best effort; an orphaned object costs storage, a dangling row costs
// correctness.
func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid product id")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find product for delete", err)
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete product", err)
		return err
	}

	if product.ImageURL != "" {
		objectName := path.Base(product.ImageURL)
		if err := s.storageRepo.Remove(objectName); err != nil {
			logger.Error("Failed to remove product image", err)
		}
	}

	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, filename, contentType string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when uploading product image")
		return "", fmt.Errorf("context error: %w", err)
	}

	if len(content) == 0 {
		return "", errors.New("image file is empty")
	}

	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.New("file must be an image")
	}

	imageURL, err := s.storageRepo.Upload(filename, contentType, content)
	if err != nil {
		logger.Error("Failed to upload product image", err)
		return "", err
	}

	return imageURL, nil
}

func validateProduct(product *domain.Product) error {
	if product.ProductName == "" {
		return errors.New("product name is required")
	}

	if !product.Category.Valid() {
		return errors.New("unknown category")
	}

	if product.Price <= 0 {
		return errors.New("price must be greater than 0")
	}

	if product.Available < 0 {
		return errors.New("available cannot be negative")
	}

	return nil
}
