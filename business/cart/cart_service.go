package cart

import (
	"context"
	"errors"
	"fmt"
	"nepolianStore/domain"
	"nepolianStore/pkg/logger"
)

// CartRepository contract interface
type CartRepository interface {
	Get(ctx context.Context, userID string) (domain.Cart, error)
	Save(ctx context.Context, userID string, cart domain.Cart) error
	Clear(ctx context.Context, userID string) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type cartService struct {
	cartRepo    CartRepository
	productRepo ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo ProductRepository) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting cart")
		return domain.Cart{}, fmt.Errorf("context error: %w", err)
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return domain.Cart{}, err
	}

	return cart, nil
}

// Add puts one unit of the product in the cart, snapshotting its catalog
// fields. Adding a product already present is rejected rather than merged;
// quantity changes go through SetQuantity.
func (s *cartService) Add(ctx context.Context, userID string, productID uint64) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when adding to cart")
		return domain.Cart{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("Failed to find product for cart", err)
		return domain.Cart{}, err
	}

	if product.Available <= 0 {
		return domain.Cart{}, errors.New("product out of stock")
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return domain.Cart{}, err
	}

	if cart.Find(productID) >= 0 {
		return cart, errors.New("product already in cart")
	}

	cart.Lines = append(cart.Lines, domain.CartLine{
		ProductID:   product.ID,
		ProductName: product.ProductName,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Quantity:    1,
	})

	if err := s.cartRepo.Save(ctx, userID, cart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.Cart{}, err
	}

	return cart, nil
}

// SetQuantity updates one line's quantity, clamping anything below one up to
// one. Lines leave the cart through Remove, never through a zero quantity.
func (s *cartService) SetQuantity(ctx context.Context, userID string, productID uint64, quantity int) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating cart quantity")
		return domain.Cart{}, fmt.Errorf("context error: %w", err)
	}

	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return domain.Cart{}, err
	}

	idx := cart.Find(productID)
	if idx < 0 {
		return cart, errors.New("product not in cart")
	}

	cart.Lines[idx].Quantity = quantity

	if err := s.cartRepo.Save(ctx, userID, cart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.Cart{}, err
	}

	return cart, nil
}

// Remove drops the product's line. Removing a product that is not in the
// cart is a silent no-op.
func (s *cartService) Remove(ctx context.Context, userID string, productID uint64) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when removing from cart")
		return domain.Cart{}, fmt.Errorf("context error: %w", err)
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return domain.Cart{}, err
	}

	idx := cart.Find(productID)
	if idx < 0 {
		return cart, nil
	}

	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)

	if err := s.cartRepo.Save(ctx, userID, cart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.Cart{}, err
	}

	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when clearing cart")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		logger.Error("Failed to clear cart", err)
		return err
	}

	return nil
}
