package orders

import (
	"context"
	"errors"
	"fmt"
	"nepolianStore/domain"
	"nepolianStore/pkg/logger"
)

// OrdersPerPage is the admin console page size.
const OrdersPerPage = 10

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
	FindByID(ctx context.Context, id uint64) (domain.Orders, error)
	List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error)
	MarkDelivered(ctx context.Context, id uint64) error
}

type ordersService struct {
	ordersRepo OrdersRepository
}

func NewOrdersService(ordersRepo OrdersRepository) *ordersService {
	return &ordersService{
		ordersRepo: ordersRepo,
	}
}

func (s *ordersService) ListOrders(ctx context.Context, filter domain.OrderFilter, page int) ([]domain.Orders, int64, error) {
	if page < 1 {
		page = 1
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing orders")
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	offset := (page - 1) * OrdersPerPage
	orders, total, err := s.ordersRepo.List(ctx, filter, offset, OrdersPerPage)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, 0, err
	}

	return orders, total, nil
}

func (s *ordersService) GetOrder(ctx context.Context, id uint64) (domain.Orders, error) {
	if id == 0 {
		logger.Error("invalid order id")
		return domain.Orders{}, errors.New("invalid order id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting order")
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	order, err := s.ordersRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find order by id", err)
		return domain.Orders{}, err
	}

	return order, nil
}

// MarkDelivered marks the order delivered and paid in one step. Delivery and
// payment are recorded together; a delivered order is always considered
// settled.
func (s *ordersService) MarkDelivered(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid order id")
		return errors.New("invalid order id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when marking order delivered")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.ordersRepo.MarkDelivered(ctx, id); err != nil {
		logger.Error("Failed to mark order delivered", err)
		return err
	}

	return nil
}
