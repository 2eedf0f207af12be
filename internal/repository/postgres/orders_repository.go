package postgres

import (
	"context"
	"errors"
	"fmt"
	"nepolianStore/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Create(&data).Error
	if err != nil {
		return domain.Orders{}, fmt.Errorf("failed to create order: %w", err)
	}

	return data, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint64) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	var order domain.Orders
	err := r.DB.WithContext(ctx).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Orders{}, errors.New("order not found")
		}
		return domain.Orders{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// List applies the console filters as one AND-conjunction and returns the
// page plus the total row count for the filtered set, newest orders first.
func (r *OrdersRepository) List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Model(&domain.Orders{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.Payment != nil {
		query = query.Where("payment = ?", *filter.Payment)
	}
	if filter.Search != "" {
		if filter.SearchBy == domain.SearchByCustomerName {
			query = query.Where("delivery_details->>'full_name' ILIKE ?", "%"+filter.Search+"%")
		} else {
			query = query.Where("transaction_uuid ILIKE ?", "%"+filter.Search+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []domain.Orders
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, total, nil
}

// MarkDelivered sets status and payment in one unconditional update. Running
// it twice writes the same values again, so the call is idempotent; it only
// errors when the order does not exist.
func (r *OrdersRepository) MarkDelivered(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"status":  domain.OrderStatusDelivered,
		"payment": true,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Orders{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to mark order delivered: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("order not found")
	}

	return nil
}
