package orders

import (
	"context"
	"errors"
	"testing"

	"nepolianStore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrdersRepo struct {
	createOrderFn   func(ctx context.Context, data domain.Orders) (domain.Orders, error)
	findByIDFn      func(ctx context.Context, id uint64) (domain.Orders, error)
	listFn          func(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error)
	markDeliveredFn func(ctx context.Context, id uint64) error
}

func (f *fakeOrdersRepo) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	return f.createOrderFn(ctx, data)
}

func (f *fakeOrdersRepo) FindByID(ctx context.Context, id uint64) (domain.Orders, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeOrdersRepo) List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error) {
	return f.listFn(ctx, filter, offset, limit)
}

func (f *fakeOrdersRepo) MarkDelivered(ctx context.Context, id uint64) error {
	return f.markDeliveredFn(ctx, id)
}

func TestListOrdersPaging(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &fakeOrdersRepo{
		listFn: func(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error) {
			gotOffset, gotLimit = offset, limit
			return []domain.Orders{{ID: 1}}, 37, nil
		},
	}

	service := NewOrdersService(repo)

	orders, total, err := service.ListOrders(context.Background(), domain.OrderFilter{}, 3)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(37), total)
	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, OrdersPerPage, gotLimit)
}

func TestListOrdersClampsPage(t *testing.T) {
	var gotOffset int
	repo := &fakeOrdersRepo{
		listFn: func(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error) {
			gotOffset = offset
			return nil, 0, nil
		},
	}

	service := NewOrdersService(repo)

	for _, page := range []int{0, -2} {
		_, _, err := service.ListOrders(context.Background(), domain.OrderFilter{}, page)
		require.NoError(t, err)
		assert.Equal(t, 0, gotOffset)
	}
}

func TestListOrdersPassesFilter(t *testing.T) {
	var gotFilter domain.OrderFilter
	repo := &fakeOrdersRepo{
		listFn: func(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Orders, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	service := NewOrdersService(repo)

	paid := true
	filter := domain.OrderFilter{
		Status:        domain.OrderStatusPendingDelivery,
		PaymentMethod: domain.PaymentMethodCOD,
		Payment:       &paid,
		Search:        "Sita",
		SearchBy:      domain.SearchByCustomerName,
	}

	_, _, err := service.ListOrders(context.Background(), filter, 1)
	require.NoError(t, err)
	assert.Equal(t, filter, gotFilter)
}

func TestMarkDeliveredIdempotent(t *testing.T) {
	// The repository update writes the same values every time, so repeating
	// the call succeeds.
	calls := 0
	repo := &fakeOrdersRepo{
		markDeliveredFn: func(ctx context.Context, id uint64) error {
			calls++
			return nil
		},
	}

	service := NewOrdersService(repo)

	require.NoError(t, service.MarkDelivered(context.Background(), 7))
	require.NoError(t, service.MarkDelivered(context.Background(), 7))
	assert.Equal(t, 2, calls)
}

func TestMarkDeliveredMissingOrder(t *testing.T) {
	repo := &fakeOrdersRepo{
		markDeliveredFn: func(ctx context.Context, id uint64) error {
			return errors.New("order not found")
		},
	}

	service := NewOrdersService(repo)

	err := service.MarkDelivered(context.Background(), 999)
	assert.EqualError(t, err, "order not found")
}

func TestMarkDeliveredInvalidID(t *testing.T) {
	service := NewOrdersService(&fakeOrdersRepo{})

	err := service.MarkDelivered(context.Background(), 0)
	assert.EqualError(t, err, "invalid order id")
}

func TestGetOrderInvalidID(t *testing.T) {
	service := NewOrdersService(&fakeOrdersRepo{})

	_, err := service.GetOrder(context.Background(), 0)
	assert.EqualError(t, err, "invalid order id")
}
