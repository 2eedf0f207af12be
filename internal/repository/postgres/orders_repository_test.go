package postgres

import (
	"context"
	"testing"

	"nepolianStore/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestListBuildsConjunction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrdersRepository(db)

	paid := false
	filter := domain.OrderFilter{
		Status:        domain.OrderStatusPendingDelivery,
		PaymentMethod: domain.PaymentMethodCOD,
		Payment:       &paid,
		Search:        "Sita",
		SearchBy:      domain.SearchByCustomerName,
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE status = \$1 AND payment_method = \$2 AND payment = \$3 AND delivery_details->>'full_name' ILIKE \$4`).
		WithArgs(domain.OrderStatusPendingDelivery, domain.PaymentMethodCOD, false, "%Sita%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE status = \$1 AND payment_method = \$2 AND payment = \$3 AND delivery_details->>'full_name' ILIKE \$4 ORDER BY created_at DESC LIMIT \$5`).
		WithArgs(domain.OrderStatusPendingDelivery, domain.PaymentMethodCOD, false, "%Sita%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_uuid", "total_amount", "status", "payment", "payment_method"}).
			AddRow(3, "uuid-3", 1000.0, domain.OrderStatusPendingDelivery, false, domain.PaymentMethodCOD))

	orders, total, err := repo.List(context.Background(), filter, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, "uuid-3", orders[0].TransactionUUID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSearchByTransactionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrdersRepository(db)

	filter := domain.OrderFilter{
		Search:   "abc",
		SearchBy: domain.SearchByTransactionID,
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE transaction_uuid ILIKE \$1`).
		WithArgs("%abc%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE transaction_uuid ILIKE \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("%abc%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	orders, total, err := repo.List(context.Background(), filter, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, orders)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDeliveredUpdatesStatusAndPayment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrdersRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET "payment"=\$1,"status"=\$2 WHERE id = \$3`).
		WithArgs(true, domain.OrderStatusDelivered, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkDelivered(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkDeliveredMissingOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrdersRepository(db)

	mock.ExpectExec(`UPDATE "orders" SET`).
		WithArgs(true, domain.OrderStatusDelivered, 999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkDelivered(context.Background(), 999)
	assert.EqualError(t, err, "order not found")
}

func TestFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrdersRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"\."id" = \$1`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 42)
	assert.EqualError(t, err, "order not found")
}

func TestCancelledContext(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewOrdersRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
