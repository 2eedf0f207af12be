package postgres

import (
	"context"
	"testing"

	"nepolianStore/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByCategoryPagesInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE category = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
		WithArgs(string(domain.CategoryHairProducts), 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "category"}).
			AddRow(6, "Argan Oil Shampoo", string(domain.CategoryHairProducts)))

	products, err := repo.FindByCategory(context.Background(), domain.CategoryHairProducts, 5, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint64(6), products[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchByNameUsesILike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_name ILIKE \$1`).
		WithArgs("%shampoo%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name"}).
			AddRow(1, "Argan Oil Shampoo"))

	products, err := repo.SearchByName(context.Background(), "shampoo")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestGetAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT "id","available" FROM "products" WHERE "products"\."id" = \$1`).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "available"}).AddRow(3, 4))

	available, err := repo.GetAvailable(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, available)
}

func TestSetAvailableAllowsNegative(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`UPDATE "products" SET "available"=\$1 WHERE id = \$2`).
		WithArgs(-1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetAvailable(context.Background(), 3, -1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`DELETE FROM "products" WHERE "products"\."id" = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.EqualError(t, err, "product not found or already deleted")
}
