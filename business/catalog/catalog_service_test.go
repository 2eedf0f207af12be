package catalog

import (
	"context"
	"testing"

	"nepolianStore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	findByIDFn       func(ctx context.Context, id uint64) (domain.Product, error)
	findByCategoryFn func(ctx context.Context, category domain.Category, offset, limit int) ([]domain.Product, error)
	searchByNameFn   func(ctx context.Context, query string) ([]domain.Product, error)
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeProductRepo) FindByCategory(ctx context.Context, category domain.Category, offset, limit int) ([]domain.Product, error) {
	return f.findByCategoryFn(ctx, category, offset, limit)
}

func (f *fakeProductRepo) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	return f.searchByNameFn(ctx, query)
}

func makeProducts(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{ID: uint64(i + 1), ProductName: "Product", Category: domain.CategoryHairProducts}
	}
	return products
}

func TestListCategoryPaging(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &fakeProductRepo{
		findByCategoryFn: func(ctx context.Context, category domain.Category, offset, limit int) ([]domain.Product, error) {
			gotOffset, gotLimit = offset, limit
			return makeProducts(limit), nil
		},
	}

	service := NewCatalogService(repo)

	products, hasMore, err := service.ListCategory(context.Background(), domain.CategoryHairProducts, 3)
	require.NoError(t, err)
	assert.Len(t, products, DefaultPageSize)
	assert.True(t, hasMore)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, DefaultPageSize, gotLimit)
}

func TestListCategoryHasMoreHeuristic(t *testing.T) {
	// A full page always advertises a next page, even when the category's
	// row count is an exact multiple of the page size.
	for _, tc := range []struct {
		rows    int
		hasMore bool
	}{
		{rows: DefaultPageSize, hasMore: true},
		{rows: DefaultPageSize - 1, hasMore: false},
		{rows: 0, hasMore: false},
	} {
		repo := &fakeProductRepo{
			findByCategoryFn: func(ctx context.Context, category domain.Category, offset, limit int) ([]domain.Product, error) {
				return makeProducts(tc.rows), nil
			},
		}

		service := NewCatalogService(repo)

		_, hasMore, err := service.ListCategory(context.Background(), domain.CategoryHairProducts, 1)
		require.NoError(t, err)
		assert.Equal(t, tc.hasMore, hasMore, "rows=%d", tc.rows)
	}
}

func TestListCategoryClampsPage(t *testing.T) {
	var gotOffset int
	repo := &fakeProductRepo{
		findByCategoryFn: func(ctx context.Context, category domain.Category, offset, limit int) ([]domain.Product, error) {
			gotOffset = offset
			return nil, nil
		},
	}

	service := NewCatalogService(repo)

	_, _, err := service.ListCategory(context.Background(), domain.CategoryHairProducts, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, gotOffset)
}

func TestListCategoryUnknownCategory(t *testing.T) {
	service := NewCatalogService(&fakeProductRepo{})

	_, _, err := service.ListCategory(context.Background(), "Garden Tools", 1)
	assert.EqualError(t, err, "unknown category")
}

func TestSearchEmptyQuery(t *testing.T) {
	service := NewCatalogService(&fakeProductRepo{})

	products, err := service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProductByIDInvalid(t *testing.T) {
	service := NewCatalogService(&fakeProductRepo{})

	_, err := service.GetProductByID(context.Background(), 0)
	assert.EqualError(t, err, "invalid product id")
}
