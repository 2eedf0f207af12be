package product

import (
	"context"
	"testing"

	"nepolianStore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uint64]domain.Product
	deleted  []uint64
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[uint64]domain.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uint64(len(f.products) + 1)
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return domain.Product{}, assert.AnError
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStorageRepo struct {
	uploaded []string
	removed  []string
	fail     bool
}

func (f *fakeStorageRepo) Upload(filename, contentType string, content []byte) (string, error) {
	if f.fail {
		return "", assert.AnError
	}
	f.uploaded = append(f.uploaded, filename)
	return "https://cdn.example.com/object/public/products/" + filename, nil
}

func (f *fakeStorageRepo) Remove(objectName string) error {
	if f.fail {
		return assert.AnError
	}
	f.removed = append(f.removed, objectName)
	return nil
}

func TestCreateProductValidation(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), &fakeStorageRepo{})

	for _, tc := range []struct {
		name    string
		product domain.Product
		wantErr string
	}{
		{
			name:    "missing name",
			product: domain.Product{Category: domain.CategoryMakeup, Price: 100},
			wantErr: "product name is required",
		},
		{
			name:    "unknown category",
			product: domain.Product{ProductName: "Lipstick", Category: "Garden Tools", Price: 100},
			wantErr: "unknown category",
		},
		{
			name:    "zero price",
			product: domain.Product{ProductName: "Lipstick", Category: domain.CategoryMakeup},
			wantErr: "price must be greater than 0",
		},
		{
			name:    "negative stock",
			product: domain.Product{ProductName: "Lipstick", Category: domain.CategoryMakeup, Price: 100, Available: -1},
			wantErr: "available cannot be negative",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			product := tc.product
			_, err := service.CreateProduct(context.Background(), &product)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestCreateProductStoresRow(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo, &fakeStorageRepo{})

	created, err := service.CreateProduct(context.Background(), &domain.Product{
		ProductName: "Lipstick",
		Category:    domain.CategoryMakeup,
		Price:       350,
		Available:   10,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Contains(t, repo.products, created.ID)
}

func TestDeleteProductRemovesImage(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{
		ID:          5,
		ProductName: "Lipstick",
		Category:    domain.CategoryMakeup,
		Price:       350,
		ImageURL:    "https://cdn.example.com/object/public/products/abc123.jpg",
	})
	storage := &fakeStorageRepo{}
	service := NewProductService(repo, storage)

	require.NoError(t, service.DeleteProduct(context.Background(), 5))
	assert.Equal(t, []uint64{5}, repo.deleted)
	assert.Equal(t, []string{"abc123.jpg"}, storage.removed)
}

func TestDeleteProductSurvivesStorageFailure(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{
		ID:       5,
		ImageURL: "https://cdn.example.com/object/public/products/abc123.jpg",
	})
	service := NewProductService(repo, &fakeStorageRepo{fail: true})

	// The row is gone even when the image removal fails.
	require.NoError(t, service.DeleteProduct(context.Background(), 5))
	assert.NotContains(t, repo.products, uint64(5))
}

func TestUploadProductImageRejectsNonImage(t *testing.T) {
	service := NewProductService(newFakeProductRepo(), &fakeStorageRepo{})

	_, err := service.UploadProductImage(context.Background(), "notes.txt", "text/plain", []byte("hello"))
	assert.EqualError(t, err, "file must be an image")

	_, err = service.UploadProductImage(context.Background(), "photo.jpg", "image/jpeg", nil)
	assert.EqualError(t, err, "image file is empty")
}

func TestUploadProductImage(t *testing.T) {
	storage := &fakeStorageRepo{}
	service := NewProductService(newFakeProductRepo(), storage)

	url, err := service.UploadProductImage(context.Background(), "photo.jpg", "image/jpeg", []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Contains(t, url, "photo.jpg")
	assert.Equal(t, []string{"photo.jpg"}, storage.uploaded)
}
