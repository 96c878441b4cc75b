package impl

import (
	"context"
	"testing"

	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	mockRepo "bazar/internal/mocks/repository"
	"bazar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:        "Panjabi",
		Description: "Hand-embroidered cotton panjabi",
		Price:       1450,
		Categories:  []string{"clothing"},
		FlashSale:   true,
	}

	fx.productRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, input.Name, product.Name)
			assert.Equal(t, input.Price, product.Price)
			assert.True(t, product.FlashSale)
		}).
		Return("64f0c2a4b1e2d3c4f5a6b7c8", nil)

	output, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "64f0c2a4b1e2d3c4f5a6b7c8", output.InsertedID)
}

func TestCatalogService_ListProducts_WithCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Product{
		{ID: "64f0c2a4b1e2d3c4f5a6b7c8", Name: "Panjabi", Categories: []string{"clothing"}},
	}

	fx.productRepo.EXPECT().
		Find(ctx, repository.ProductFilter{Category: "clothing"}).
		Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Category: "clothing"})

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestCatalogService_ListProducts_NilInput(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Find(ctx, repository.ProductFilter{}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListProducts(ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := &entity.Product{ID: "64f0c2a4b1e2d3c4f5a6b7c8", Name: "Panjabi"}

	fx.productRepo.EXPECT().FindByID(ctx, expected.ID).Return(expected, nil)

	product, err := fx.service.GetProduct(ctx, expected.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"
	expected := &repository.DeleteResult{DeletedCount: 1}

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(expected, nil)

	result, err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
