package usecase

import (
	"context"

	"bazar/internal/domain/entity"
	"bazar/internal/domain/repository"
)

// CreateProductInput defines the listing fields accepted at insertion.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	FlashSale   bool     `json:"flash_sale"`
}

// CreateProductOutput carries the generated id of the inserted document.
type CreateProductOutput struct {
	InsertedID string `json:"insertedId"`
}

// ListProductsInput narrows the product listing. Category wins over
// FlashSale when both are present.
type ListProductsInput struct {
	Category  string
	FlashSale *bool
}

// CatalogUsecase defines the product listing operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*CreateProductOutput, error)
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// GetProduct fails with domainerrors.ErrProductNotFound when no document
	// has the given id; a malformed hex id surfaces as an internal fault.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	DeleteProduct(ctx context.Context, productID string) (*repository.DeleteResult, error)
}
