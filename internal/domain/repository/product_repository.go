package repository

import (
	"context"
	"errors"

	"bazar/internal/domain/entity"
)

// ErrProductNotFound is returned when no product document matches the given id.
var ErrProductNotFound = errors.New("product not found")

// ErrReviewNotFound is returned by RemoveReview when the product exists but
// carries no review for the given email.
var ErrReviewNotFound = errors.New("review not found")

// ProductFilter narrows a product listing query. Category takes precedence
// over FlashSale when both are set, matching the historical query contract.
type ProductFilter struct {
	Category  string
	FlashSale *bool
}

// ProductRepository defines the persistence operations for the products
// collection, including the embedded review writes.
type ProductRepository interface {
	// Insert persists a new product document and returns its generated hex id.
	Insert(ctx context.Context, product *entity.Product) (string, error)

	// Find returns the products matching the filter, unfiltered when zero-valued.
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves a single product by its hex id.
	// Returns ErrProductNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Delete removes a product document by id.
	Delete(ctx context.Context, id string) (*DeleteResult, error)

	// UpsertReview atomically replaces the review matching rev.Email inside
	// the product's review list, or pushes it when the reviewer has no entry
	// yet. A write that matches but modifies nothing (an identical
	// resubmission) surfaces as domainerrors.ErrReviewWriteMismatch.
	UpsertReview(ctx context.Context, productID string, rev *entity.Review) error

	// RemoveReview atomically pulls the review with the given email out of
	// the product's review list. Returns ErrProductNotFound or
	// ErrReviewNotFound when nothing matches.
	RemoveReview(ctx context.Context, productID string, email string) error
}
