package usecase

import (
	"context"

	"bazar/internal/domain/entity"
)

// SubmitReviewInput defines a review submission. Email is the reviewer's
// identity and the dedup key inside the product's review list.
type SubmitReviewInput struct {
	ProductID  string `json:"productId" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required"`
}

// SubmitReviewOutput returns the product's review list as it stands after
// the merge.
type SubmitReviewOutput struct {
	Reviews []entity.Review `json:"reviews"`
}

// DeleteReviewInput identifies the review to remove.
type DeleteReviewInput struct {
	ProductID string
	Email     string
}

// ReviewUsecase maintains the one-review-per-email invariant on a product's
// embedded review list.
type ReviewUsecase interface {
	// SubmitReview adds the review or replaces the reviewer's previous one.
	// Resubmitting an identical review fails with
	// domainerrors.ErrReviewWriteMismatch; see the repository notes.
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*SubmitReviewOutput, error)

	// DeleteReview removes the reviewer's entry from the product.
	DeleteReview(ctx context.Context, input *DeleteReviewInput) error
}
