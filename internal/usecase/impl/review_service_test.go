package impl

import (
	"context"
	"testing"
	"time"

	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	mockRepo "bazar/internal/mocks/repository"
	"bazar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(ReviewServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestReviewService_SubmitReview_FirstReview(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"
	input := &usecase.SubmitReviewInput{
		ProductID:  productID,
		Email:      "rahim@example.com",
		Name:       "Rahim",
		Rating:     5,
		ReviewText: "Excellent fabric",
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Panjabi"}, nil)
	fx.productRepo.EXPECT().
		UpsertReview(ctx, productID, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, productID string, rev *entity.Review) {
			assert.Equal(t, input.Email, rev.Email)
			assert.Equal(t, input.Rating, rev.Rating)
		}).
		Return(nil)

	output, err := fx.service.SubmitReview(ctx, input)

	require.NoError(t, err)
	require.Len(t, output.Reviews, 1)
	assert.Equal(t, input.Email, output.Reviews[0].Email)
	assert.Equal(t, input.ReviewText, output.Reviews[0].ReviewText)
}

func TestReviewService_SubmitReview_ReplacesExisting(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"
	firstSubmitted := time.Now().Add(-time.Hour)
	existing := []entity.Review{
		{Email: "karim@example.com", Name: "Karim", Rating: 4, ReviewText: "Good", CreatedAt: firstSubmitted},
		{Email: "rahim@example.com", Name: "Rahim", Rating: 2, ReviewText: "Changed my mind", CreatedAt: firstSubmitted},
	}
	input := &usecase.SubmitReviewInput{
		ProductID:  productID,
		Email:      "rahim@example.com",
		Name:       "Rahim",
		Rating:     5,
		ReviewText: "Grew on me",
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Reviews: existing}, nil)
	fx.productRepo.EXPECT().
		UpsertReview(ctx, productID, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, _ string, rev *entity.Review) {
			// A replacement keeps the first submission's timestamp.
			assert.True(t, rev.CreatedAt.Equal(firstSubmitted))
		}).
		Return(nil)

	output, err := fx.service.SubmitReview(ctx, input)

	require.NoError(t, err)
	require.Len(t, output.Reviews, 2)
	assert.Equal(t, "karim@example.com", output.Reviews[0].Email)
	assert.Equal(t, "rahim@example.com", output.Reviews[1].Email)
	assert.Equal(t, 5, output.Reviews[1].Rating)
	assert.Equal(t, "Grew on me", output.Reviews[1].ReviewText)
	assert.True(t, output.Reviews[1].CreatedAt.Equal(firstSubmitted))
}

func TestReviewService_SubmitReview_ProductNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.SubmitReviewInput{
		ProductID:  "64f0c2a4b1e2d3c4f5a6b7c8",
		Email:      "rahim@example.com",
		Rating:     5,
		ReviewText: "Excellent",
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, input.ProductID).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.SubmitReview(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_SubmitReview_IdenticalResubmission(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"
	input := &usecase.SubmitReviewInput{
		ProductID:  productID,
		Email:      "rahim@example.com",
		Name:       "Rahim",
		Rating:     5,
		ReviewText: "Excellent fabric",
	}
	stored := entity.Review{
		Email:      input.Email,
		Name:       input.Name,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		CreatedAt:  time.Now().Add(-time.Hour),
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Reviews: []entity.Review{stored}}, nil)
	// With the timestamp preserved the write is byte-identical to the stored
	// element, so the store matches without modifying and the repository
	// reports a write mismatch.
	fx.productRepo.EXPECT().
		UpsertReview(ctx, productID, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, _ string, rev *entity.Review) {
			assert.Equal(t, stored, *rev)
		}).
		Return(domainerrors.ErrReviewWriteMismatch)

	output, err := fx.service.SubmitReview(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrReviewWriteMismatch)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"
	email := "rahim@example.com"

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:      productID,
			Reviews: []entity.Review{{Email: email, Rating: 5}},
		}, nil)
	fx.productRepo.EXPECT().RemoveReview(ctx, productID, email).Return(nil)

	err := fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{ProductID: productID, Email: email})

	require.NoError(t, err)
}

func TestReviewService_DeleteReview_ProductNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{ProductID: productID, Email: "rahim@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_DeleteReview_ReviewNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := "64f0c2a4b1e2d3c4f5a6b7c8"

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:      productID,
			Reviews: []entity.Review{{Email: "karim@example.com", Rating: 4}},
		}, nil)

	err := fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{ProductID: productID, Email: "rahim@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
