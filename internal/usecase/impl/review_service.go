package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazar/internal/delivery/context"
	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	"bazar/internal/domain/review"
	"bazar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface. It owns the
// one-review-per-email invariant: the merge itself is pure domain logic, and
// the repository persists it with atomic array updates.
type reviewService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview loads the product, merges the incoming review into its list
// and persists the result. The returned list is what the product holds after
// the write.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*usecase.SubmitReviewOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to load product for review")
	}

	incoming := entity.Review{
		Email:      input.Email,
		Name:       input.Name,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		CreatedAt:  time.Now(),
	}

	// A replacement keeps the original submission timestamp. This also keeps
	// the stored document stable under a byte-identical resubmission, which
	// the repository then reports as a write mismatch.
	if prev, ok := review.Find(product.Reviews, input.Email); ok {
		incoming.CreatedAt = prev.CreatedAt
	}

	merged := review.Upsert(product.Reviews, incoming)

	if err := srv.productRepo.UpsertReview(ctx, input.ProductID, &incoming); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// The product disappeared between the load and the write.
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to persist review")
	}

	srv.log(ctx).Info("Review merged",
		slog.String("productID", input.ProductID),
		slog.String("reviewer", input.Email),
		slog.Int("reviews", len(merged)))

	return &usecase.SubmitReviewOutput{Reviews: merged}, nil
}

// DeleteReview removes the reviewer's entry from the product's review list.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) error {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "failed to load product for review removal")
	}

	if _, err := review.Remove(product.Reviews, input.Email); err != nil {
		return errors.WithStack(domainerrors.ErrReviewNotFound)
	}

	if err := srv.productRepo.RemoveReview(ctx, input.ProductID, input.Email); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return errors.WithStack(domainerrors.ErrProductNotFound)
		case errors.Is(err, repository.ErrReviewNotFound):
			// Already removed by a concurrent request.
			return errors.WithStack(domainerrors.ErrReviewNotFound)
		default:
			return errors.Wrap(err, "failed to remove review")
		}
	}

	srv.log(ctx).Info("Review removed",
		slog.String("productID", input.ProductID),
		slog.String("reviewer", input.Email))

	return nil
}
