package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazar/internal/delivery/context"
	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	"bazar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct inserts a new listing and returns the generated id.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.CreateProductOutput, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Categories:  input.Categories,
		FlashSale:   input.FlashSale,
	}

	id, err := srv.productRepo.Insert(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert product")
	}

	srv.log(ctx).Info("Product inserted", slog.String("productID", id), slog.String("name", input.Name))

	return &usecase.CreateProductOutput{InsertedID: id}, nil
}

// ListProducts returns the products matching the optional filter.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{}
	if input != nil {
		filter.Category = input.Category
		filter.FlashSale = input.FlashSale
	}

	products, err := srv.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single listing by its hex id.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// DeleteProduct removes a listing by id.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID string) (*repository.DeleteResult, error) {
	result, err := srv.productRepo.Delete(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", productID), slog.Int64("deleted", result.DeletedCount))

	return result, nil
}
