package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bazar/internal/delivery/http/response"
	"bazar/internal/domain/entity"
	"bazar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// productResponse is the public shape of a product listing.
type productResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Image       string           `json:"image,omitempty"`
	Categories  []string         `json:"categories,omitempty"`
	FlashSale   bool             `json:"flash_sale"`
	Reviews     []reviewResponse `json:"reviews"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type reviewResponse struct {
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toReviewResponses(reviews []entity.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, reviewResponse{
			Email:      rev.Email,
			Name:       rev.Name,
			Rating:     rev.Rating,
			ReviewText: rev.ReviewText,
			CreatedAt:  rev.CreatedAt,
		})
	}

	return out
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Categories:  product.Categories,
		FlashSale:   product.FlashSale,
		Reviews:     toReviewResponses(product.Reviews),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the product insertion request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product inserted")
}

// List handles the product listing request with its optional `categories`
// and `flash_sale` query filters.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Category: c.QueryParam("categories"),
	}

	if raw := c.QueryParam("flash_sale"); raw != "" {
		flashSale, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "flash_sale must be a boolean")
		}
		input.FlashSale = &flashSale
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get handles the single-product request.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// Delete handles the product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	result, err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Product deleted")
}
