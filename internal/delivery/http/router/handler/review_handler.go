package handler

import (
	"log/slog"
	"net/http"

	"bazar/internal/delivery/http/response"
	"bazar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles a review submission: one review per reviewer email per
// product, replaced in place on resubmission.
func (h *ReviewHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]any{"reviews": toReviewResponses(output.Reviews)},
		"Review saved")
}

// Remove handles the review deletion request.
func (h *ReviewHandler) Remove(c echo.Context) error {
	input := &usecase.DeleteReviewInput{
		ProductID: c.Param("productId"),
		Email:     c.Param("reviewerEmail"),
	}

	if err := h.uc.DeleteReview(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}
