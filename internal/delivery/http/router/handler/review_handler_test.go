package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazar/internal/delivery/http/validator"
	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	mockUsecase "bazar/internal/mocks/usecase"
	"bazar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReviewTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestReviewHandler_Submit_Success(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, newDiscardLogger())

	body := `{"productId":"64f0c2a4b1e2d3c4f5a6b7c8","email":"rahim@example.com","name":"Rahim","rating":5,"reviewText":"Excellent fabric"}`
	c, rec := newReviewTestContext(t, http.MethodPost, "/api/v1/review", body)

	uc.EXPECT().
		SubmitReview(mock.Anything, mock.AnythingOfType("*usecase.SubmitReviewInput")).
		Run(func(_ context.Context, input *usecase.SubmitReviewInput) {
			assert.Equal(t, "64f0c2a4b1e2d3c4f5a6b7c8", input.ProductID)
			assert.Equal(t, "rahim@example.com", input.Email)
			assert.Equal(t, 5, input.Rating)
		}).
		Return(&usecase.SubmitReviewOutput{
			Reviews: []entity.Review{
				{Email: "rahim@example.com", Name: "Rahim", Rating: 5, ReviewText: "Excellent fabric"},
			},
		}, nil)

	err := h.Submit(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reviews"`)
	assert.Contains(t, rec.Body.String(), "rahim@example.com")
}

func TestReviewHandler_Submit_RatingOutOfRange(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, newDiscardLogger())

	body := `{"productId":"64f0c2a4b1e2d3c4f5a6b7c8","email":"rahim@example.com","rating":9,"reviewText":"Too good"}`
	c, _ := newReviewTestContext(t, http.MethodPost, "/api/v1/review", body)

	err := h.Submit(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "Rating")
}

func TestReviewHandler_Submit_MalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, newDiscardLogger())

	c, rec := newReviewTestContext(t, http.MethodPost, "/api/v1/review", `{"rating":"not-a-number"}`)

	err := h.Submit(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestReviewHandler_Remove_Success(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, newDiscardLogger())

	c, rec := newReviewTestContext(t, http.MethodDelete, "/api/v1/review/64f0c2a4b1e2d3c4f5a6b7c8/rahim@example.com", "")
	c.SetParamNames("productId", "reviewerEmail")
	c.SetParamValues("64f0c2a4b1e2d3c4f5a6b7c8", "rahim@example.com")

	uc.EXPECT().
		DeleteReview(mock.Anything, &usecase.DeleteReviewInput{
			ProductID: "64f0c2a4b1e2d3c4f5a6b7c8",
			Email:     "rahim@example.com",
		}).
		Return(nil)

	err := h.Remove(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Review deleted")
}
