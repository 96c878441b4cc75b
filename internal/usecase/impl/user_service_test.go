package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	mockRepo "bazar/internal/mocks/repository"
	mockService "bazar/internal/mocks/service"
	"bazar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Rahim",
		Email:    "rahim@example.com",
		Password: "plain-secret",
		Role:     entity.RoleBuyer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, "hashed-secret", user.PasswordHash)
			assert.Equal(t, entity.RoleBuyer, user.Role)
		}).
		Return(nil)

	err := fx.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Rahim",
		Email:    "rahim@example.com",
		Password: "plain-secret",
		Role:     entity.RoleBuyer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{Email: input.Email}, nil)

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Rahim",
		Email:    "rahim@example.com",
		Password: "plain-secret",
		Role:     entity.RoleBuyer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", assert.AnError)

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "rahim@example.com",
		Password: "plain-secret",
	}
	storedUser := &entity.User{
		ID:           "64f0c2a4b1e2d3c4f5a6b7c8",
		Name:         "Rahim",
		Email:        input.Email,
		PasswordHash: "hashed-secret",
		Role:         entity.RoleBuyer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(storedUser).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, storedUser, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "plain-secret",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "rahim@example.com",
		Password: "wrong-secret",
	}
	storedUser := &entity.User{
		Email:        input.Email,
		PasswordHash: "hashed-secret",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: "64f0c2a4b1e2d3c4f5a6b7c8", Email: "a@example.com"},
		{ID: "64f0c2a4b1e2d3c4f5a6b7c9", Email: "b@example.com"},
	}

	fx.userRepo.EXPECT().List(ctx).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_PromoteToAdmin_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := "64f0c2a4b1e2d3c4f5a6b7c8"
	expected := &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}

	fx.userRepo.EXPECT().PromoteToAdmin(ctx, userID).Return(expected, nil)

	result, err := fx.service.PromoteToAdmin(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := "64f0c2a4b1e2d3c4f5a6b7c8"
	expected := &repository.DeleteResult{DeletedCount: 1}

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(expected, nil)

	result, err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
