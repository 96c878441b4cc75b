// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazar/internal/delivery/context"
	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	"bazar/internal/domain/service"
	"bazar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after checking the email is unused.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration with existing email", slog.String("email", input.Email))

		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check for existing user")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         input.Role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.String("email", input.Email), slog.String("userID", newUser.ID))

	return nil
}

// Login verifies the credentials and issues a signed token. A missing user
// and a wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.Generate(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign login token")
	}

	srv.log(ctx).Info("Login successful", slog.String("email", input.Email))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// ListUsers returns every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// PromoteToAdmin unconditionally upserts the user's role to "admin".
func (srv *userService) PromoteToAdmin(ctx context.Context, userID string) (*repository.UpdateResult, error) {
	result, err := srv.userRepo.PromoteToAdmin(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote user")
	}

	srv.log(ctx).Info("User promoted to admin", slog.String("userID", userID))

	return result, nil
}

// DeleteUser removes a user by id.
func (srv *userService) DeleteUser(ctx context.Context, userID string) (*repository.DeleteResult, error) {
	result, err := srv.userRepo.Delete(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", userID), slog.Int64("deleted", result.DeletedCount))

	return result, nil
}
