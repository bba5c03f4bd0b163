// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account. The plaintext password is hashed before
// anything touches storage, and the created identity is never echoed back.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// The conflict AppError from the repository passes through unchanged.
		return err
	}

	srv.log(ctx).Info("Sign-up completed", slog.Int64("user_id", user.ID))

	return nil
}

// SignIn verifies credentials and issues a bearer access token. The two
// failure modes stay distinguishable on purpose: the stored behavior
// reports a missing account and a wrong password with different messages.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserDoesNotExist
		}

		return nil, errors.Wrap(err, "failed to find user for sign-in")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Sign-in rejected", slog.Int64("user_id", user.ID))

		return nil, domainerrors.ErrPasswordMismatch
	}

	token, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Sign-in completed", slog.Int64("user_id", user.ID))

	return &usecase.SignInOutput{AccessToken: token}, nil
}
