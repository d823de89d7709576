// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/service"
	"users/internal/domain/user"
	"users/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	hasher service.PasswordHasher
	logger *slog.Logger
	now    func() time.Time
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		hasher: params.Hasher,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *credentialService) PrepareAccount(ctx context.Context, input *usecase.PrepareAccountInput) (*usecase.PrepareAccountOutput, error) {
	srv.logger.Debug("Preparing account", slog.String("name", input.Name))

	nameResult := user.CreateUserName(user.UserNameProps{Value: input.Name})
	if nameResult.Failed() {
		srv.logger.Warn("Account rejected", slog.String("name", input.Name), slog.Any("error", nameResult.Err()))

		return nil, errors.Wrap(nameResult.Err(), "invalid user name")
	}

	credentialResult := user.CreateUserCredential(user.UserCredentialProps{Value: input.Password})
	if credentialResult.Failed() {
		srv.logger.Warn("Account rejected", slog.String("name", input.Name), slog.Any("error", credentialResult.Err()))

		return nil, errors.Wrap(credentialResult.Err(), "invalid password")
	}

	hash, err := credentialResult.Value().HashedValue(ctx, srv.hasher)
	if errors.Is(err, domainerrors.ErrPasswordTooLong) {
		srv.logger.Warn("Account rejected", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordTooLong.WithDetails("password exceeds 72 bytes"), "invalid password")
	}
	if err != nil {
		srv.logger.Error("Password hashing failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		ID:           user.NewUserID(),
		Name:         nameResult.Value(),
		PasswordHash: hash,
		CreatedAt:    srv.now(),
	}
	srv.logger.Debug("Account prepared", slog.String("userID", account.ID.String()))

	return &usecase.PrepareAccountOutput{Account: account}, nil
}

func (srv *credentialService) VerifyCredential(ctx context.Context, input *usecase.VerifyCredentialInput) error {
	storedResult := user.CreateUserCredential(user.UserCredentialProps{Value: input.PasswordHash, Hashed: true})
	if storedResult.Failed() {
		return errors.Wrap(storedResult.Err(), "invalid stored hash")
	}

	if !storedResult.Value().ComparePassword(ctx, srv.hasher, input.Password) {
		srv.logger.Warn("Credential verification failed", slog.Any("error", domainerrors.ErrInvalidCredentials))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "verification failed")
	}

	srv.logger.Debug("Credential verified")

	return nil
}
