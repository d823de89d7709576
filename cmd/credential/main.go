package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"users/config"
	"users/internal/domain/service"
	"users/internal/infra/auth"
	logs "users/internal/infra/log"
	"users/internal/usecase"
	"users/internal/usecase/impl"

	"go.uber.org/fx"
)

// Supported subcommands:
// - hash:   validate a name and password, print the prepared account
// - verify: check a password against a stored hash

const exitMismatch = 2

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runErr error
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(func(uc usecase.CredentialUsecase, logger *slog.Logger) {
			runErr = runSubcommand(ctx, uc, os.Args[1:], os.Stdout)
			if runErr != nil {
				logger.Debug("Command failed", slog.Any("error", runErr))
			}
		}),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(exitCode(runErr))
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		newPasswordHasher,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCredentialService,
	)
}

// newPasswordHasher builds the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}
