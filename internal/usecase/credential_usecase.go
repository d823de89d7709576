// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"users/internal/domain/entity"
)

// --- Input DTOs ---

// PrepareAccountInput defines the raw data for a new account.
type PrepareAccountInput struct {
	Name     string
	Password string
}

// VerifyCredentialInput pairs a stored hash with a candidate password.
type VerifyCredentialInput struct {
	PasswordHash string
	Password     string
}

// --- Output DTOs ---

// PrepareAccountOutput returns the validated account with its hashed password.
type PrepareAccountOutput struct {
	Account *entity.Account
}

// CredentialUsecase defines the credential operations the CLI depends on.
type CredentialUsecase interface {
	PrepareAccount(ctx context.Context, input *PrepareAccountInput) (*PrepareAccountOutput, error)
	// VerifyCredential returns domainerrors.ErrInvalidCredentials on mismatch.
	VerifyCredential(ctx context.Context, input *VerifyCredentialInput) error
}
