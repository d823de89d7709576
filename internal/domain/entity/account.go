// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"users/internal/domain/user"
)

// Account is a user ready to be persisted: validated identity plus the
// storable (hashed) form of the password.
type Account struct {
	ID           *user.UserID   // Generated identifier for the account.
	Name         *user.UserName // Validated display name.
	PasswordHash string         // bcrypt hash; the plain password is never kept.
	CreatedAt    time.Time
}
