package user

import (
	"github.com/google/uuid"

	domainerrors "users/internal/domain/errors"
	"users/internal/domain/shared"
)

type userIDProps struct {
	value uuid.UUID
}

// UserID identifies a user account.
type UserID struct {
	vo shared.ValueObject[userIDProps]
}

// NewUserID generates a fresh random identifier.
func NewUserID() *UserID {
	return &UserID{vo: shared.NewValueObject(userIDProps{value: uuid.New()})}
}

// CreateUserID parses raw into a UserID. The nil UUID is rejected.
func CreateUserID(raw string) shared.Result[*UserID] {
	if g := shared.AgainstNullOrUndefined(raw, "userId"); !g.Succeeded {
		return shared.Fail[*UserID](g.Err(domainerrors.ErrArgumentMissing))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return shared.Fail[*UserID](domainerrors.ErrInvalidUserID.WithCause(err))
	}

	if id == uuid.Nil {
		return shared.Fail[*UserID](domainerrors.ErrInvalidUserID.WithDetails("userId is the nil UUID"))
	}

	return shared.Ok(&UserID{vo: shared.NewValueObject(userIDProps{value: id})})
}

// UUID returns the underlying identifier.
func (id *UserID) UUID() uuid.UUID {
	return id.vo.Props().value
}

func (id *UserID) String() string {
	return id.UUID().String()
}

// Equals reports whether both identifiers are the same.
func (id *UserID) Equals(other *UserID) bool {
	if id == nil || other == nil {
		return id == other
	}

	return id.vo.Equals(other.vo)
}
