// Package user contains the value objects that describe a user account:
// its display name, its credential and its identifier.
package user

import (
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/shared"
)

const (
	UserNameMinLength = 2
	UserNameMaxLength = 15
)

// UserNameProps is the raw input accepted by CreateUserName.
type UserNameProps struct {
	Value string
}

type userNameProps struct {
	value string
}

// UserName is a user's display name, between UserNameMinLength and
// UserNameMaxLength characters long.
type UserName struct {
	vo shared.ValueObject[userNameProps]
}

// CreateUserName validates props and builds a UserName.
func CreateUserName(props UserNameProps) shared.Result[*UserName] {
	if g := shared.AgainstNullOrUndefined(props.Value, "username"); !g.Succeeded {
		return shared.Fail[*UserName](g.Err(domainerrors.ErrArgumentMissing))
	}

	if g := shared.AgainstAtLeast(UserNameMinLength, props.Value, "userName"); !g.Succeeded {
		return shared.Fail[*UserName](g.Err(domainerrors.ErrUserNameTooShort))
	}

	if g := shared.AgainstAtMost(UserNameMaxLength, props.Value, "userName"); !g.Succeeded {
		return shared.Fail[*UserName](g.Err(domainerrors.ErrUserNameTooLong))
	}

	return shared.Ok(&UserName{
		vo: shared.NewValueObject(userNameProps{value: props.Value}),
	})
}

// Value returns the raw name.
func (n *UserName) Value() string {
	return n.vo.Props().value
}

func (n *UserName) String() string {
	return n.Value()
}

// Equals reports whether both names hold the same value.
func (n *UserName) Equals(other *UserName) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.vo.Equals(other.vo)
}
