package user

import (
	"context"
	"crypto/subtle"

	domainerrors "users/internal/domain/errors"
	"users/internal/domain/service"
	"users/internal/domain/shared"
	"users/internal/errors"
)

// UserCredentialMinLength applies to plain-text passwords only.
const UserCredentialMinLength = 6

// UserCredentialProps is the raw input accepted by CreateUserCredential.
// Hashed marks Value as an already-hashed secret loaded from storage.
type UserCredentialProps struct {
	Value  string
	Hashed bool
}

type userCredentialProps struct {
	value  string
	hashed bool
}

// UserCredential is a user's password, held either as plain text or as an
// opaque one-way hash. It never changes form in place: hashing yields a new
// string through HashedValue.
type UserCredential struct {
	vo shared.ValueObject[userCredentialProps]
}

// CreateUserCredential validates props and builds a UserCredential.
// Length is only checked for plain text; hashed values are trusted as stored.
func CreateUserCredential(props UserCredentialProps) shared.Result[*UserCredential] {
	if g := shared.AgainstNullOrUndefined(props.Value, "password"); !g.Succeeded {
		return shared.Fail[*UserCredential](g.Err(domainerrors.ErrArgumentMissing))
	}

	if !props.Hashed {
		if g := shared.AgainstAtLeast(UserCredentialMinLength, props.Value, "password"); !g.Succeeded {
			return shared.Fail[*UserCredential](g.Err(domainerrors.ErrPasswordTooShort))
		}
	}

	return shared.Ok(&UserCredential{
		vo: shared.NewValueObject(userCredentialProps{
			value:  props.Value,
			hashed: props.Hashed,
		}),
	})
}

// Value returns the stored form, plain text or hash.
func (c *UserCredential) Value() string {
	return c.vo.Props().value
}

// IsAlreadyHashed reports whether the stored value is a hash.
func (c *UserCredential) IsAlreadyHashed() bool {
	return c.vo.Props().hashed
}

// Equals reports whether both credentials hold the same stored form.
func (c *UserCredential) Equals(other *UserCredential) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.vo.Equals(other.vo)
}

// HashedValue returns the hash of the credential. An already-hashed
// credential is returned as is without calling hasher. Otherwise the hash is
// computed on its own goroutine; the call returns early if ctx ends first.
func (c *UserCredential) HashedValue(ctx context.Context, hasher service.PasswordHasher) (string, error) {
	props := c.vo.Props()
	if props.value == "" {
		return "", errors.WithStack(domainerrors.ErrArgumentMissing.WithDetails("password is null or undefined"))
	}

	if props.hashed {
		return props.value, nil
	}

	if hasher == nil {
		return "", errors.WithStack(domainerrors.ErrPasswordHashFailed.WithDetails("no password hasher configured"))
	}

	hash, err := await(ctx, func() (string, error) {
		return hasher.Hash(props.value)
	})
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrPasswordHashFailed.WithCause(err))
	}

	return hash, nil
}

// ComparePassword reports whether candidate matches the credential.
// It fails closed: an empty stored value (a zero UserCredential), a hasher
// error, a missing hasher or an ended ctx all report false.
func (c *UserCredential) ComparePassword(ctx context.Context, hasher service.PasswordHasher, candidate string) bool {
	props := c.vo.Props()
	if props.value == "" {
		return false
	}

	if !props.hashed {
		return subtle.ConstantTimeCompare([]byte(props.value), []byte(candidate)) == 1
	}

	if hasher == nil {
		return false
	}

	matched, err := await(ctx, func() (bool, error) {
		return hasher.Compare(candidate, props.value)
	})
	if err != nil {
		return false
	}

	return matched
}

type outcome[T any] struct {
	value T
	err   error
}

// await runs fn on its own goroutine and waits for it or for ctx.
// The channel is buffered so fn's goroutine exits even when nobody waits.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	done := make(chan outcome[T], 1)
	go func() {
		value, err := fn()
		done <- outcome[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T

		return zero, errors.WithStack(ctx.Err())
	case out := <-done:
		return out.value, out.err
	}
}
