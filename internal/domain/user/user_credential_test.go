package user

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	domainerrors "users/internal/domain/errors"
	"users/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Compare(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}

// bcryptHasher hashes at the minimum cost to keep the tests fast.
type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	return string(hash), err
}

func (bcryptHasher) Compare(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return err == nil, err
}

// blockingHasher never returns until release is closed.
type blockingHasher struct {
	release chan struct{}
}

func (h *blockingHasher) Hash(string) (string, error) {
	<-h.release

	return "late", nil
}

func (h *blockingHasher) Compare(string, string) (bool, error) {
	<-h.release

	return true, nil
}

func newBlockingHasher(t *testing.T) *blockingHasher {
	h := &blockingHasher{release: make(chan struct{})}
	t.Cleanup(func() { close(h.release) })

	return h
}

func TestCreateUserCredential_Plain(t *testing.T) {
	for _, value := range []string{"abc123", "secret1", strings.Repeat("p", 64)} {
		result := CreateUserCredential(UserCredentialProps{Value: value})

		require.True(t, result.Succeeded(), value)
		assert.False(t, result.Value().IsAlreadyHashed())
		assert.Equal(t, value, result.Value().Value())
	}
}

func TestCreateUserCredential_TooShort(t *testing.T) {
	for _, value := range []string{"a", "abc", "abc12"} {
		result := CreateUserCredential(UserCredentialProps{Value: value, Hashed: false})

		require.True(t, result.Failed(), value)
		assert.True(t, errors.Is(result.Err(), domainerrors.ErrPasswordTooShort))
		assert.Contains(t, result.Err().Error(), "password-too-short")
	}
}

func TestCreateUserCredential_Missing(t *testing.T) {
	for _, hashed := range []bool{false, true} {
		result := CreateUserCredential(UserCredentialProps{Value: "", Hashed: hashed})

		require.True(t, result.Failed())
		assert.True(t, errors.Is(result.Err(), domainerrors.ErrArgumentMissing))
		assert.Contains(t, result.Err().Error(), "password is null or undefined")
	}
}

func TestCreateUserCredential_HashedSkipsLengthCheck(t *testing.T) {
	result := CreateUserCredential(UserCredentialProps{Value: "h", Hashed: true})

	require.True(t, result.Succeeded())
	assert.True(t, result.Value().IsAlreadyHashed())
}

func TestUserCredential_HashedValueIsIdempotentWhenHashed(t *testing.T) {
	hasher := new(mockPasswordHasher)
	credential := CreateUserCredential(UserCredentialProps{Value: "$2a$10$stored", Hashed: true}).Value()

	first, err := credential.HashedValue(context.Background(), hasher)
	require.NoError(t, err)
	second, err := credential.HashedValue(context.Background(), hasher)
	require.NoError(t, err)

	assert.Equal(t, "$2a$10$stored", first)
	assert.Equal(t, first, second)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserCredential_RoundTrip(t *testing.T) {
	ctx := context.Background()
	hasher := bcryptHasher{}

	plain := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()
	hash, err := plain.HashedValue(ctx, hasher)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.False(t, plain.IsAlreadyHashed(), "hashing must not change the credential")

	stored := CreateUserCredential(UserCredentialProps{Value: hash, Hashed: true}).Value()
	assert.True(t, stored.ComparePassword(ctx, hasher, "secret1"))
	assert.False(t, stored.ComparePassword(ctx, hasher, "wrong"))
}

func TestUserCredential_ComparePlainText(t *testing.T) {
	hasher := new(mockPasswordHasher)
	credential := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()

	assert.True(t, credential.ComparePassword(context.Background(), hasher, "secret1"))
	assert.False(t, credential.ComparePassword(context.Background(), hasher, "secret2"))
	assert.False(t, credential.ComparePassword(context.Background(), nil, ""))
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestUserCredential_CompareFailsClosed(t *testing.T) {
	hasher := new(mockPasswordHasher)
	hasher.On("Compare", "secret1", "$2a$10$stored").Return(true, errors.New("primitive exploded"))
	credential := CreateUserCredential(UserCredentialProps{Value: "$2a$10$stored", Hashed: true}).Value()

	assert.False(t, credential.ComparePassword(context.Background(), hasher, "secret1"))
	assert.False(t, credential.ComparePassword(context.Background(), nil, "secret1"))
	hasher.AssertExpectations(t)
}

func TestUserCredential_CompareMalformedHash(t *testing.T) {
	hasher := bcryptHasher{}
	credential := CreateUserCredential(UserCredentialProps{Value: "not-a-bcrypt-hash", Hashed: true}).Value()

	assert.False(t, credential.ComparePassword(context.Background(), hasher, "not-a-bcrypt-hash"))
}

func TestUserCredential_HashedValuePropagatesPrimitiveFailure(t *testing.T) {
	cause := errors.New("entropy unavailable")
	hasher := new(mockPasswordHasher)
	hasher.On("Hash", "secret1").Return("", cause)
	credential := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()

	hash, err := credential.HashedValue(context.Background(), hasher)

	require.Error(t, err)
	assert.Empty(t, hash)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.True(t, errors.Is(err, cause))
	hasher.AssertExpectations(t)
}

func TestUserCredential_HashedValueWithoutHasher(t *testing.T) {
	credential := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()

	_, err := credential.HashedValue(context.Background(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserCredential_ContextEndsFirst(t *testing.T) {
	hasher := newBlockingHasher(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	plain := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()
	_, err := plain.HashedValue(ctx, hasher)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))

	stored := CreateUserCredential(UserCredentialProps{Value: "$2a$10$stored", Hashed: true}).Value()
	assert.False(t, stored.ComparePassword(ctx, hasher, "secret1"))
}

func TestUserCredential_ConcurrentCompare(t *testing.T) {
	ctx := context.Background()
	hasher := bcryptHasher{}

	hash, err := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value().HashedValue(ctx, hasher)
	require.NoError(t, err)
	stored := CreateUserCredential(UserCredentialProps{Value: hash, Hashed: true}).Value()

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			candidate := "secret1"
			if i%2 == 1 {
				candidate = "wrong"
			}
			results[i] = stored.ComparePassword(ctx, hasher, candidate)
		}()
	}
	wg.Wait()

	for i, matched := range results {
		assert.Equal(t, i%2 == 0, matched, "goroutine %d", i)
	}
}

func TestUserCredential_Equals(t *testing.T) {
	plain := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()
	samePlain := CreateUserCredential(UserCredentialProps{Value: "secret1"}).Value()
	hashedForm := CreateUserCredential(UserCredentialProps{Value: "secret1", Hashed: true}).Value()

	assert.True(t, plain.Equals(samePlain))
	assert.False(t, plain.Equals(hashedForm))
}

func TestUserCredential_ZeroValueFailsClosed(t *testing.T) {
	hasher := new(mockPasswordHasher)
	var credential UserCredential

	assert.False(t, credential.ComparePassword(context.Background(), hasher, ""))
	assert.False(t, credential.ComparePassword(context.Background(), nil, ""))

	hash, err := credential.HashedValue(context.Background(), hasher)
	assert.Empty(t, hash)
	assert.True(t, errors.Is(err, domainerrors.ErrArgumentMissing))
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestUserCredential_OverlongPasswordFailsAtHashTime(t *testing.T) {
	result := CreateUserCredential(UserCredentialProps{Value: strings.Repeat("p", 73)})
	require.True(t, result.Succeeded())

	_, err := result.Value().HashedValue(context.Background(), bcryptHasher{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.True(t, errors.Is(err, bcrypt.ErrPasswordTooLong))
}
