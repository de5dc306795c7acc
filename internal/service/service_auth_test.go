package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/store"
	"github.com/MKhiriev/blood-press-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository implements store.UserRepository for unit tests.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	listUsersFn          func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func newAuthServiceWithRepo(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, logger.Nop())
}

func TestRegister_Success(t *testing.T) {
	var createdUser models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			createdUser = user
			return user, nil
		},
	}
	svc := newAuthServiceWithRepo(repo)

	registered, err := svc.Register(context.Background(), "john", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "john", registered.Username)

	// the credential is stored one-way hashed, never in plaintext
	assert.NotEqual(t, "secret", createdUser.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("secret")))
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc := newAuthServiceWithRepo(&mockUserRepository{})

	_, err := svc.Register(context.Background(), "", "secret")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "john", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.Register(context.Background(), "john", "secret")
	require.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthenticate_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: username, Password: string(hash)}, nil
		},
	}
	svc := newAuthServiceWithRepo(repo)

	user, err := svc.Authenticate(context.Background(), "john", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "john", user.Username)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: username, Password: string(hash)}, nil
		},
	}
	svc := newAuthServiceWithRepo(repo)

	_, err = svc.Authenticate(context.Background(), "john", "not-the-secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// A missing account and a wrong password must be indistinguishable so the
// endpoint never reveals whether a username exists.
func TestAuthenticate_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.Authenticate(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	svc := newAuthServiceWithRepo(&mockUserRepository{})

	_, err := svc.Authenticate(context.Background(), "", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthenticate_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}
	svc := newAuthServiceWithRepo(repo)

	_, err := svc.Authenticate(context.Background(), "john", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
