package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type fakeUsersStorage struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUsersStorage() *fakeUsersStorage {
	return &fakeUsersStorage{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUsersStorage) Insert(_ context.Context, email, username, fullName, hashedPassword string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return nil, storage.ErrConflict
		}
	}
	user := &models.User{ID: f.nextID, Email: email, Username: username, FullName: fullName, HashedPassword: hashedPassword, CreatedAt: time.Now()}
	f.users[f.nextID] = user
	f.nextID++
	return user, nil
}

func (f *fakeUsersStorage) Get(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersStorage) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeUsersStorage) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func newAuthService() *AuthService {
	return New(slog.Default(), newFakeUsersStorage(), "test-secret", time.Hour)
}

func TestRegisterLoginAuthenticate(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "alice", "Alice Smith", "s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "s3cret-password", user.HashedPassword)

	token, err := svc.Login(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestLoginWithEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice@example.com", "alice", "Alice Smith", "s3cret-password")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice@example.com", "alice", "Alice Smith", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "other", "Other Name", "s3cret-password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	_, err = svc.Register(ctx, "other@example.com", "alice", "Other Name", "s3cret-password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice@example.com", "alice", "Alice Smith", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService()
	_, err := svc.Login(context.Background(), "ghost", "whatever-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc := newAuthService()
	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	st := newFakeUsersStorage()
	svc := New(slog.Default(), st, "test-secret", -time.Minute)
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice@example.com", "alice", "Alice Smith", "s3cret-password")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "alice", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
