package users

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/lib/crypto"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type fakeUsersStorage struct {
	users map[int64]*models.User
}

func (f *fakeUsersStorage) Get(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsersStorage) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeUsersStorage) List(_ context.Context, _ filters.Filters) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsersStorage) Update(_ context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return user, nil
}

func (f *fakeUsersStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func newUserService() (*UserService, *fakeUsersStorage) {
	st := &fakeUsersStorage{users: map[int64]*models.User{
		1: {ID: 1, Email: "alice@example.com", Username: "alice", FullName: "Alice Smith"},
		2: {ID: 2, Email: "bob@example.com", Username: "bob", FullName: "Bob Jones"},
	}}
	return New(slog.Default(), st), st
}

func strPtr(s string) *string { return &s }

func TestUpdateSelf(t *testing.T) {
	svc, _ := newUserService()
	updated, err := svc.Update(context.Background(), 1, 1, UpdateParams{FullName: strPtr("Alice A. Smith")})
	require.NoError(t, err)
	assert.Equal(t, "Alice A. Smith", updated.FullName)
	// unspecified fields untouched
	assert.Equal(t, "alice", updated.Username)
}

func TestUpdateOtherUserForbidden(t *testing.T) {
	svc, _ := newUserService()
	_, err := svc.Update(context.Background(), 1, 2, UpdateParams{FullName: strPtr("Hacked")})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestUpdateMissingUserWinsOverOwnership(t *testing.T) {
	svc, _ := newUserService()
	_, err := svc.Update(context.Background(), 1, 404, UpdateParams{FullName: strPtr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdatePasswordRehashes(t *testing.T) {
	svc, st := newUserService()
	updated, err := svc.Update(context.Background(), 1, 1, UpdateParams{Password: strPtr("new-password-123")})
	require.NoError(t, err)
	assert.True(t, crypto.CheckPassword("new-password-123", updated.HashedPassword))
	assert.True(t, crypto.CheckPassword("new-password-123", st.users[1].HashedPassword))
}

func TestDeleteSelfOnly(t *testing.T) {
	svc, st := newUserService()
	ctx := context.Background()
	assert.ErrorIs(t, svc.Delete(ctx, 1, 2), authz.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, 1, 1))
	_, remaining := st.users[1]
	assert.False(t, remaining)
}

func TestGetByUsername(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.GetByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)

	_, err = svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
