package comments

import (
	"context"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type fakeCommentsStorage struct {
	comments map[int64]*models.Comment
	nextID   int64
}

func newFakeCommentsStorage() *fakeCommentsStorage {
	return &fakeCommentsStorage{comments: make(map[int64]*models.Comment), nextID: 1}
}

func (f *fakeCommentsStorage) Insert(_ context.Context, userID, movieID int64, body string, parentID *int64) (*models.Comment, error) {
	comment := &models.Comment{ID: f.nextID, UserID: userID, MovieID: movieID, Comment: body, ParentID: parentID}
	f.comments[f.nextID] = comment
	f.nextID++
	return comment, nil
}

func (f *fakeCommentsStorage) Get(_ context.Context, id int64) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCommentsStorage) replyCount(id int64) int64 {
	var n int64
	for _, c := range f.comments {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n
}

func (f *fakeCommentsStorage) GetWithReplies(ctx context.Context, id int64) (*models.CommentWithReplies, error) {
	c, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CommentWithReplies{Comment: *c, Replies: f.replyCount(id)}, nil
}

func (f *fakeCommentsStorage) List(_ context.Context, _ filters.Filters) ([]models.CommentWithReplies, error) {
	var out []models.CommentWithReplies
	for id, c := range f.comments {
		out = append(out, models.CommentWithReplies{Comment: *c, Replies: f.replyCount(id)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCommentsStorage) ListForMovie(_ context.Context, movieID int64, _ filters.Filters) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.MovieID == movieID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentsStorage) ListForUser(_ context.Context, userID int64, _ filters.Filters) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentsStorage) ListReplies(_ context.Context, parentID int64, _ filters.Filters) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range f.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentsStorage) Update(_ context.Context, comment *models.Comment) (*models.Comment, error) {
	if _, ok := f.comments[comment.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	copied := *comment
	f.comments[comment.ID] = &copied
	return comment, nil
}

func (f *fakeCommentsStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakeMoviesGetter struct {
	movies map[int64]*models.Movie
}

func (f *fakeMoviesGetter) Get(_ context.Context, id int64) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return m, nil
}

type fakeUsersGetter struct {
	users map[int64]*models.User
}

func (f *fakeUsersGetter) Get(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func newCommentService() (*CommentService, *fakeCommentsStorage) {
	st := newFakeCommentsStorage()
	movies := &fakeMoviesGetter{movies: map[int64]*models.Movie{
		1: {ID: 1, Title: "Alien", Genre: "Horror", UserID: 9},
	}}
	users := &fakeUsersGetter{users: map[int64]*models.User{
		5: {ID: 5, Username: "alice"},
	}}
	return New(slog.Default(), st, movies, users), st
}

func TestCreate(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()

	comment, err := svc.Create(ctx, 5, 1, "great movie")
	require.NoError(t, err)
	assert.Nil(t, comment.ParentID)
	assert.Equal(t, int64(1), comment.MovieID)
}

func TestCreateUnknownMovie(t *testing.T) {
	svc, _ := newCommentService()
	_, err := svc.Create(context.Background(), 5, 404, "great movie")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestReply(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()
	parent, err := svc.Create(ctx, 5, 1, "great movie")
	require.NoError(t, err)

	reply, err := svc.Reply(ctx, 5, parent.ID, "agreed")
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
	assert.Equal(t, parent.MovieID, reply.MovieID)
}

func TestReplyUnknownParent(t *testing.T) {
	svc, _ := newCommentService()
	_, err := svc.Reply(context.Background(), 5, 404, "agreed")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestReplyToReplyRecordsImmediateParent(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()
	top, err := svc.Create(ctx, 5, 1, "great movie")
	require.NoError(t, err)
	mid, err := svc.Reply(ctx, 5, top.ID, "agreed")
	require.NoError(t, err)
	leaf, err := svc.Reply(ctx, 5, mid.ID, "same here")
	require.NoError(t, err)
	assert.Equal(t, mid.ID, *leaf.ParentID)

	// counts cover direct children only
	got, err := svc.Get(ctx, top.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Replies)
	got, err = svc.Get(ctx, mid.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Replies)
	got, err = svc.Get(ctx, leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Replies)
}

func TestGetReplyCount(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()
	parent, err := svc.Create(ctx, 5, 1, "great movie")
	require.NoError(t, err)

	got, err := svc.Get(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Replies)

	_, err = svc.Reply(ctx, 5, parent.ID, "agreed")
	require.NoError(t, err)
	got, err = svc.Get(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Replies)
}

func TestUpdateOwnership(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()
	comment, err := svc.Create(ctx, 5, 1, "great movie")
	require.NoError(t, err)

	_, err = svc.Update(ctx, 6, comment.ID, "edited")
	assert.ErrorIs(t, err, authz.ErrForbidden)

	updated, err := svc.Update(ctx, 5, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Comment)
}

func TestDeleteOwnership(t *testing.T) {
	svc, st := newCommentService()
	ctx := context.Background()
	comment, err := svc.Create(ctx, 5, 1, "great movie")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 6, comment.ID), authz.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, 5, comment.ID))
	assert.Empty(t, st.comments)
	assert.ErrorIs(t, svc.Delete(ctx, 5, comment.ID), ErrCommentNotFound)
}

func TestListForUserUnknownUser(t *testing.T) {
	svc, _ := newCommentService()
	_, err := svc.ListForUser(context.Background(), 404, filters.Filters{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
