package movies

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type fakeMoviesStorage struct {
	movies map[int64]*models.Movie
	nextID int64
}

func newFakeMoviesStorage() *fakeMoviesStorage {
	return &fakeMoviesStorage{movies: make(map[int64]*models.Movie), nextID: 1}
}

func (f *fakeMoviesStorage) Insert(_ context.Context, title, genre string, description *string, releaseYear *int32, userID int64) (*models.Movie, error) {
	movie := &models.Movie{ID: f.nextID, Title: title, Genre: genre, Description: description, ReleaseYear: releaseYear, UserID: userID}
	f.movies[f.nextID] = movie
	f.nextID++
	return movie, nil
}

func (f *fakeMoviesStorage) Get(_ context.Context, id int64) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMoviesStorage) List(_ context.Context, _ filters.Filters) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMoviesStorage) ListByGenre(_ context.Context, genre string, _ filters.Filters) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range f.movies {
		if m.Genre == genre {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMoviesStorage) ListByTitle(_ context.Context, title string, _ filters.Filters) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range f.movies {
		if m.Title == title {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMoviesStorage) Update(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	existing, ok := f.movies[movie.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *movie
	copied.UserID = existing.UserID
	f.movies[movie.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeMoviesStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

func newMovieService() (*MovieService, *fakeMoviesStorage) {
	st := newFakeMoviesStorage()
	return New(slog.Default(), st), st
}

func strPtr(s string) *string { return &s }

func TestCreateSetsOwner(t *testing.T) {
	svc, _ := newMovieService()
	movie, err := svc.Create(context.Background(), 5, CreateParams{Title: "Heat", Genre: "Crime"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), movie.UserID)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newMovieService()
	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newMovieService()
	ctx := context.Background()
	year := int32(1995)
	movie, err := svc.Create(ctx, 5, CreateParams{Title: "Heat", Genre: "Crime", ReleaseYear: &year})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 5, movie.ID, UpdateParams{Description: strPtr("bank heist classic")})
	require.NoError(t, err)
	// untouched fields survive
	assert.Equal(t, "Heat", updated.Title)
	assert.Equal(t, "Crime", updated.Genre)
	require.NotNil(t, updated.ReleaseYear)
	assert.Equal(t, int32(1995), *updated.ReleaseYear)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "bank heist classic", *updated.Description)
}

func TestUpdateByStrangerForbidden(t *testing.T) {
	svc, _ := newMovieService()
	ctx := context.Background()
	movie, err := svc.Create(ctx, 5, CreateParams{Title: "Heat", Genre: "Crime"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 6, movie.ID, UpdateParams{Title: strPtr("Hijacked")})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	got, err := svc.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", got.Title)
}

func TestUpdateMissingMovieWinsOverOwnership(t *testing.T) {
	svc, _ := newMovieService()
	_, err := svc.Update(context.Background(), 6, 404, UpdateParams{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestDeleteByStrangerForbidden(t *testing.T) {
	svc, st := newMovieService()
	ctx := context.Background()
	movie, err := svc.Create(ctx, 5, CreateParams{Title: "Heat", Genre: "Crime"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 6, movie.ID), authz.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, 5, movie.ID))
	assert.Empty(t, st.movies)
}
