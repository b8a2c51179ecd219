package movies

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type MoviesStorage interface {
	Insert(ctx context.Context, title, genre string, description *string, releaseYear *int32, userID int64) (*models.Movie, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	List(ctx context.Context, f filters.Filters) ([]models.Movie, error)
	ListByGenre(ctx context.Context, genre string, f filters.Filters) ([]models.Movie, error)
	ListByTitle(ctx context.Context, title string, f filters.Filters) ([]models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{log: log, storage: storage}
}

type CreateParams struct {
	Title       string
	Genre       string
	Description *string
	ReleaseYear *int32
}

// UpdateParams carries the optional fields of a partial movie update.
// The owner is not among them: ownership is fixed at creation.
type UpdateParams struct {
	Title       *string
	Genre       *string
	Description *string
	ReleaseYear *int32
}

// Create lists a new movie owned by the acting user.
func (s *MovieService) Create(ctx context.Context, actorID int64, params CreateParams) (*models.Movie, error) {
	const op = "movies.MovieService.Create"
	log := s.log.With("op", op, "actor_id", actorID, "title", params.Title)
	movie, err := s.storage.Insert(ctx, params.Title, params.Genre, params.Description, params.ReleaseYear, actorID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Get(ctx context.Context, id int64) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) List(ctx context.Context, f filters.Filters) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	movies, err := s.storage.List(ctx, f.Normalized())
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) ListByGenre(ctx context.Context, genre string, f filters.Filters) ([]models.Movie, error) {
	const op = "movies.MovieService.ListByGenre"
	movies, err := s.storage.ListByGenre(ctx, genre, f.Normalized())
	if err != nil {
		s.log.With("op", op, "genre", genre).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) ListByTitle(ctx context.Context, title string, f filters.Filters) ([]models.Movie, error) {
	const op = "movies.MovieService.ListByTitle"
	movies, err := s.storage.ListByTitle(ctx, title, f.Normalized())
	if err != nil {
		s.log.With("op", op, "title", title).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

// Update changes the supplied fields of a movie the actor owns.
func (s *MovieService) Update(ctx context.Context, actorID, id int64, params UpdateParams) (*models.Movie, error) {
	const op = "movies.MovieService.Update"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanModify(actorID, movie.UserID) {
		log.Warn("movie modification denied", "owner_id", movie.UserID)
		return nil, authz.ErrForbidden
	}
	if params.Title != nil {
		movie.Title = *params.Title
	}
	if params.Genre != nil {
		movie.Genre = *params.Genre
	}
	if params.Description != nil {
		movie.Description = params.Description
	}
	if params.ReleaseYear != nil {
		movie.ReleaseYear = params.ReleaseYear
	}
	updated, err := s.storage.Update(ctx, movie)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *MovieService) Delete(ctx context.Context, actorID, id int64) error {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	movie, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanModify(actorID, movie.UserID) {
		log.Warn("movie deletion denied", "owner_id", movie.UserID)
		return authz.ErrForbidden
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMovieNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
