package ratings

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type RatingsStorage interface {
	Insert(ctx context.Context, userID, movieID int64, value int32) (*models.Rating, error)
	Get(ctx context.Context, id int64) (*models.Rating, error)
	GetForUserAndMovie(ctx context.Context, userID, movieID int64) (*models.Rating, error)
	List(ctx context.Context, f filters.Filters) ([]models.Rating, error)
	ListForMovie(ctx context.Context, movieID int64, f filters.Filters) ([]models.Rating, error)
	AllForMovie(ctx context.Context, movieID int64) ([]models.Rating, error)
	Update(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	Delete(ctx context.Context, id int64) error
}

type MoviesGetter interface {
	Get(ctx context.Context, id int64) (*models.Movie, error)
}

type RatingService struct {
	log     *slog.Logger
	storage RatingsStorage
	movies  MoviesGetter
}

func New(log *slog.Logger, storage RatingsStorage, movies MoviesGetter) *RatingService {
	return &RatingService{log: log, storage: storage, movies: movies}
}

// Rate records a user's rating for a movie. One rating per (user, movie): the
// pre-check reports the friendly conflict, the unique constraint closes the
// race between concurrent identical requests.
func (s *RatingService) Rate(ctx context.Context, actorID, movieID int64, value int32) (*models.Rating, error) {
	const op = "ratings.RatingService.Rate"
	log := s.log.With("op", op, "actor_id", actorID, "movie_id", movieID)
	if value < 1 || value > 10 {
		return nil, ErrInvalidValue
	}
	if _, err := s.requireMovie(ctx, movieID); err != nil {
		return nil, err
	}
	if _, err := s.storage.GetForUserAndMovie(ctx, actorID, movieID); err == nil {
		log.Info("movie already rated by user")
		return nil, ErrAlreadyRated
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Error(err.Error())
		return nil, err
	}
	rating, err := s.storage.Insert(ctx, actorID, movieID, value)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("concurrent duplicate rating caught by constraint")
			return nil, ErrAlreadyRated
		}
		log.Error(err.Error())
		return nil, err
	}
	return rating, nil
}

// Average recomputes the movie's mean rating on every read, rounded to two
// decimal places. A movie with no ratings averages 0.0.
func (s *RatingService) Average(ctx context.Context, movieID int64) (float64, error) {
	const op = "ratings.RatingService.Average"
	if _, err := s.requireMovie(ctx, movieID); err != nil {
		return 0, err
	}
	all, err := s.storage.AllForMovie(ctx, movieID)
	if err != nil {
		s.log.With("op", op, "movie_id", movieID).Error(err.Error())
		return 0, err
	}
	if len(all) == 0 {
		return 0.0, nil
	}
	var sum int64
	for _, r := range all {
		sum += int64(r.RatingValue)
	}
	mean := float64(sum) / float64(len(all))
	return math.Round(mean*100) / 100, nil
}

func (s *RatingService) Get(ctx context.Context, id int64) (*models.Rating, error) {
	const op = "ratings.RatingService.Get"
	log := s.log.With("op", op, "id", id)
	rating, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("rating not found")
			return nil, ErrRatingNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) List(ctx context.Context, f filters.Filters) ([]models.Rating, error) {
	const op = "ratings.RatingService.List"
	ratings, err := s.storage.List(ctx, f.Normalized())
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) ListForMovie(ctx context.Context, movieID int64, f filters.Filters) ([]models.Rating, error) {
	const op = "ratings.RatingService.ListForMovie"
	if _, err := s.requireMovie(ctx, movieID); err != nil {
		return nil, err
	}
	ratings, err := s.storage.ListForMovie(ctx, movieID, f.Normalized())
	if err != nil {
		s.log.With("op", op, "movie_id", movieID).Error(err.Error())
		return nil, err
	}
	return ratings, nil
}

// Update changes the value of a rating the actor owns.
func (s *RatingService) Update(ctx context.Context, actorID, id int64, value int32) (*models.Rating, error) {
	const op = "ratings.RatingService.Update"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	if value < 1 || value > 10 {
		return nil, ErrInvalidValue
	}
	rating, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanModify(actorID, rating.UserID) {
		log.Warn("rating modification denied", "owner_id", rating.UserID)
		return nil, authz.ErrForbidden
	}
	rating.RatingValue = value
	updated, err := s.storage.Update(ctx, rating)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *RatingService) Delete(ctx context.Context, actorID, id int64) error {
	const op = "ratings.RatingService.Delete"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	rating, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanModify(actorID, rating.UserID) {
		log.Warn("rating deletion denied", "owner_id", rating.UserID)
		return authz.ErrForbidden
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRatingNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *RatingService) requireMovie(ctx context.Context, movieID int64) (*models.Movie, error) {
	movie, err := s.movies.Get(ctx, movieID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}
