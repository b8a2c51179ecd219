package comments

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type CommentsStorage interface {
	Insert(ctx context.Context, userID, movieID int64, body string, parentID *int64) (*models.Comment, error)
	Get(ctx context.Context, id int64) (*models.Comment, error)
	GetWithReplies(ctx context.Context, id int64) (*models.CommentWithReplies, error)
	List(ctx context.Context, f filters.Filters) ([]models.CommentWithReplies, error)
	ListForMovie(ctx context.Context, movieID int64, f filters.Filters) ([]models.Comment, error)
	ListForUser(ctx context.Context, userID int64, f filters.Filters) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentID int64, f filters.Filters) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type MoviesGetter interface {
	Get(ctx context.Context, id int64) (*models.Movie, error)
}

type UsersGetter interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

type CommentService struct {
	log     *slog.Logger
	storage CommentsStorage
	movies  MoviesGetter
	users   UsersGetter
}

func New(log *slog.Logger, storage CommentsStorage, movies MoviesGetter, users UsersGetter) *CommentService {
	return &CommentService{log: log, storage: storage, movies: movies, users: users}
}

// Create posts a top-level comment on an existing movie.
func (s *CommentService) Create(ctx context.Context, actorID, movieID int64, body string) (*models.Comment, error) {
	const op = "comments.CommentService.Create"
	log := s.log.With("op", op, "actor_id", actorID, "movie_id", movieID)
	if _, err := s.movies.Get(ctx, movieID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	comment, err := s.storage.Insert(ctx, actorID, movieID, body, nil)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return comment, nil
}

// Reply posts a child of an existing comment. The reply inherits the parent's
// movie and records the parent's id; replies to replies are allowed, so the
// tree can be arbitrarily deep, but reply counts only ever cover direct
// children.
func (s *CommentService) Reply(ctx context.Context, actorID, parentID int64, body string) (*models.Comment, error) {
	const op = "comments.CommentService.Reply"
	log := s.log.With("op", op, "actor_id", actorID, "parent_id", parentID)
	parent, err := s.storage.Get(ctx, parentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("parent comment not found")
			return nil, ErrCommentNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	reply, err := s.storage.Insert(ctx, actorID, parent.MovieID, body, &parent.ID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return reply, nil
}

// Get returns a comment together with its direct reply count.
func (s *CommentService) Get(ctx context.Context, id int64) (*models.CommentWithReplies, error) {
	const op = "comments.CommentService.Get"
	log := s.log.With("op", op, "id", id)
	comment, err := s.storage.GetWithReplies(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("comment not found")
			return nil, ErrCommentNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, f filters.Filters) ([]models.CommentWithReplies, error) {
	const op = "comments.CommentService.List"
	comments, err := s.storage.List(ctx, f.Normalized())
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) ListForMovie(ctx context.Context, movieID int64, f filters.Filters) ([]models.Comment, error) {
	const op = "comments.CommentService.ListForMovie"
	log := s.log.With("op", op, "movie_id", movieID)
	if _, err := s.movies.Get(ctx, movieID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	comments, err := s.storage.ListForMovie(ctx, movieID, f.Normalized())
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) ListForUser(ctx context.Context, userID int64, f filters.Filters) ([]models.Comment, error) {
	const op = "comments.CommentService.ListForUser"
	log := s.log.With("op", op, "user_id", userID)
	if _, err := s.users.Get(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	comments, err := s.storage.ListForUser(ctx, userID, f.Normalized())
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return comments, nil
}

// ListReplies returns the direct children of an existing comment.
func (s *CommentService) ListReplies(ctx context.Context, parentID int64, f filters.Filters) ([]models.Comment, error) {
	const op = "comments.CommentService.ListReplies"
	log := s.log.With("op", op, "parent_id", parentID)
	if _, err := s.storage.Get(ctx, parentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	replies, err := s.storage.ListReplies(ctx, parentID, f.Normalized())
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return replies, nil
}

// Update changes the body of a comment the actor owns.
func (s *CommentService) Update(ctx context.Context, actorID, id int64, body string) (*models.Comment, error) {
	const op = "comments.CommentService.Update"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	comment, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("comment not found")
			return nil, ErrCommentNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	if !authz.CanModify(actorID, comment.UserID) {
		log.Warn("comment modification denied", "owner_id", comment.UserID)
		return nil, authz.ErrForbidden
	}
	comment.Comment = body
	updated, err := s.storage.Update(ctx, comment)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, actorID, id int64) error {
	const op = "comments.CommentService.Delete"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	comment, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("comment not found")
			return ErrCommentNotFound
		}
		log.Error(err.Error())
		return err
	}
	if !authz.CanModify(actorID, comment.UserID) {
		log.Warn("comment deletion denied", "owner_id", comment.UserID)
		return authz.ErrForbidden
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrCommentNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
