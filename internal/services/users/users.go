package users

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/lib/crypto"
	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type UsersStorage interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, f filters.Filters) ([]models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	log     *slog.Logger
	storage UsersStorage
}

func New(log *slog.Logger, storage UsersStorage) *UserService {
	return &UserService{log: log, storage: storage}
}

// UpdateParams carries the optional fields of a partial user update.
type UpdateParams struct {
	Email    *string
	Username *string
	FullName *string
	Password *string
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "users.UserService.Get"
	log := s.log.With("op", op, "id", id)
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "users.UserService.GetByUsername"
	log := s.log.With("op", op, "username", username)
	user, err := s.storage.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, f filters.Filters) ([]models.User, error) {
	const op = "users.UserService.List"
	users, err := s.storage.List(ctx, f.Normalized())
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return users, nil
}

// Update applies the supplied fields only. Users may modify themselves and
// nobody else; existence is checked before ownership.
func (s *UserService) Update(ctx context.Context, actorID, id int64, params UpdateParams) (*models.User, error) {
	const op = "users.UserService.Update"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanModify(actorID, user.ID) {
		log.Warn("user modification denied")
		return nil, authz.ErrForbidden
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.Password != nil {
		hashed, err := crypto.HashPassword(*params.Password)
		if err != nil {
			log.Error(err.Error())
			return nil, err
		}
		user.HashedPassword = hashed
	}
	updated, err := s.storage.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("email or username already taken")
			return nil, ErrUserAlreadyExists
		case errors.Is(err, storage.ErrNotFound):
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, id int64) error {
	const op = "users.UserService.Delete"
	log := s.log.With("op", op, "actor_id", actorID, "id", id)
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanModify(actorID, user.ID) {
		log.Warn("user deletion denied")
		return authz.ErrForbidden
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
