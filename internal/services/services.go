package services

import (
	"log/slog"

	"github.com/tryraisins/Capstone-Main/internal/config"
	"github.com/tryraisins/Capstone-Main/internal/services/auth"
	"github.com/tryraisins/Capstone-Main/internal/services/comments"
	"github.com/tryraisins/Capstone-Main/internal/services/movies"
	"github.com/tryraisins/Capstone-Main/internal/services/ratings"
	"github.com/tryraisins/Capstone-Main/internal/services/users"
	"github.com/tryraisins/Capstone-Main/internal/storage/postgres"
	"github.com/tryraisins/Capstone-Main/internal/storage/postgres/models"
)

type Services struct {
	Auth     *auth.AuthService
	Users    *users.UserService
	Movies   *movies.MovieService
	Ratings  *ratings.RatingService
	Comments *comments.CommentService
}

// New wires every service once at process start; all of them are stateless
// and share the storage pool.
func New(log *slog.Logger, cfg *config.Config, storage *postgres.Storage) *Services {
	m := models.New(storage)
	return &Services{
		Auth:     auth.New(log, m.User, cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Users:    users.New(log, m.User),
		Movies:   movies.New(log, m.Movie),
		Ratings:  ratings.New(log, m.Rating, m.Movie),
		Comments: comments.New(log, m.Comment, m.Movie, m.User),
	}
}
