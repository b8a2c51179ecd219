package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/lib/crypto"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type UsersStorage interface {
	Insert(ctx context.Context, email, username, fullName, hashedPassword string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	log      *slog.Logger
	storage  UsersStorage
	secret   string
	tokenTTL time.Duration
}

func New(log *slog.Logger, storage UsersStorage, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:      log,
		storage:  storage,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a user with a freshly hashed password. Email and username
// must both be unused; the unique constraints backstop the pre-check.
func (a *AuthService) Register(ctx context.Context, email, username, fullName, password string) (*models.User, error) {
	const op = "auth.AuthService.Register"
	log := a.log.With("op", op, "email", email, "username", username)
	if existing, err := a.getByEmailOrUsername(ctx, email); err == nil && existing != nil {
		log.Info("email already registered")
		return nil, ErrUserAlreadyExists
	}
	if existing, err := a.getByEmailOrUsername(ctx, username); err == nil && existing != nil {
		log.Info("username already registered")
		return nil, ErrUserAlreadyExists
	}
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	user, err := a.storage.Insert(ctx, email, username, fullName, hashed)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("user already exists")
			return nil, ErrUserAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

// Login accepts either email or username as the credential and returns a
// signed bearer token on success.
func (a *AuthService) Login(ctx context.Context, credentials, password string) (string, error) {
	const op = "auth.AuthService.Login"
	log := a.log.With("op", op)
	user, err := a.getByEmailOrUsername(ctx, credentials)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("login attempt for unknown user")
			return "", ErrInvalidCredentials
		}
		log.Error(err.Error())
		return "", err
	}
	if !crypto.CheckPassword(password, user.HashedPassword) {
		log.Info("login attempt with wrong password", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}
	token, err := crypto.NewToken(user.ID, a.secret, a.tokenTTL)
	if err != nil {
		log.Error(err.Error())
		return "", err
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user. The token subject is the
// user id; a valid signature over a deleted user still fails here.
func (a *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.AuthService.Authenticate"
	log := a.log.With("op", op)
	userID, err := crypto.ParseToken(token, a.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := a.storage.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("token subject no longer exists", "user_id", userID)
			return nil, ErrInvalidToken
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (a *AuthService) getByEmailOrUsername(ctx context.Context, credentials string) (*models.User, error) {
	user, err := a.storage.GetByEmail(ctx, credentials)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return a.storage.GetByUsername(ctx, credentials)
}
