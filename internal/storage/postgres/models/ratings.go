package models

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/storage"
	"github.com/tryraisins/Capstone-Main/internal/storage/postgres"
)

type RatingModel struct {
	DB *pgxpool.Pool
}

func (m *RatingModel) Insert(ctx context.Context, userID, movieID int64, value int32) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO ratings (user_id, movie_id, rating_value) VALUES ($1, $2, $3) RETURNING *",
		userID, movieID, value,
	)
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &rating, nil
}

func (m *RatingModel) Get(ctx context.Context, id int64) (*models.Rating, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM ratings WHERE id = $1", id)
	return collectRating(rows)
}

// GetForUserAndMovie backs the one-rating-per-user-per-movie pre-check.
func (m *RatingModel) GetForUserAndMovie(ctx context.Context, userID, movieID int64) (*models.Rating, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM ratings WHERE user_id = $1 AND movie_id = $2", userID, movieID)
	return collectRating(rows)
}

func (m *RatingModel) List(ctx context.Context, f filters.Filters) ([]models.Rating, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM ratings ORDER BY id LIMIT $1 OFFSET $2", f.Limit, f.Offset)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Rating])
}

func (m *RatingModel) ListForMovie(ctx context.Context, movieID int64, f filters.Filters) ([]models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM ratings WHERE movie_id = $1 ORDER BY id LIMIT $2 OFFSET $3",
		movieID, f.Limit, f.Offset,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Rating])
}

// AllForMovie fetches every rating for a movie, unpaginated, for the
// recomputed-on-read average.
func (m *RatingModel) AllForMovie(ctx context.Context, movieID int64) ([]models.Rating, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM ratings WHERE movie_id = $1", movieID)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Rating])
}

func (m *RatingModel) Update(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE ratings SET rating_value = $1 WHERE id = $2 RETURNING *",
		rating.RatingValue, rating.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *RatingModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM ratings WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func collectRating(rows pgx.Rows) (*models.Rating, error) {
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}
