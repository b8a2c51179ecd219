package models

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tryraisins/Capstone-Main/internal/domain/filters"
	"github.com/tryraisins/Capstone-Main/internal/domain/models"
	"github.com/tryraisins/Capstone-Main/internal/storage"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

func (m *MovieModel) Insert(ctx context.Context, title, genre string, description *string, releaseYear *int32, userID int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO movies (title, genre, description, release_year, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING *",
		title, genre, description, releaseYear, userID,
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM movies WHERE id = $1", id)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) List(ctx context.Context, f filters.Filters) ([]models.Movie, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM movies ORDER BY id LIMIT $1 OFFSET $2", f.Limit, f.Offset)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Movie])
}

func (m *MovieModel) ListByGenre(ctx context.Context, genre string, f filters.Filters) ([]models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM movies WHERE genre = $1 ORDER BY id LIMIT $2 OFFSET $3",
		genre, f.Limit, f.Offset,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Movie])
}

func (m *MovieModel) ListByTitle(ctx context.Context, title string, f filters.Filters) ([]models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM movies WHERE title = $1 ORDER BY id LIMIT $2 OFFSET $3",
		title, f.Limit, f.Offset,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Movie])
}

// Update rewrites every mutable column; the owner (user_id) is left untouched.
func (m *MovieModel) Update(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE movies SET title = $1, genre = $2, description = $3, release_year = $4
		WHERE id = $5 RETURNING *`,
		movie.Title, movie.Genre, movie.Description, movie.ReleaseYear, movie.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
