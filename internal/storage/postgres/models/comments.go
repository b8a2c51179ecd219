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

type CommentModel struct {
	DB *pgxpool.Pool
}

// withRepliesQuery counts direct children per comment in one grouped join,
// so a page of comments costs a single query instead of one per row.
const withRepliesQuery = `
	SELECT c.*, count(r.id) AS replies
	FROM comments c
	LEFT JOIN comments r ON r.parent_id = c.id
`

func (m *CommentModel) Insert(ctx context.Context, userID, movieID int64, body string, parentID *int64) (*models.Comment, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO comments (user_id, movie_id, comment, parent_id) VALUES ($1, $2, $3, $4) RETURNING *",
		userID, movieID, body, parentID,
	)
	comment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Comment])
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Get returns a bare comment without its reply count.
func (m *CommentModel) Get(ctx context.Context, id int64) (*models.Comment, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM comments WHERE id = $1", id)
	comment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetWithReplies applies the grouped count restricted to a single id.
func (m *CommentModel) GetWithReplies(ctx context.Context, id int64) (*models.CommentWithReplies, error) {
	rows, _ := m.DB.Query(ctx, withRepliesQuery+" WHERE c.id = $1 GROUP BY c.id", id)
	comment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CommentWithReplies])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (m *CommentModel) List(ctx context.Context, f filters.Filters) ([]models.CommentWithReplies, error) {
	rows, _ := m.DB.Query(ctx, withRepliesQuery+" GROUP BY c.id ORDER BY c.id LIMIT $1 OFFSET $2", f.Limit, f.Offset)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.CommentWithReplies])
}

func (m *CommentModel) ListForMovie(ctx context.Context, movieID int64, f filters.Filters) ([]models.Comment, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM comments WHERE movie_id = $1 ORDER BY id LIMIT $2 OFFSET $3",
		movieID, f.Limit, f.Offset,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Comment])
}

func (m *CommentModel) ListForUser(ctx context.Context, userID int64, f filters.Filters) ([]models.Comment, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM comments WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3",
		userID, f.Limit, f.Offset,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Comment])
}

// ListReplies returns the direct children of a comment.
func (m *CommentModel) ListReplies(ctx context.Context, parentID int64, f filters.Filters) ([]models.Comment, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT * FROM comments WHERE parent_id = $1 ORDER BY id LIMIT $2 OFFSET $3",
		parentID, f.Limit, f.Offset,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Comment])
}

func (m *CommentModel) Update(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE comments SET comment = $1 WHERE id = $2 RETURNING *",
		comment.Comment, comment.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Comment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *CommentModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
