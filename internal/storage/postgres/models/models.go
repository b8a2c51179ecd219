package models

import "github.com/tryraisins/Capstone-Main/internal/storage/postgres"

type Models struct {
	User    *UserModel
	Movie   *MovieModel
	Rating  *RatingModel
	Comment *CommentModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		User:    &UserModel{db.Conn},
		Movie:   &MovieModel{db.Conn},
		Rating:  &RatingModel{db.Conn},
		Comment: &CommentModel{db.Conn},
	}
}
