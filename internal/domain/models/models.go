package models

import "time"

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"` // never rendered
	CreatedAt      time.Time `json:"created_at"`
}

// AnonymousUser marks an unauthenticated request in the request context.
var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}

type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Description *string   `json:"description,omitempty"`
	ReleaseYear *int32    `json:"release_year,omitempty"`
	UserID      int64     `json:"user_id"` // owner, immutable after creation
	CreatedAt   time.Time `json:"created_at"`
}

type Rating struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	MovieID     int64     `json:"movie_id"`
	RatingValue int32     `json:"rating_value"`
	CreatedAt   time.Time `json:"created_at"`
}

type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Comment   string    `json:"comment"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithReplies carries a comment together with its direct-children count.
type CommentWithReplies struct {
	Comment
	Replies int64 `json:"replies"`
}
