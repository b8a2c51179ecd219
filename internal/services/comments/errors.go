package comments

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrUserNotFound    = errors.New("user not found")
)
