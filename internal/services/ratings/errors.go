package ratings

import "errors"

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrAlreadyRated   = errors.New("movie already rated, update the existing rating")
	ErrInvalidValue   = errors.New("rating value must be between 1 and 10")
)
