package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Use(app.Authenticate)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Post("/register", app.register)
		r.Post("/login", app.login)
		r.Route("/users", func(r chi.Router) {
			r.Get("/", app.getUsers)
			r.Get("/{id}", app.getUser)
			r.Get("/name/{username}", app.getUserByUsername)
			r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateUser)
			r.With(app.requireAuthenticatedUser).Delete("/{id}", app.deleteUser)
		})
		r.Route("/movies", func(r chi.Router) {
			r.Route("/ratings", func(r chi.Router) {
				r.Get("/", app.getRatings)
				r.Get("/{id}", app.getRating)
				r.Get("/movie/{movieID}", app.getRatingsForMovie)
				r.Get("/movie/{movieID}/average", app.getAverageRating)
				r.With(app.requireAuthenticatedUser).Post("/{movieID}", app.rateMovie)
				r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateRating)
				r.With(app.requireAuthenticatedUser).Delete("/{id}", app.deleteRating)
			})
			r.Route("/comments", func(r chi.Router) {
				r.Get("/", app.getComments)
				r.Get("/{id}", app.getComment)
				r.Get("/{id}/replies", app.getReplies)
				r.Get("/movie/{movieID}", app.getCommentsForMovie)
				r.Get("/user/{userID}", app.getCommentsForUser)
				r.With(app.requireAuthenticatedUser).Post("/{movieID}", app.createComment)
				r.With(app.requireAuthenticatedUser).Post("/{id}/replies", app.replyComment)
				r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateComment)
				r.With(app.requireAuthenticatedUser).Delete("/{id}", app.deleteComment)
			})
			r.Get("/", app.getMovies)
			r.Get("/{id}", app.getMovie)
			r.Get("/genre/{genre}", app.getMoviesByGenre)
			r.Get("/title/{title}", app.getMoviesByTitle)
			r.With(app.requireAuthenticatedUser).Post("/", app.createMovie)
			r.With(app.requireAuthenticatedUser).Put("/{id}", app.updateMovie)
			r.With(app.requireAuthenticatedUser).Delete("/{id}", app.deleteMovie)
		})
	})
	return router
}
