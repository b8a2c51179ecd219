package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/services/movies"
)

type createMovieInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Genre       string  `json:"genre" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ReleaseYear *int32  `json:"release_year" validate:"omitempty,gte=1888"`
}

type updateMovieInput struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Genre       *string `json:"genre" validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ReleaseYear *int32  `json:"release_year" validate:"omitempty,gte=1888"`
}

func (app *Application) getMovies(w http.ResponseWriter, r *http.Request) {
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Movies.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": list}, "")
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	movie, err := app.Services.Movies.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}

func (app *Application) getMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Movies.ListByGenre(r.Context(), chi.URLParam(r, "genre"), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": list}, "")
}

func (app *Application) getMoviesByTitle(w http.ResponseWriter, r *http.Request) {
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Movies.ListByTitle(r.Context(), chi.URLParam(r, "title"), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": list}, "")
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	var input createMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	movie, err := app.Services.Movies.Create(r.Context(), actor.ID, movies.CreateParams{
		Title:       input.Title,
		Genre:       input.Genre,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
	})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"movie": movie}, "")
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input updateMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	movie, err := app.Services.Movies.Update(r.Context(), actor.ID, id, movies.UpdateParams{
		Title:       input.Title,
		Genre:       input.Genre,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
	})
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "Only the owner can modify this movie")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	actor := app.contextGetUser(r)
	if err := app.Services.Movies.Delete(r.Context(), actor.ID, id); err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "Only the owner can delete this movie")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, nil, "Success")
}
