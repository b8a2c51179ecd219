package main

import (
	"errors"
	"net/http"

	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/services/ratings"
)

type ratingInput struct {
	RatingValue int32 `json:"rating_value" validate:"required,gte=1,lte=10"`
}

func (app *Application) getRatings(w http.ResponseWriter, r *http.Request) {
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Ratings.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"ratings": list}, "")
}

func (app *Application) getRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	rating, err := app.Services.Ratings.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ratings.ErrRatingNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"rating": rating}, "")
}

func (app *Application) getRatingsForMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieID")
	if !ok {
		return
	}
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Ratings.ListForMovie(r.Context(), movieID, f)
	if err != nil {
		if errors.Is(err, ratings.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"ratings": list}, "")
}

func (app *Application) getAverageRating(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieID")
	if !ok {
		return
	}
	avg, err := app.Services.Ratings.Average(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, ratings.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movie_id": movieID, "avg_rating": avg}, "")
}

func (app *Application) rateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieID")
	if !ok {
		return
	}
	var input ratingInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	rating, err := app.Services.Ratings.Rate(r.Context(), actor.ID, movieID, input.RatingValue)
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, ratings.ErrAlreadyRated):
			app.Http.Conflict(w, r, err.Error())
		case errors.Is(err, ratings.ErrInvalidValue):
			app.Http.UnprocessableEntity(w, r, map[string]string{"rating_value": err.Error()})
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"rating": rating}, "")
}

func (app *Application) updateRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input ratingInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	rating, err := app.Services.Ratings.Update(r.Context(), actor.ID, id, input.RatingValue)
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrRatingNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "Only the rater can modify this rating")
		case errors.Is(err, ratings.ErrInvalidValue):
			app.Http.UnprocessableEntity(w, r, map[string]string{"rating_value": err.Error()})
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"rating": rating}, "")
}

func (app *Application) deleteRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	actor := app.contextGetUser(r)
	if err := app.Services.Ratings.Delete(r.Context(), actor.ID, id); err != nil {
		switch {
		case errors.Is(err, ratings.ErrRatingNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "Only the rater can delete this rating")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, nil, "Success")
}
