package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/services/users"
)

type updateUserInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

func (app *Application) getUsers(w http.ResponseWriter, r *http.Request) {
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Users.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"users": list}, "")
}

func (app *Application) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	user, err := app.Services.Users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "")
}

func (app *Application) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, err := app.Services.Users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "")
}

func (app *Application) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input updateUserInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	user, err := app.Services.Users.Update(r.Context(), actor.ID, id, users.UpdateParams{
		Email:    input.Email,
		Username: input.Username,
		FullName: input.FullName,
		Password: input.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "You can only modify your own account")
		case errors.Is(err, users.ErrUserAlreadyExists):
			app.Http.BadRequest(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "")
}

func (app *Application) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	actor := app.contextGetUser(r)
	if err := app.Services.Users.Delete(r.Context(), actor.ID, id); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "You can only delete your own account")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, nil, "Success")
}
