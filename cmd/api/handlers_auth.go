package main

import (
	"errors"
	"net/http"

	"github.com/tryraisins/Capstone-Main/internal/services/auth"
)

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginForm struct {
	Username string `schema:"username,required"`
	Password string `schema:"password,required"`
}

func (app *Application) register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	user, err := app.Services.Auth.Register(r.Context(), input.Email, input.Username, input.FullName, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserAlreadyExists) {
			app.Http.BadRequest(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"user": user}, "")
}

// login accepts a form body; username may be either the email or the
// username, matching the token-issuing flow users already know.
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.Http.BadRequest(w, r, "invalid form body")
		return
	}
	var form loginForm
	if err := app.formDecoder.Decode(&form, r.PostForm); err != nil {
		app.Http.BadRequest(w, r, "username and password are required")
		return
	}
	token, err := app.Services.Auth.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.Http.Unauthorized(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"access_token": token, "token_type": "bearer"}, "")
}
