package main

import (
	"errors"
	"net/http"

	"github.com/tryraisins/Capstone-Main/internal/services/authz"
	"github.com/tryraisins/Capstone-Main/internal/services/comments"
)

type commentInput struct {
	Comment string `json:"comment" validate:"required,max=5000"`
}

func (app *Application) getComments(w http.ResponseWriter, r *http.Request) {
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Comments.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"comments": list}, "")
}

func (app *Application) getComment(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	comment, err := app.Services.Comments.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"comment": comment}, "")
}

func (app *Application) getReplies(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	replies, err := app.Services.Comments.ListReplies(r.Context(), id, f)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"replies": replies}, "")
}

func (app *Application) getCommentsForMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieID")
	if !ok {
		return
	}
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Comments.ListForMovie(r.Context(), movieID, f)
	if err != nil {
		if errors.Is(err, comments.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"comments": list}, "")
}

func (app *Application) getCommentsForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := app.extractIDParam(w, r, "userID")
	if !ok {
		return
	}
	f, ok := app.extractFilters(w, r)
	if !ok {
		return
	}
	list, err := app.Services.Comments.ListForUser(r.Context(), userID, f)
	if err != nil {
		if errors.Is(err, comments.ErrUserNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"comments": list}, "")
}

func (app *Application) createComment(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r, "movieID")
	if !ok {
		return
	}
	var input commentInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	comment, err := app.Services.Comments.Create(r.Context(), actor.ID, movieID, input.Comment)
	if err != nil {
		if errors.Is(err, comments.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"comment": comment}, "")
}

func (app *Application) replyComment(w http.ResponseWriter, r *http.Request) {
	parentID, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input commentInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	reply, err := app.Services.Comments.Reply(r.Context(), actor.ID, parentID, input.Comment)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"comment": reply}, "")
}

func (app *Application) updateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	var input commentInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := app.validateStruct(input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor := app.contextGetUser(r)
	comment, err := app.Services.Comments.Update(r.Context(), actor.ID, id, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrCommentNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "Only the author can modify this comment")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"comment": comment}, "")
}

func (app *Application) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r, "id")
	if !ok {
		return
	}
	actor := app.contextGetUser(r)
	if err := app.Services.Comments.Delete(r.Context(), actor.ID, id); err != nil {
		switch {
		case errors.Is(err, comments.ErrCommentNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, authz.ErrForbidden):
			app.Http.Forbidden(w, r, "Only the author can delete this comment")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, nil, "Success")
}
