package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prism-palette/api/datastore"
	"github.com/prism-palette/api/models"
)

// GET|POST /v1/palettes/saved - List or save the current user's palettes
func (app *Application) savedPalettes(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		palettes, err := app.SavedPaletteRepo.List(user.UserID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(palettes)

	case http.MethodPost:
		req := models.SavePaletteRequest{}
		if !decodeAndValidate(app, w, r, &req) {
			return
		}
		saved, err := app.SavedPaletteRepo.Create(user.UserID, req.Name, req.Colors)
		if err != nil {
			app.inputError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)

	default:
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
	}
}

// PUT /v1/palettes/saved/update?id= - Rename a saved palette
func (app *Application) renameSavedPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requireMethod(w, r, http.MethodPut, ErrPUT)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		app.badRequest(w, r, errors.New("palette ID is required"))
		return
	}

	req := models.RenamePaletteRequest{}
	if !decodeAndValidate(app, w, r, &req) {
		return
	}

	user, _ := userFromContext(r)
	updated, err := app.SavedPaletteRepo.UpdateName(user.UserID, id, req.Name)
	if err != nil {
		app.inputError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
}

// DELETE /v1/palettes/saved/delete?id= - Delete a saved palette
func (app *Application) deleteSavedPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		app.requireMethod(w, r, http.MethodDelete, ErrDELETE)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		app.badRequest(w, r, errors.New("palette ID is required"))
		return
	}

	user, _ := userFromContext(r)
	if err := app.SavedPaletteRepo.Delete(user.UserID, id); err != nil {
		app.inputError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET|POST /v1/palettes/history - Recently generated palettes, oldest first
func (app *Application) paletteHistory(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		history, err := app.HistoryRepo.List(user.UserID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(history)

	case http.MethodPost:
		req := models.PaletteHistoryRequest{}
		if !decodeAndValidate(app, w, r, &req) {
			return
		}
		history, err := app.HistoryRepo.Push(user.UserID, req.Colors)
		if err != nil {
			app.inputError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(history)

	default:
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
	}
}

// GET /v1/palettes/daily - Get today's palette
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	daily, err := app.DailyPaletteRepo.GetToday()
	if err != nil {
		var noRows datastore.NoRowsError
		if errors.As(err, &noRows) {
			app.notFound(w, r, errors.New("today's palette has not been generated yet"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(daily)
}

// POST /v1/admin/palettes/daily/generate - Generate today's palette now
func (app *Application) generateDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	daily, err := app.Scheduler.GenerateDailyPalette(time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(daily)
}
