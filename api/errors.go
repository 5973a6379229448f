package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/prism-palette/api/colorspace"
	"github.com/prism-palette/api/datastore"
	"github.com/prism-palette/api/palette"
)

var clientErrors = []error{
	colorspace.ErrInvalidColorFormat,
	colorspace.ErrInvalidLevel,
	colorspace.ErrInvalidTextSize,
	palette.ErrInvalidProperty,
	palette.ErrUnknownScheme,
	palette.ErrUnknownFormat,
	datastore.ErrEmptyName,
}

// getCallerInfo names the handler that reported an error. The stack is
// handler -> error helper -> writeError -> getCallerInfo.
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrPUT = fmt.Errorf("PUT method required for this endpoint")
var ErrDELETE = fmt.Errorf("DELETE method required for this endpoint")
var ErrInvalidPrivelege = fmt.Errorf("invalid authentication privileges")

// writeError encodes a HandlerError with the given status
func writeError(w http.ResponseWriter, status int, name, description, solution string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(HandlerError{
		ErrorName:        name,
		Description:      description,
		PossibleSolution: solution,
		CallerInfo:       getCallerInfo(),
	})
}

// requireMethod writes a 405 naming the expected method
func (app *Application) requireMethod(w http.ResponseWriter, r *http.Request, method string, err error) {
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, method+" Method Required",
		err.Error()+" you used: "+r.Method, "Use "+method+" method")
}

func (app *Application) invalidCredentials(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusUnauthorized, "Error Authorizing User", err.Error(), "Retry with proper credentials")
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusUnauthorized, "Error Authenticating for Endpoint", "Invalid Authentication",
		"Check your headers and ensure you're submitting a valid token")
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "Error Parsing JSON", err.Error(), "Double check your JSON formatting")
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("internal error on %s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), "Internal Server Error requiring support")
}

func (app *Application) userAlreadyExists(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusConflict, "User Exists", err.Error(), "Advise user to login with their credentials")
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusNotFound, "Not Found", err.Error(), "Check the id and try again")
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, "Bad Request", err.Error(), "Check your request parameters")
}

// inputError reports validation failures from the color and palette
// packages as 400s, unknown palettes as 404s and anything else as a 500
func (app *Application) inputError(w http.ResponseWriter, r *http.Request, err error) {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			app.badRequest(w, r, err)
			return
		}
	}
	if errors.Is(err, datastore.ErrPaletteNotFound) {
		app.notFound(w, r, err)
		return
	}
	app.internalServerError(w, r, err)
}
