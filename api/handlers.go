package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prism-palette/api/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Prism Palette API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	req := models.UserSignupRequest{}
	if !decodeAndValidate(app, w, r, &req) {
		return
	}
	if strings.ContainsRune(req.Username, ' ') {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}
	if conflict := app.signupConflict(req); conflict != nil {
		app.userAlreadyExists(w, r, conflict)
		return
	}

	user, err := models.NewUser(req)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	stored, err := app.UserRepo.Create(user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stored)
}

// signupConflict reports whether the email or username is already taken
func (app *Application) signupConflict(req models.UserSignupRequest) error {
	if _, err := app.UserRepo.GetUserByEmail(req.Email); err == nil {
		return errors.New("there is already a user with this email address")
	}
	if _, err := app.UserRepo.GetUserByUsername(req.Username); err == nil {
		return errors.New("username already taken")
	}
	return nil
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	creds := models.Credentials{}
	if !decodeAndValidate(app, w, r, &creds) {
		return
	}

	user, err := app.UserRepo.ValidateAndGetUser(creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	expiry := time.Now().Add(time.Duration(app.Config.JwtAccessDuration) * time.Second)
	token, err := models.NewAccessToken(user, app.Config.JwtSecret, expiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.setAccessCookie(w, token, expiry)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// POST /v1/auth/logout - Expire the access cookie
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	app.setAccessCookie(w, "", time.Unix(0, 0))
	w.WriteHeader(http.StatusNoContent)
}

// setAccessCookie writes the JWT cookie. Without a configured domain the
// cookie has to be SameSite=None for cross-site frontends.
func (app *Application) setAccessCookie(w http.ResponseWriter, token string, expires time.Time) {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	cookie := &http.Cookie{
		Name:     models.JWT.ACCESS_COOKIE_NAME,
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expires,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	user, _ := userFromContext(r)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	users, err := app.UserRepo.GetAllUsers()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(users)
}
