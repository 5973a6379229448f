package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prism-palette/api/datastore"
	"github.com/prism-palette/api/migrations"
	"github.com/prism-palette/api/models"
	"github.com/prism-palette/api/palette"
	"github.com/prism-palette/api/scheduler"
)

type testServer struct {
	app     *Application
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := datastore.NewDB("sqlite3", datastore.BuildSQLiteConnStr(filepath.Join(t.TempDir(), "api.db")))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.RunMigrations(db); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	users, err := datastore.NewUserDatabase(db)
	if err != nil {
		t.Fatalf("NewUserDatabase: %v", err)
	}

	kv := datastore.NewMemoryStore()
	daily := datastore.NewDailyPaletteStore(kv)

	app := &Application{
		Config: Config{
			JwtSecret:         "test-secret",
			JwtAccessDuration: 3600,
			AllowedOrigins:    []string{"https://prism.example.com"},
			DevMode:           true,
		},
		UserRepo:         users,
		SavedPaletteRepo: datastore.NewSavedPaletteStore(kv),
		HistoryRepo:      datastore.NewHistoryStore(kv),
		DailyPaletteRepo: daily,
		Scheduler:        scheduler.NewScheduler(daily, 5),
		Generator:        palette.NewSeededGenerator(42),
	}

	return &testServer{app: app, handler: app.BuildRoutes(http.NewServeMux())}
}

// do sends body (JSON encoded when not nil) and attaches any cookies
func (ts *testServer) do(t *testing.T, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// signupAndLogin registers a member and returns its access cookie
func (ts *testServer) signupAndLogin(t *testing.T, username string) *http.Cookie {
	t.Helper()

	signup := models.UserSignupRequest{Username: username, Email: username + "@example.com", Password: "correct horse"}
	if rec := ts.do(t, http.MethodPost, "/v1/auth/signup", signup); rec.Code != http.StatusOK {
		t.Fatalf("signup status %d: %s", rec.Code, rec.Body)
	}
	return ts.login(t, signup.Email, signup.Password)
}

func (ts *testServer) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/v1/auth/login", models.Credentials{Email: email, Password: password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == models.JWT.ACCESS_COOKIE_NAME {
			return c
		}
	}
	t.Fatal("login did not set an access cookie")
	return nil
}

// createAdmin stores an admin directly and logs it in
func (ts *testServer) createAdmin(t *testing.T) *http.Cookie {
	t.Helper()

	admin, err := models.NewUser(models.UserSignupRequest{Username: "root", Email: "root@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	admin.Kind = models.Admin
	if _, err := ts.app.UserRepo.Create(admin); err != nil {
		t.Fatalf("Create admin: %v", err)
	}
	return ts.login(t, admin.Email, "supersecret")
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
