package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/config"
	app "github.com/kmulatu/ezana-academy/internal/application"
	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
	"github.com/kmulatu/ezana-academy/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// memStore is an in-memory Store fake for handler tests.
type memStore struct {
	data map[string]json.RawMessage
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]json.RawMessage)}
}

func (s *memStore) Read(ctx context.Context, key string) (json.RawMessage, bool, error) {
	raw, ok := s.data[key]
	return raw, ok, nil
}

func (s *memStore) Write(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = b
	return nil
}

func (s *memStore) Remove(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type fixture struct {
	engine *gin.Engine
	data   *app.DataService
	nav    *app.Navigator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := quietLogger()
	cfg := &config.Config{AcademyName: "Ezana Academy", MailSendEnabled: false}

	store := newMemStore()
	data := app.NewDataService(store, store, logger)
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	auth := app.NewAuthService(data, jwt, nil, "", nil, cfg, logger)
	nav := app.NewNavigator(data, nil, nil, logger)
	nav.Start(context.Background())

	authHandler := handlers.NewAuthHandler(auth, data, nav, logger, "localhost", false)
	courseHandler := handlers.NewCourseHandler(data, app.NewLessonResolver(nil, nil, 0, logger), nil, logger)
	navHandler := handlers.NewNavHandler(nav, data, logger)
	settingsHandler := handlers.NewSettingsHandler(data, logger)

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id/lessons", courseHandler.Lessons)
	api.GET("/settings", settingsHandler.Get)
	api.GET("/dashboard/sections/:role", navHandler.Sections)
	api.GET("/nav/state", navHandler.State)

	return &fixture{engine: engine, data: data, nav: nav}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestLoginIssuesCookiesAndDashboardState(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/login", map[string]string{
		"email":    "instructor@ezana.com",
		"password": "whatever",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	var hasAccess, hasRefresh bool
	for _, c := range cookies {
		if c.Name == "access_token" && c.Value != "" {
			hasAccess = true
		}
		if c.Name == "refresh_token" && c.Value != "" {
			hasRefresh = true
		}
	}
	if !hasAccess || !hasRefresh {
		t.Fatalf("token cookies missing: %v", cookies)
	}

	env := decode(t, w)
	var payload struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
		Nav struct {
			View string `json:"view"`
		} `json:"nav"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if payload.User.Role != "instructor" {
		t.Errorf("role = %q, want instructor", payload.User.Role)
	}
	if payload.Nav.View != "dashboard" {
		t.Errorf("view = %q, want dashboard", payload.Nav.View)
	}
}

func TestLoginRejectsBadPayload(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/login", map[string]string{"email": "not-an-email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCoursesListReturnsSeedCatalog(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/courses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	env := decode(t, w)
	var courses []map[string]any
	if err := json.Unmarshal(env.Data, &courses); err != nil {
		t.Fatalf("decode courses: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("got %d courses, want 3", len(courses))
	}
}

func TestLessonsEndpointFallsBackWithoutCatalog(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/courses/c2/lessons", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	if env.Meta["fallback"] != true {
		t.Errorf("meta = %v, want fallback true", env.Meta)
	}
	var lessons []map[string]any
	if err := json.Unmarshal(env.Data, &lessons); err != nil {
		t.Fatalf("decode lessons: %v", err)
	}
	if len(lessons) == 0 {
		t.Fatal("lesson list must never be empty")
	}
}

func TestLessonsEndpointUnknownCourse(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/courses/nope/lessons", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSettingsEndpointServesDefault(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/settings", nil)
	env := decode(t, w)
	var settings map[string]any
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings["ceoImage"] != "Kassahun.jpg" {
		t.Errorf("ceoImage = %v", settings["ceoImage"])
	}
}

func TestSectionsEndpoint(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/dashboard/sections/admin", nil)
	env := decode(t, w)
	var payload struct {
		Sections []struct {
			ID string `json:"id"`
		} `json:"sections"`
		Default string `json:"default"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Default != "overview" {
		t.Errorf("default = %q, want overview", payload.Default)
	}
	if payload.Sections[len(payload.Sections)-1].ID != "settings" {
		t.Error("settings should close the sidebar")
	}
}

func TestLogoutReturnsHomeState(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/login", map[string]string{"email": "a@b.com", "password": "x"})

	w := f.do(t, http.MethodPost, "/api/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	env := decode(t, w)
	var payload struct {
		Nav struct {
			View string `json:"view"`
		} `json:"nav"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Nav.View != "home" {
		t.Errorf("view = %q, want home", payload.Nav.View)
	}
}
