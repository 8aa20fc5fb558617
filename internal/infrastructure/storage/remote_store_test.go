package storage_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/storage"
	storeinfra "github.com/kmulatu/ezana-academy/internal/infrastructure/storage"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRemoteReadTagsAction(t *testing.T) {
	var gotAction, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"ceoImage":"x.jpg"}`))
	}))
	defer srv.Close()

	store := storeinfra.NewRemoteStore(srv.URL, quietLogger())
	raw, ok, err := store.Read(context.Background(), storage.KeySettings)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok {
		t.Fatal("expected a present value")
	}
	if gotAction != "get_settings" || gotMethod != http.MethodGet {
		t.Errorf("request was %s action=%q", gotMethod, gotAction)
	}

	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings["ceoImage"] != "x.jpg" {
		t.Errorf("payload lost: %v", settings)
	}
}

func TestRemoteReadDegradesToAbsent(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"null body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		},
		"garbage body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>down</html>`))
		},
	}
	for name, handler := range cases {
		srv := httptest.NewServer(handler)
		store := storeinfra.NewRemoteStore(srv.URL, quietLogger())

		raw, ok, err := store.Read(context.Background(), storage.KeyUsers)
		if err != nil {
			t.Errorf("%s: read returned error %v, want absent", name, err)
		}
		if ok || raw != nil {
			t.Errorf("%s: got present value %s, want absent", name, raw)
		}
		srv.Close()
	}
}

func TestRemoteReadUnreachableHost(t *testing.T) {
	store := storeinfra.NewRemoteStore("http://127.0.0.1:1", quietLogger())
	_, ok, err := store.Read(context.Background(), storage.KeyCourses)
	if err != nil {
		t.Fatalf("transport failure must not surface: %v", err)
	}
	if ok {
		t.Fatal("unreachable host should read as absent")
	}
}

func TestRemoteWritePostsBody(t *testing.T) {
	var gotAction string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	store := storeinfra.NewRemoteStore(srv.URL, quietLogger())
	err := store.Write(context.Background(), storage.KeyCourses, []map[string]any{{"id": "c9"}})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if gotAction != "save_courses" {
		t.Errorf("action = %q, want save_courses", gotAction)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(gotBody, &decoded); err != nil || len(decoded) != 1 {
		t.Errorf("body = %s", gotBody)
	}
}

func TestRemoteWriteFailureReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	store := storeinfra.NewRemoteStore(srv.URL, quietLogger())
	if err := store.Write(context.Background(), storage.KeySettings, map[string]any{}); err == nil {
		t.Fatal("expected write failure")
	}
}

func TestRemoteRemoveSession(t *testing.T) {
	var gotAction string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	store := storeinfra.NewRemoteStore(srv.URL, quietLogger())
	if err := store.Remove(context.Background(), storage.KeySession); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if gotAction != "clear_session" {
		t.Errorf("action = %q, want clear_session", gotAction)
	}
}
