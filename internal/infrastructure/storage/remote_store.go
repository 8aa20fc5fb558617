package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/storage"
)

// ErrRemoteWrite is returned when the remote API rejects or cannot serve a
// write. Callers treat it the same as any other degradation: fall back to
// the documented default.
var ErrRemoteWrite = errors.New("remote store: write failed")

// Action names understood by the remote collaborator. Reads GET, writes POST
// a JSON body; the response body is JSON or the call counts as a failure.
var readActions = map[string]string{
	storage.KeySettings: "get_settings",
	storage.KeySession:  "get_session",
	storage.KeyUsers:    "get_users",
	storage.KeyCourses:  "get_courses",
}

var writeActions = map[string]string{
	storage.KeySettings: "update_settings",
	storage.KeySession:  "save_user",
	storage.KeyUsers:    "save_users",
	storage.KeyCourses:  "save_courses",
}

var removeActions = map[string]string{
	storage.KeySession: "clear_session",
}

// RemoteStore forwards every Store operation to the remote request
// collaborator as a tagged action. Transport failures, non-2xx statuses and
// undecodable payloads are all converted to "absent"/failure results; no
// network error ever escapes to callers.
type RemoteStore struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewRemoteStore(baseURL string, logger *logrus.Logger) *RemoteStore {
	return &RemoteStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (s *RemoteStore) endpoint(action string) string {
	return s.baseURL + "?action=" + url.QueryEscape(action)
}

func (s *RemoteStore) do(ctx context.Context, action string, body []byte) (json.RawMessage, bool) {
	method := http.MethodGet
	var reader io.Reader
	if body != nil {
		method = http.MethodPost
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.endpoint(action), reader)
	if err != nil {
		s.logger.WithError(err).WithField("action", action).Warn("remote request build failed")
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		s.logger.WithError(err).WithField("action", action).Warn("remote request failed")
		return nil, false
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		s.logger.WithField("action", action).WithField("status", res.StatusCode).Warn("remote request rejected")
		return nil, false
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil || !json.Valid(raw) {
		s.logger.WithField("action", action).Warn("remote response unreadable")
		return nil, false
	}
	// The legacy API answers "null" for missing records.
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil, false
	}
	return raw, true
}

func (s *RemoteStore) Read(ctx context.Context, key string) (json.RawMessage, bool, error) {
	action, ok := readActions[key]
	if !ok {
		return nil, false, nil
	}
	raw, ok := s.do(ctx, action, nil)
	return raw, ok, nil
}

func (s *RemoteStore) Write(ctx context.Context, key string, value any) error {
	action, ok := writeActions[key]
	if !ok {
		return ErrRemoteWrite
	}
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if _, ok := s.do(ctx, action, body); !ok {
		return ErrRemoteWrite
	}
	return nil
}

func (s *RemoteStore) Remove(ctx context.Context, key string) error {
	action, ok := removeActions[key]
	if !ok {
		return ErrRemoteWrite
	}
	if _, ok := s.do(ctx, action, []byte(`{}`)); !ok {
		return ErrRemoteWrite
	}
	return nil
}

var _ storage.Store = (*RemoteStore)(nil)
