package storage

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/storage"
)

func testStore() *PostgresStore {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewPostgresStore(nil, l, 300*time.Millisecond, 50*time.Millisecond)
}

func TestDelayForSessionKey(t *testing.T) {
	s := testStore()
	if d := s.delayFor(storage.KeySession); d != 50*time.Millisecond {
		t.Errorf("session delay = %v, want 50ms", d)
	}
	for _, key := range []string{storage.KeySettings, storage.KeyUsers, storage.KeyCourses} {
		if d := s.delayFor(key); d != 300*time.Millisecond {
			t.Errorf("%s delay = %v, want 300ms", key, d)
		}
	}
}

func TestWaitHonorsContext(t *testing.T) {
	s := testStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.wait(ctx, time.Minute); err == nil {
		t.Fatal("cancelled context should interrupt the wait")
	}

	start := time.Now()
	if err := s.wait(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Error("wait returned early")
	}

	if err := s.wait(context.Background(), 0); err != nil {
		t.Fatalf("zero delay: %v", err)
	}
}
