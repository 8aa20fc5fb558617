package nav

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const fragmentKey = "nav:fragment"

// RedisFragment keeps the address fragment in redis so a restarted server
// resolves the same view a reloaded page would.
type RedisFragment struct {
	rdb    *redis.Client
	logger *logrus.Logger
}

func NewRedisFragment(rdb *redis.Client, logger *logrus.Logger) *RedisFragment {
	return &RedisFragment{rdb: rdb, logger: logger}
}

func (f *RedisFragment) Get(ctx context.Context) string {
	v, err := f.rdb.Get(ctx, fragmentKey).Result()
	if err != nil {
		if err != redis.Nil {
			f.logger.WithError(err).Warn("fragment read failed")
		}
		return ""
	}
	return v
}

func (f *RedisFragment) Set(ctx context.Context, fragment string) {
	if err := f.rdb.Set(ctx, fragmentKey, fragment, 0).Err(); err != nil {
		f.logger.WithError(err).Warn("fragment write failed")
	}
}

// MemoryFragment is the in-process Fragment used in tests and when redis is
// not configured.
type MemoryFragment struct {
	mu sync.Mutex
	v  string
}

func (f *MemoryFragment) Get(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}

func (f *MemoryFragment) Set(ctx context.Context, fragment string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v = fragment
}

// LogScroller records in-page scroll requests. Scrolling itself is a
// client-side concern; the state machine only needs the collaborator called.
type LogScroller struct {
	Logger *logrus.Logger
}

func (s *LogScroller) ScrollTo(ctx context.Context, section string) {
	if s.Logger != nil {
		s.Logger.WithField("section", section).Debug("scroll requested")
	}
}
