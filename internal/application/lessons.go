package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/kmulatu/ezana-academy/internal/domain/entity"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
)

// Catalog retrieves the ordered items of an external playlist.
type Catalog interface {
	PlaylistItems(ctx context.Context, playlistID string) ([]entity.Lesson, error)
}

// YouTubeCatalog is the production Catalog, backed by the YouTube Data API.
type YouTubeCatalog struct {
	svc *youtube.Service
}

func NewYouTubeCatalog(ctx context.Context, apiKey string) (*YouTubeCatalog, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &YouTubeCatalog{svc: svc}, nil
}

// Titles YouTube reports for entries that cannot be played. Such entries are
// dropped before the list reaches callers.
const (
	titlePrivateVideo = "Private video"
	titleDeletedVideo = "Deleted video"
)

func (c *YouTubeCatalog) PlaylistItems(ctx context.Context, playlistID string) ([]entity.Lesson, error) {
	call := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(50).
		Context(ctx)
	res, err := call.Do()
	if err != nil {
		return nil, err
	}

	out := make([]entity.Lesson, 0, len(res.Items))
	for _, item := range res.Items {
		sn := item.Snippet
		if sn == nil || sn.ResourceId == nil {
			continue
		}
		if sn.Title == titlePrivateVideo || sn.Title == titleDeletedVideo {
			continue
		}
		thumb := ""
		if sn.Thumbnails != nil {
			switch {
			case sn.Thumbnails.Medium != nil:
				thumb = sn.Thumbnails.Medium.Url
			case sn.Thumbnails.Default != nil:
				thumb = sn.Thumbnails.Default.Url
			}
		}
		out = append(out, entity.Lesson{
			ID:        item.Id,
			Title:     sn.Title,
			Thumbnail: thumb,
			VideoID:   sn.ResourceId.VideoId,
		})
	}
	return out, nil
}

// LessonResolver produces a course's lesson list. It asks the external
// catalog first, caching good answers in redis; any failure, empty answer or
// fully-filtered answer falls back to the built-in substitute set for the
// course category, so callers never see an empty lesson list.
type LessonResolver struct {
	catalog Catalog
	rdb     *redis.Client
	ttl     time.Duration
	logger  *logrus.Logger
}

func NewLessonResolver(catalog Catalog, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *LessonResolver {
	return &LessonResolver{catalog: catalog, rdb: rdb, ttl: ttl, logger: logger}
}

func lessonCacheKey(playlistID string) string {
	return "lessons:" + playlistID
}

// Resolve returns the lesson list for a course. The bool reports whether the
// substitute set was used.
func (r *LessonResolver) Resolve(ctx context.Context, course entity.Course) ([]entity.Lesson, bool) {
	playlistID := course.PrimaryPlaylist()
	if playlistID == "" || r.catalog == nil {
		return FallbackLessons(course), true
	}

	if r.rdb != nil {
		var cached []entity.Lesson
		if hit, err := helpers.RedisGetJSON(ctx, r.rdb, lessonCacheKey(playlistID), &cached); err == nil && hit && len(cached) > 0 {
			return cached, false
		}
	}

	lessons, err := r.catalog.PlaylistItems(ctx, playlistID)
	if err != nil || len(lessons) == 0 {
		if err != nil {
			r.logger.WithError(err).WithField("playlist", playlistID).Warn("catalog retrieval failed, using substitute lessons")
		}
		return FallbackLessons(course), true
	}

	if r.rdb != nil {
		if err := helpers.RedisSetJSON(ctx, r.rdb, lessonCacheKey(playlistID), lessons, r.ttl); err != nil {
			r.logger.WithError(err).Warn("lesson cache write failed")
		}
	}
	return lessons, false
}
