package application_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
)

type fakeCatalog struct {
	items []entity.Lesson
	err   error
	calls int
}

func (f *fakeCatalog) PlaylistItems(ctx context.Context, playlistID string) ([]entity.Lesson, error) {
	f.calls++
	return f.items, f.err
}

func seedCourse(category string) entity.Course {
	for _, c := range app.SeedCourses() {
		if c.Category == category {
			return c
		}
	}
	return entity.Course{Category: category, Image: "img.png", Phases: []entity.CoursePhase{{ID: "p", PlaylistID: "PLX"}}}
}

func TestResolveFallbackTotality(t *testing.T) {
	categories := []string{entity.CategoryWebDev, entity.CategoryMath, entity.CategoryEnglish}
	failures := map[string]*fakeCatalog{
		"retrieval error": {err: errors.New("timeout")},
		"empty list":      {items: nil},
	}

	for name, catalog := range failures {
		for _, category := range categories {
			course := seedCourse(category)
			r := app.NewLessonResolver(catalog, nil, 0, quietLogger())

			lessons, fellBack := r.Resolve(context.Background(), course)
			if !fellBack {
				t.Errorf("%s/%s: expected fallback", name, category)
			}
			if len(lessons) == 0 {
				t.Fatalf("%s/%s: empty lesson list", name, category)
			}
			want := app.FallbackLessons(course)
			if len(lessons) != len(want) {
				t.Errorf("%s/%s: got %d lessons, want %d", name, category, len(lessons), len(want))
			}
			for i := range lessons {
				if lessons[i].VideoID != want[i].VideoID {
					t.Errorf("%s/%s: lesson %d videoId = %q, want %q", name, category, i, lessons[i].VideoID, want[i].VideoID)
				}
				if lessons[i].Thumbnail != course.Image {
					t.Errorf("%s/%s: substitute thumbnail should reuse course image", name, category)
				}
			}
		}
	}
}

func TestResolveUsesCatalogWhenAvailable(t *testing.T) {
	catalog := &fakeCatalog{items: []entity.Lesson{
		{ID: "i1", Title: "Lesson One", VideoID: "v1"},
		{ID: "i2", Title: "Lesson Two", VideoID: "v2"},
	}}
	r := app.NewLessonResolver(catalog, nil, 0, quietLogger())

	lessons, fellBack := r.Resolve(context.Background(), seedCourse(entity.CategoryWebDev))
	if fellBack {
		t.Fatal("should not fall back when catalog answers")
	}
	if len(lessons) != 2 || lessons[0].VideoID != "v1" {
		t.Fatalf("catalog lessons not returned: %+v", lessons)
	}
}

func TestResolveWithoutPlaylistFallsBack(t *testing.T) {
	catalog := &fakeCatalog{items: []entity.Lesson{{ID: "i1", Title: "x", VideoID: "v"}}}
	r := app.NewLessonResolver(catalog, nil, 0, quietLogger())

	course := entity.Course{ID: "cx", Category: entity.CategoryMath, Image: "img.png"}
	lessons, fellBack := r.Resolve(context.Background(), course)
	if !fellBack {
		t.Fatal("no playlist reference should mean fallback")
	}
	if catalog.calls != 0 {
		t.Error("catalog should not be asked without a playlist")
	}
	if len(lessons) != 4 {
		t.Fatalf("got %d lessons, want 4 math substitutes", len(lessons))
	}
}

func TestFallbackLessonsUnknownCategory(t *testing.T) {
	course := entity.Course{ID: "cz", Category: "chemistry", Image: "img.png"}
	lessons := app.FallbackLessons(course)
	want := app.FallbackLessons(entity.Course{Category: entity.CategoryWebDev, Image: "img.png"})
	if len(lessons) != len(want) {
		t.Fatalf("unknown category should use the web-dev set, got %d lessons", len(lessons))
	}
}
