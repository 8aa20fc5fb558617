package application_test

import (
	"context"
	"sync"
	"testing"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
)

type memFragment struct {
	mu sync.Mutex
	v  string
}

func (f *memFragment) Get(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}

func (f *memFragment) Set(ctx context.Context, fragment string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v = fragment
}

type recordingScroller struct {
	sections []string
}

func (s *recordingScroller) ScrollTo(ctx context.Context, section string) {
	s.sections = append(s.sections, section)
}

func newNavigator() (*app.Navigator, *memFragment, *recordingScroller) {
	frag := &memFragment{}
	scroll := &recordingScroller{}
	nav := app.NewNavigator(newService(newMemStore()), frag, scroll, quietLogger())
	return nav, frag, scroll
}

func TestNavigatorInitialState(t *testing.T) {
	nav, _, _ := newNavigator()
	state := nav.Start(context.Background())
	if state.View != app.ViewHome {
		t.Fatalf("initial view = %q, want home", state.View)
	}
	if state.Session != nil {
		t.Fatal("no session expected on a fresh start")
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	nav, frag, _ := newNavigator()
	ctx := context.Background()
	nav.Start(ctx)

	state := nav.LoginSucceeded(ctx, app.MockIdentify("student@ezana.com"))
	if state.View != app.ViewDashboard {
		t.Fatalf("view after login = %q, want dashboard", state.View)
	}
	if frag.Get(ctx) != "dashboard" {
		t.Fatalf("fragment = %q, want dashboard", frag.Get(ctx))
	}

	// Simulated reload: a fresh start with the session still persisted.
	state = nav.Start(ctx)
	if state.View != app.ViewDashboard {
		t.Fatalf("view after reload = %q, want dashboard", state.View)
	}
	if state.Session == nil || state.Session.Email != "student@ezana.com" {
		t.Fatalf("session not hydrated: %+v", state.Session)
	}

	state = nav.Logout(ctx)
	if state.View != app.ViewHome {
		t.Fatalf("view after logout = %q, want home", state.View)
	}
	if frag.Get(ctx) != "home" {
		t.Fatalf("fragment = %q, want home", frag.Get(ctx))
	}

	state = nav.Start(ctx)
	if state.View != app.ViewHome || state.Session != nil {
		t.Fatalf("reload after logout: view=%q session=%+v", state.View, state.Session)
	}
}

func TestDashboardFragmentWithoutSessionResolvesHome(t *testing.T) {
	nav, frag, _ := newNavigator()
	ctx := context.Background()

	frag.Set(ctx, "dashboard")
	state := nav.Start(ctx)
	if state.View != app.ViewHome {
		t.Fatalf("view = %q, want home without a session", state.View)
	}
}

func TestFragmentChangedRecognizesOnlyKnownValues(t *testing.T) {
	nav, _, _ := newNavigator()
	ctx := context.Background()
	nav.Start(ctx)
	nav.OpenContact(ctx)

	// Unrecognized fragments leave the state untouched.
	state := nav.FragmentChanged(ctx, "pricing")
	if state.View != app.ViewContact {
		t.Fatalf("unknown fragment changed view to %q", state.View)
	}

	state = nav.FragmentChanged(ctx, "home")
	if state.View != app.ViewHome {
		t.Fatalf("home fragment ignored, view = %q", state.View)
	}

	nav.OpenAuth(ctx)
	state = nav.FragmentChanged(ctx, "")
	if state.View != app.ViewHome {
		t.Fatalf("empty fragment should resolve home, view = %q", state.View)
	}

	// Dashboard fragment without a session falls back to home.
	state = nav.FragmentChanged(ctx, "dashboard")
	if state.View != app.ViewHome {
		t.Fatalf("dashboard without session resolved %q", state.View)
	}

	nav.LoginSucceeded(ctx, app.MockIdentify("a@b.com"))
	nav.FragmentChanged(ctx, "home")
	state = nav.FragmentChanged(ctx, "dashboard")
	if state.View != app.ViewDashboard {
		t.Fatalf("dashboard with session resolved %q", state.View)
	}
}

func TestNavigateScrollsOnlyOnHome(t *testing.T) {
	nav, _, scroll := newNavigator()
	ctx := context.Background()
	nav.Start(ctx)

	state := nav.Navigate(ctx, "courses")
	if state.View != app.ViewHome {
		t.Fatalf("navigate changed view to %q", state.View)
	}
	if len(scroll.sections) != 1 || scroll.sections[0] != "courses" {
		t.Fatalf("scroll not recorded: %v", scroll.sections)
	}

	nav.OpenContact(ctx)
	nav.Navigate(ctx, "about")
	if len(scroll.sections) != 1 {
		t.Fatalf("scrolled outside home: %v", scroll.sections)
	}
}

func TestSelectCourseAndBack(t *testing.T) {
	nav, _, _ := newNavigator()
	ctx := context.Background()
	nav.Start(ctx)

	course := entity.Course{ID: "c1", Title: "Full Stack Web Development"}
	state := nav.SelectCourse(ctx, course)
	if state.View != app.ViewCourseDetail {
		t.Fatalf("view = %q, want course-detail", state.View)
	}
	if state.SelectedCourse == nil || state.SelectedCourse.ID != "c1" {
		t.Fatalf("selection not recorded: %+v", state.SelectedCourse)
	}

	state = nav.BackFromCourseDetail(ctx)
	if state.View != app.ViewHome || state.SelectedCourse != nil {
		t.Fatalf("back broken: view=%q selected=%+v", state.View, state.SelectedCourse)
	}
}
