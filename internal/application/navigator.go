package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/entity"
)

// Views the client shell can show. Exactly one is active at a time.
const (
	ViewHome         = "home"
	ViewAuth         = "auth"
	ViewContact      = "contact"
	ViewCourseDetail = "course-detail"
	ViewDashboard    = "dashboard"
)

// Fragment reads and writes the host's address fragment, the bookmarkable
// one-word view-state token.
type Fragment interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, fragment string)
}

// Scroller scrolls the home view to a named in-page section. Purely
// presentational; the state machine stays on home.
type Scroller interface {
	ScrollTo(ctx context.Context, section string)
}

// NavState is a snapshot of the orchestrator, safe to hand to callers.
type NavState struct {
	View           string         `json:"view"`
	SelectedCourse *entity.Course `json:"selectedCourse,omitempty"`
	Session        *entity.User   `json:"session,omitempty"`
}

// Navigator owns which top-level view is visible and keeps it reconciled
// with the session and the address fragment. All session reads and writes
// go through the DataService; nothing here touches storage directly.
type Navigator struct {
	mu       sync.Mutex
	data     *DataService
	fragment Fragment
	scroller Scroller
	logger   *logrus.Logger

	view     string
	selected *entity.Course
	session  *entity.User
}

func NewNavigator(data *DataService, fragment Fragment, scroller Scroller, logger *logrus.Logger) *Navigator {
	return &Navigator{
		data:     data,
		fragment: fragment,
		scroller: scroller,
		logger:   logger,
		view:     ViewHome,
	}
}

// Start hydrates the orchestrator: it loads the persisted session and
// resolves the initial view from the current address fragment. A dashboard
// fragment without a session falls back to home.
func (n *Navigator) Start(ctx context.Context) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	session, _ := n.data.GetSessionUser(ctx)
	n.session = session

	frag := ""
	if n.fragment != nil {
		frag = n.fragment.Get(ctx)
	}
	if frag == ViewDashboard && n.session != nil {
		n.view = ViewDashboard
	} else {
		n.view = ViewHome
	}
	return n.snapshot()
}

// LoginSucceeded persists user as the session identity and moves to the
// dashboard.
func (n *Navigator) LoginSucceeded(ctx context.Context, user entity.User) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	stored, _ := n.data.SetSessionUser(ctx, user)
	n.session = &stored
	n.view = ViewDashboard
	n.selected = nil
	n.setFragment(ctx, ViewDashboard)
	return n.snapshot()
}

// Logout clears the session identity and returns to home.
func (n *Navigator) Logout(ctx context.Context) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.data.Logout(ctx)
	n.session = nil
	n.view = ViewHome
	n.selected = nil
	n.setFragment(ctx, ViewHome)
	return n.snapshot()
}

// Navigate scrolls the home view to a named section. Outside home it is a
// no-op on the state.
func (n *Navigator) Navigate(ctx context.Context, section string) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.view == ViewHome && n.scroller != nil {
		n.scroller.ScrollTo(ctx, section)
	}
	return n.snapshot()
}

// SelectCourse opens the detail view for a course.
func (n *Navigator) SelectCourse(ctx context.Context, course entity.Course) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.selected = &course
	n.view = ViewCourseDetail
	return n.snapshot()
}

// BackFromCourseDetail leaves the detail view and clears the selection.
func (n *Navigator) BackFromCourseDetail(ctx context.Context) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.selected = nil
	n.view = ViewHome
	return n.snapshot()
}

func (n *Navigator) OpenAuth(ctx context.Context) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view = ViewAuth
	return n.snapshot()
}

func (n *Navigator) OpenContact(ctx context.Context) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.view = ViewContact
	return n.snapshot()
}

// FragmentChanged handles an externally-set address fragment. Only
// "dashboard", "home" and the empty fragment are recognized; any other value
// leaves the state untouched. That narrowness is long-standing observable
// behavior and is kept as is.
func (n *Navigator) FragmentChanged(ctx context.Context, fragment string) NavState {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch fragment {
	case ViewDashboard:
		if n.session != nil {
			n.view = ViewDashboard
		} else {
			n.view = ViewHome
		}
	case ViewHome, "":
		n.view = ViewHome
	default:
		n.logger.WithField("fragment", fragment).Debug("unrecognized fragment ignored")
	}
	return n.snapshot()
}

// State returns the current snapshot.
func (n *Navigator) State() NavState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshot()
}

func (n *Navigator) setFragment(ctx context.Context, fragment string) {
	if n.fragment != nil {
		n.fragment.Set(ctx, fragment)
	}
}

// snapshot must be called with the mutex held.
func (n *Navigator) snapshot() NavState {
	st := NavState{View: n.view}
	if n.selected != nil {
		c := *n.selected
		st.SelectedCourse = &c
	}
	if n.session != nil {
		u := *n.session
		st.Session = &u
	}
	return st
}
