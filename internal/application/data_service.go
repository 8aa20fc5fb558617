package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/entity"
	"github.com/kmulatu/ezana-academy/internal/domain/storage"
)

// DataService is the typed data-access layer over the key-value Store. It
// never returns errors to callers; every failure degrades to a documented
// default and the second return value reports that a degradation happened,
// so the HTTP layer can surface it without breaking the no-error contract.
//
// The session record is always kept in the local store, even when the
// catalog store points at the remote backend, matching the behavior of the
// legacy client.
type DataService struct {
	store    storage.Store
	sessions storage.Store
	logger   *logrus.Logger
	now      func() time.Time
}

func NewDataService(store, sessions storage.Store, logger *logrus.Logger) *DataService {
	return &DataService{
		store:    store,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *DataService) degrade(op string, err error) bool {
	if err != nil {
		s.logger.WithError(err).WithField("op", op).Warn("storage degraded, serving default")
	} else {
		s.logger.WithField("op", op).Warn("storage degraded, serving default")
	}
	return true
}

// readInto decodes the stored document for key into dst. It reports
// (found, degraded); a decode failure counts as degraded and not found.
func (s *DataService) readInto(ctx context.Context, st storage.Store, key string, dst any) (bool, bool) {
	raw, ok, err := st.Read(ctx, key)
	if err != nil {
		return false, s.degrade("read "+key, err)
	}
	if !ok {
		return false, false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, s.degrade("decode "+key, err)
	}
	return true, false
}

// --- Settings ---

func (s *DataService) GetSettings(ctx context.Context) (entity.Settings, bool) {
	var stored entity.Settings
	found, degraded := s.readInto(ctx, s.store, storage.KeySettings, &stored)
	if !found {
		return entity.DefaultSettings(), degraded
	}
	return stored, degraded
}

func (s *DataService) UpdateSettings(ctx context.Context, partial map[string]any) (entity.Settings, bool) {
	current, degraded := s.GetSettings(ctx)
	merged := current.Merged(partial)
	if err := s.store.Write(ctx, storage.KeySettings, merged); err != nil {
		degraded = s.degrade("write settings", err)
	}
	return merged, degraded
}

// --- Session ---

// GetSessionUser returns the persisted session identity, or nil when no one
// is signed in.
func (s *DataService) GetSessionUser(ctx context.Context) (*entity.User, bool) {
	var u entity.User
	found, degraded := s.readInto(ctx, s.sessions, storage.KeySession, &u)
	if !found {
		return nil, degraded
	}
	return &u, degraded
}

// SetSessionUser persists user as the session identity and upserts it into
// the directory keyed by email. Session and directory must never diverge for
// the same email; this dual write is where that is enforced.
func (s *DataService) SetSessionUser(ctx context.Context, user entity.User) (entity.User, bool) {
	users, degraded := s.GetUsers(ctx)

	idx := -1
	for i, u := range users {
		if u.Email == user.Email {
			idx = i
			break
		}
	}
	if idx >= 0 {
		users[idx] = users[idx].Merge(user)
		user = users[idx]
	} else {
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		if user.Avatar == "" {
			user.Avatar = entity.DefaultAvatar
		}
		if user.JoinDate == "" {
			user.JoinDate = s.now().Format("2006-01-02")
		}
		users = append(users, user)
	}

	if err := s.store.Write(ctx, storage.KeyUsers, users); err != nil {
		degraded = s.degrade("write users", err)
	}
	if err := s.sessions.Write(ctx, storage.KeySession, user); err != nil {
		degraded = s.degrade("write session", err)
	}
	return user, degraded
}

// Logout removes the session identity. The directory entry stays.
func (s *DataService) Logout(ctx context.Context) bool {
	if err := s.sessions.Remove(ctx, storage.KeySession); err != nil {
		return s.degrade("clear session", err)
	}
	return false
}

// --- Users ---

// GetUsers returns the directory, seeding it with the three canonical
// accounts when the key has never been written. A persisted empty
// directory stays empty; only absence (or a corrupt record) seeds.
func (s *DataService) GetUsers(ctx context.Context) ([]entity.User, bool) {
	var users []entity.User
	found, degraded := s.readInto(ctx, s.store, storage.KeyUsers, &users)
	if !found {
		users = SeedUsers()
		if !degraded {
			if err := s.store.Write(ctx, storage.KeyUsers, users); err != nil {
				degraded = s.degrade("seed users", err)
			}
		}
	}
	return users, degraded
}

// DeleteUser removes the directory entry with the given id. Deleting an id
// that is not present is not an error; the directory is returned either way.
func (s *DataService) DeleteUser(ctx context.Context, id string) ([]entity.User, bool) {
	users, degraded := s.GetUsers(ctx)
	out := make([]entity.User, 0, len(users))
	removed := false
	for _, u := range users {
		if u.ID == id {
			removed = true
			continue
		}
		out = append(out, u)
	}
	if removed {
		if err := s.store.Write(ctx, storage.KeyUsers, out); err != nil {
			degraded = s.degrade("write users", err)
		}
	}
	return out, degraded
}

// UpdateUser merges the update onto the directory entry with the same id.
// When the session identity shares that id the same merge is applied to it,
// so a self-edit shows up without a fresh login. The session is synced even
// when the directory entry is gone: a signed-in account whose entry was
// deleted by an admin still sees its own edits.
func (s *DataService) UpdateUser(ctx context.Context, update entity.User) (entity.User, bool) {
	users, degraded := s.GetUsers(ctx)

	merged := update
	found := false
	for i, u := range users {
		if u.ID != update.ID {
			continue
		}
		if update.Role != "" && update.Role != u.Role {
			// Role is fixed after account creation; nothing legitimate
			// reaches this path.
			s.logger.WithFields(logrus.Fields{
				"id":   u.ID,
				"from": u.Role,
				"to":   update.Role,
			}).Warn("role change attempted via user update")
		}
		users[i] = u.Merge(update)
		merged = users[i]
		found = true
		break
	}
	if found {
		if err := s.store.Write(ctx, storage.KeyUsers, users); err != nil {
			degraded = s.degrade("write users", err)
		}
	}

	if session, d := s.GetSessionUser(ctx); d {
		degraded = true
	} else if session != nil && session.ID == update.ID {
		synced := merged
		if !found {
			synced = session.Merge(update)
			merged = synced
		}
		if err := s.sessions.Write(ctx, storage.KeySession, synced); err != nil {
			degraded = s.degrade("write session", err)
		}
	}
	return merged, degraded
}

// --- Courses ---

// applySeedOverride re-asserts price, phases and category from the seed
// definition for every persisted course whose id matches a seed course.
// The persisted copy is never authoritative for those three fields.
func applySeedOverride(courses []entity.Course) []entity.Course {
	seeds := make(map[string]entity.Course)
	for _, c := range SeedCourses() {
		seeds[c.ID] = c
	}
	for i, c := range courses {
		seed, ok := seeds[c.ID]
		if !ok {
			continue
		}
		courses[i].Price = seed.Price
		courses[i].Phases = seed.Phases
		courses[i].Category = seed.Category
	}
	return courses
}

// GetCourses returns the catalog, or the seed set when the key was never
// written. As with the directory, a persisted empty catalog is honored.
func (s *DataService) GetCourses(ctx context.Context) ([]entity.Course, bool) {
	var courses []entity.Course
	found, degraded := s.readInto(ctx, s.store, storage.KeyCourses, &courses)
	if !found {
		return SeedCourses(), degraded
	}
	return applySeedOverride(courses), degraded
}

// AddCourse appends a course to the persisted catalog.
func (s *DataService) AddCourse(ctx context.Context, course entity.Course) (entity.Course, bool) {
	courses, degraded := s.GetCourses(ctx)
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.Image == "" {
		course.Image = DefaultCourseImage
	}
	courses = append(courses, course)
	if err := s.store.Write(ctx, storage.KeyCourses, courses); err != nil {
		degraded = s.degrade("write courses", err)
	}
	return course, degraded
}

// DeleteCourse removes the catalog entry with the given id, if present.
func (s *DataService) DeleteCourse(ctx context.Context, id string) ([]entity.Course, bool) {
	courses, degraded := s.GetCourses(ctx)
	out := make([]entity.Course, 0, len(courses))
	removed := false
	for _, c := range courses {
		if c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if removed {
		if err := s.store.Write(ctx, storage.KeyCourses, out); err != nil {
			degraded = s.degrade("write courses", err)
		}
	}
	return out, degraded
}
