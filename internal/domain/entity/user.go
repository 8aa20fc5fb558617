package entity

// Roles recognized by the platform. Role is fixed once an account exists;
// nothing in the application is expected to change it afterwards.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// DefaultAvatar is used whenever an account has no avatar of its own.
const DefaultAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=200"

// User is persisted twice: once as the session identity (the currently
// authenticated user) and once as an entry in the user directory. The two
// records must stay consistent for the same email; DataService owns that.
// JSON tags match the wire/storage format of the original client.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Title    string `json:"title,omitempty"`
	Bio      string `json:"bio,omitempty"`
	JoinDate string `json:"joinDate,omitempty"` // YYYY-MM-DD, stamped at first persistence
}

// Merge overlays the supplied update onto u. Fields the update does not
// supply keep their existing value; JoinDate is never overwritten once set.
func (u User) Merge(update User) User {
	out := u
	if update.ID != "" {
		out.ID = update.ID
	}
	if update.Name != "" {
		out.Name = update.Name
	}
	if update.Email != "" {
		out.Email = update.Email
	}
	if update.Role != "" {
		out.Role = update.Role
	}
	if update.Avatar != "" {
		out.Avatar = update.Avatar
	}
	if update.Title != "" {
		out.Title = update.Title
	}
	if update.Bio != "" {
		out.Bio = update.Bio
	}
	if out.JoinDate == "" {
		out.JoinDate = update.JoinDate
	}
	return out
}

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r string) bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}
