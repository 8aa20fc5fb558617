package dashboard

import "github.com/kmulatu/ezana-academy/internal/domain/entity"

// Section is one entry of the dashboard sidebar.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var common = []Section{
	{ID: "settings", Label: "Profile Settings", Icon: "fa-cog"},
}

var adminSections = []Section{
	{ID: "overview", Label: "Overview", Icon: "fa-chart-pie"},
	{ID: "users", Label: "User Management", Icon: "fa-users"},
	{ID: "courses", Label: "Course Management", Icon: "fa-book-open"},
	{ID: "financials", Label: "Financials", Icon: "fa-wallet"},
	{ID: "reports", Label: "System Reports", Icon: "fa-server"},
}

var instructorSections = []Section{
	{ID: "dashboard", Label: "Overview", Icon: "fa-tachometer-alt"},
	{ID: "my-courses", Label: "My Courses", Icon: "fa-chalkboard-teacher"},
	{ID: "create-course", Label: "Create Course", Icon: "fa-plus-circle"},
	{ID: "students", Label: "My Students", Icon: "fa-user-graduate"},
	{ID: "assignments", Label: "Assignments", Icon: "fa-clipboard-list"},
	{ID: "qa", Label: "Q & A", Icon: "fa-comments"},
	{ID: "earnings", Label: "Earnings", Icon: "fa-dollar-sign"},
}

var studentSections = []Section{
	{ID: "my-learning", Label: "My Learning", Icon: "fa-graduation-cap"},
	{ID: "assignments", Label: "My Assignments", Icon: "fa-tasks"},
	{ID: "wishlist", Label: "Wishlist", Icon: "fa-heart"},
	{ID: "certificates", Label: "Certificates", Icon: "fa-certificate"},
	{ID: "resources", Label: "Resources", Icon: "fa-folder-open"},
	{ID: "purchase-history", Label: "Purchase History", Icon: "fa-history"},
	{ID: "achievements", Label: "Achievements", Icon: "fa-trophy"},
}

// Sections returns the ordered sidebar for a role. The settings section is
// appended for every role and renders the same profile form regardless of
// role. Unrecognized roles get the student sidebar.
func Sections(role string) []Section {
	var base []Section
	switch role {
	case entity.RoleAdmin:
		base = adminSections
	case entity.RoleInstructor:
		base = instructorSections
	default:
		base = studentSections
	}
	out := make([]Section, 0, len(base)+len(common))
	out = append(out, base...)
	out = append(out, common...)
	return out
}

// DefaultSection returns the landing section for a role.
func DefaultSection(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "overview"
	case entity.RoleInstructor:
		return "dashboard"
	default:
		return "my-learning"
	}
}

// Contains reports whether the role's sidebar has the given section id.
// Consumers fall back to a neutral placeholder when it does not.
func Contains(role, id string) bool {
	for _, s := range Sections(role) {
		if s.ID == id {
			return true
		}
	}
	return false
}
