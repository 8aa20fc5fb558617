package dashboard_test

import (
	"testing"

	"github.com/kmulatu/ezana-academy/internal/domain/dashboard"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
)

func TestSectionsAppendSettingsOnce(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleInstructor, entity.RoleStudent, "unknown"} {
		sections := dashboard.Sections(role)
		if len(sections) == 0 {
			t.Fatalf("%s: empty sidebar", role)
		}
		count := 0
		for _, s := range sections {
			if s.ID == "settings" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("%s: settings appears %d times, want 1", role, count)
		}
		if sections[len(sections)-1].ID != "settings" {
			t.Errorf("%s: settings is not last, got %q", role, sections[len(sections)-1].ID)
		}
	}
}

func TestInstructorSidebar(t *testing.T) {
	sections := dashboard.Sections(entity.RoleInstructor)
	wantIDs := []string{"dashboard", "my-courses", "create-course", "students", "assignments", "qa", "earnings", "settings"}
	if len(sections) != len(wantIDs) {
		t.Fatalf("got %d sections, want %d", len(sections), len(wantIDs))
	}
	for i, id := range wantIDs {
		if sections[i].ID != id {
			t.Errorf("section %d = %q, want %q", i, sections[i].ID, id)
		}
	}
	if got := dashboard.DefaultSection(entity.RoleInstructor); got != "dashboard" {
		t.Errorf("default = %q, want dashboard", got)
	}
}

func TestDefaultSections(t *testing.T) {
	cases := map[string]string{
		entity.RoleAdmin:      "overview",
		entity.RoleInstructor: "dashboard",
		entity.RoleStudent:    "my-learning",
		"unknown":             "my-learning",
	}
	for role, want := range cases {
		if got := dashboard.DefaultSection(role); got != want {
			t.Errorf("DefaultSection(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestUnknownRoleGetsStudentSidebar(t *testing.T) {
	unknown := dashboard.Sections("guest")
	student := dashboard.Sections(entity.RoleStudent)
	if len(unknown) != len(student) {
		t.Fatalf("got %d sections, want %d", len(unknown), len(student))
	}
	for i := range unknown {
		if unknown[i] != student[i] {
			t.Errorf("section %d differs: %+v vs %+v", i, unknown[i], student[i])
		}
	}
}

func TestContains(t *testing.T) {
	if !dashboard.Contains(entity.RoleAdmin, "financials") {
		t.Error("admin sidebar should contain financials")
	}
	if dashboard.Contains(entity.RoleStudent, "financials") {
		t.Error("student sidebar should not contain financials")
	}
	if !dashboard.Contains(entity.RoleStudent, "settings") {
		t.Error("every sidebar contains settings")
	}
}
