package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmulatu/ezana-academy/config"
)

// Assistant builds the grounding context handed to the chat model. The chat
// collaborator itself is opaque; nothing here depends on what it replies.
type Assistant struct {
	data *DataService
	cfg  *config.Config
}

func NewAssistant(data *DataService, cfg *config.Config) *Assistant {
	return &Assistant{data: data, cfg: cfg}
}

// Context assembles the single formatted context string: static academy
// facts plus a one-line summary per catalog entry.
func (a *Assistant) Context(ctx context.Context) string {
	courses, _ := a.data.GetCourses(ctx)

	var lines []string
	for _, c := range courses {
		lines = append(lines, fmt.Sprintf("- %s (Price: ETB %g, Instructor: %s): %s", c.Title, c.Price, c.InstructorName, c.Description))
	}
	courseInfo := strings.Join(lines, "\n")

	generalInfo := fmt.Sprintf(`
%s General Info:
- CEO & Founder: %s.
- Location: %s.
- Contact: %s, %s.
- Mission: %s
- Features: Practical Skills, Certified Learning, Community Driven.
- Website Sections: Home, Courses, About, Contact.
`, a.cfg.AcademyName, a.cfg.AcademyCEO, a.cfg.AcademyCity, a.cfg.AcademyPhone, a.cfg.AcademyEmail, a.cfg.AcademyMission)

	return fmt.Sprintf("You are Ezana AI, a helpful education assistant for %s in Ethiopia. Use the following website information to answer user questions:\n%s\n\nAvailable Courses:\n%s\n\nIf the user asks about something else, try to be helpful but mention you are an education assistant.",
		a.cfg.AcademyName, generalInfo, courseInfo)
}
