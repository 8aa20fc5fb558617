package application_test

import (
	"context"
	"strings"
	"testing"

	"github.com/kmulatu/ezana-academy/config"
	app "github.com/kmulatu/ezana-academy/internal/application"
)

func TestAssistantContext(t *testing.T) {
	cfg := &config.Config{
		AcademyName:    "Ezana Academy",
		AcademyCEO:     "Kassahun Mulatu",
		AcademyCity:    "Bahir Dar, Ethiopia",
		AcademyPhone:   "+251 915508167",
		AcademyEmail:   "kmulatu21@gmail.com",
		AcademyMission: "Empowering students across Ethiopia.",
	}
	assistant := app.NewAssistant(newService(newMemStore()), cfg)

	got := assistant.Context(context.Background())

	for _, want := range []string{
		"You are Ezana AI",
		"CEO & Founder: Kassahun Mulatu.",
		"Available Courses:",
		"- Full Stack Web Development (Price: ETB 2500, Instructor: Kassahun Mulatu)",
		"education assistant",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q", want)
		}
	}
}
