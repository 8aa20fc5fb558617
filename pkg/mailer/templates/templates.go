package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names used on email jobs.
const (
	Welcome = "welcome"
)

var welcomeHTML = template.Must(template.New(Welcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family:Arial,sans-serif;color:#1f2937;max-width:600px;margin:0 auto;padding:24px;">
    <h2 style="color:#2563eb;">Welcome to {{.AcademyName}}, {{.Name}}!</h2>
    <p>Your account is ready. Sign in any time to continue learning.</p>
    <ul>
      <li>Practical, hands-on courses</li>
      <li>Certified learning paths</li>
      <li>A community of learners across Ethiopia</li>
    </ul>
    <p>Questions? Just reply to this email.</p>
    <p style="color:#6b7280;font-size:12px;">{{.AcademyName}} &middot; {{.City}}</p>
  </body>
</html>`))

// Render produces (subject, text, html) for a named template. Unknown
// templates fall through to an empty render and the job's own fields apply.
func Render(name string, data map[string]any) (string, string, string, error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject := fmt.Sprintf("Welcome to %v!", data["AcademyName"])
		text := fmt.Sprintf("Welcome to %v, %v! Your account is ready.", data["AcademyName"], data["Name"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
