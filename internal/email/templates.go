package email

import (
	"fmt"
	"strings"

	"replink_backend/internal/models"
)

// WelcomeBody builds the greeting sent after registration.
func WelcomeBody(name string) (subject, body string) {
	subject = "Welcome to RepLink"
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>Your RepLink account is ready. Log in to start browsing gigs.</p>`, name)
	return subject, body
}

// ActivityDigestBody builds the periodic summary of new suspicious-activity
// flags for the admin inbox.
func ActivityDigestBody(items []models.SuspiciousActivityItem) (subject, body string) {
	subject = fmt.Sprintf("Suspicious activity digest: %d new flags", len(items))

	var b strings.Builder
	b.WriteString("<p>New suspicious-activity flags:</p><ul>")
	for _, item := range items {
		name := item.RepID
		if item.RepItem != nil {
			name = fmt.Sprintf("%s (%s)", item.RepItem.Name, item.RepItem.Email)
		}
		fmt.Fprintf(&b, "<li>%s: %s at %s</li>",
			name, item.Reason, item.CreatedAt.Format("2006-01-02 15:04 MST"))
	}
	b.WriteString("</ul>")
	return subject, b.String()
}
