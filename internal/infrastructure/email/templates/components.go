package templates

import (
	"bytes"
	"html/template"
	"log"
)

// LeadNotificationProps carries the fields of a captured enquiry into the
// notification email body.
type LeadNotificationProps struct {
	Name        string
	Phone       string
	Email       string
	Budget      string
	Config      string
	ProjectName string
	SubmittedAt string
}

var leadNotificationTemplate = template.Must(template.New("leadNotification").Parse(`
<h2 style="margin: 0 0 16px; font-size: 20px; color: #1a1a1a;">New enquiry received</h2>
<p style="margin: 0 0 16px;">A visitor just submitted the enquiry form{{if .ProjectName}} for <strong>{{.ProjectName}}</strong>{{end}}.</p>
<table role="presentation" border="0" cellpadding="6" cellspacing="0" style="width: 100%; font-size: 15px;">
  <tr><td style="color: #9a9ea6; width: 120px;">Name</td><td>{{.Name}}</td></tr>
  <tr><td style="color: #9a9ea6;">Phone</td><td>{{.Phone}}</td></tr>
  {{if .Email}}<tr><td style="color: #9a9ea6;">Email</td><td>{{.Email}}</td></tr>{{end}}
  {{if .Budget}}<tr><td style="color: #9a9ea6;">Budget</td><td>{{.Budget}}</td></tr>{{end}}
  {{if .Config}}<tr><td style="color: #9a9ea6;">Configuration</td><td>{{.Config}}</td></tr>{{end}}
  <tr><td style="color: #9a9ea6;">Submitted</td><td>{{.SubmittedAt}}</td></tr>
</table>`))

// GetLeadNotificationContent renders the new-enquiry email body fragment.
func GetLeadNotificationContent(props LeadNotificationProps) string {
	var buf bytes.Buffer
	if err := leadNotificationTemplate.Execute(&buf, props); err != nil {
		log.Printf("Error executing lead notification template: %v", err)
		return ""
	}
	return buf.String()
}
