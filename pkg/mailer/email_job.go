package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects one of the embedded templates in pkg/mailer/templates;
// Data supplies its fields. Subject/Text are the raw fallback when no
// template is set.
// TemplateWelcome names the signup greeting template.
const TemplateWelcome = "welcome"

type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}
