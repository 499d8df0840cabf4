package email

import (
	"bytes"
	"html/template"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New contact message</h2>
  <p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <hr>
  <p>{{.Message}}</p>
</body>
</html>`

var contactTpl = template.Must(template.New("contact_notification").Parse(contactNotificationTemplate))

func renderContactNotification(data ContactNotificationData) (string, error) {
	var buf bytes.Buffer
	if err := contactTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
