package mail

import (
	"bytes"
	"html/template"

	mail "github.com/go-mail/mail/v2"
)

// Шаблон приветственного письма: тема, текстовая и HTML версии
const welcomeTemplate = `
{{define "subject"}}Welcome to TaskTracker{{end}}

{{define "plainBody"}}
Hi {{.Name}},

Your TaskTracker account is ready. You can now create tasks, assign them
and discuss them with your team.

The TaskTracker team
{{end}}

{{define "htmlBody"}}
<!doctype html>
<html>
<body>
<p>Hi {{.Name}},</p>
<p>Your TaskTracker account is ready. You can now create tasks, assign them
and discuss them with your team.</p>
<p>The TaskTracker team</p>
</body>
</html>
{{end}}
`

var welcomeTmpl = template.Must(template.New("welcome").Parse(welcomeTemplate))

type Mailer struct {
	dialer *mail.Dialer
	sender string
}

func NewMailer(host string, port int, username, password, sender string) *Mailer {
	return &Mailer{
		dialer: mail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

// SendWelcome отправляет приветственное письмо новому пользователю
func (m *Mailer) SendWelcome(to, name string) error {
	return m.send(to, welcomeTmpl, map[string]string{"Name": name})
}

func (m *Mailer) send(to string, tmpl *template.Template, data any) error {
	var subject bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return err
	}
	var plainBody bytes.Buffer
	if err := tmpl.ExecuteTemplate(&plainBody, "plainBody", data); err != nil {
		return err
	}
	var htmlBody bytes.Buffer
	if err := tmpl.ExecuteTemplate(&htmlBody, "htmlBody", data); err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", to)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	// SMTP бывает нестабилен, пробуем несколько раз
	var err error
	for i := 0; i < 3; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			break
		}
	}
	return err
}
