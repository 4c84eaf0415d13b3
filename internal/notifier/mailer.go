package notifier

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

// Message is one outbound tenant email.
type Message struct {
	ToName    string
	ToEmail   string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer delivers a single message. Implementations must treat
// delivery as best-effort; callers never retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer stands in when no SendGrid key is configured: it logs the
// subject and recipient instead of delivering.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	utils.Logger.Infof("Email (non envoyé, mode log) à %s : %s", msg.ToEmail, msg.Subject)
	return nil
}

// SendGridMailer delivers through the SendGrid v3 API. Sandbox mode
// validates the payload without actually delivering, which is what the
// test environments run with.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	sandbox   bool
}

func NewSendGridMailer(apiKey, fromName, fromEmail string, sandbox bool) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		sandbox:   sandbox,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	email := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)
	if m.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		email.MailSettings = ms
	}

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
