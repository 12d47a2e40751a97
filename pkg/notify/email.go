package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// Mailer sends plain alerts through SendGrid.
type Mailer struct {
	client *sendgrid.Client
	from   *mail.Email
	to     []*mail.Email
}

// NewMailer creates a SendGrid mailer. host overrides the API host and is
// empty in production.
func NewMailer(apiKey, host, fromEmail, fromName string, to []string) *Mailer {
	var client *sendgrid.Client
	if host == "" {
		client = sendgrid.NewSendClient(apiKey)
	} else {
		req := sendgrid.GetRequest(apiKey, sendEndpoint, host)
		req.Method = "POST"
		client = &sendgrid.Client{Request: req}
	}
	recipients := make([]*mail.Email, 0, len(to))
	for _, addr := range to {
		if addr != "" {
			recipients = append(recipients, mail.NewEmail("", addr))
		}
	}
	return &Mailer{
		client: client,
		from:   mail.NewEmail(fromName, fromEmail),
		to:     recipients,
	}
}

// Send delivers one message to every configured recipient.
func (m *Mailer) Send(ctx context.Context, subject, plainText, html string) error {
	if len(m.to) == 0 {
		return fmt.Errorf("no alert recipients configured")
	}

	message := mail.NewV3Mail()
	message.SetFrom(m.from)
	message.Subject = subject
	p := mail.NewPersonalization()
	p.AddTos(m.to...)
	message.AddPersonalizations(p)
	message.AddContent(mail.NewContent("text/plain", plainText))
	if html != "" {
		message.AddContent(mail.NewContent("text/html", html))
	}

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}
	return nil
}
