package notification

import (
	"context"
	"fmt"

	"ayursutra/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridSender creates a new SendGrid email sender.
func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	if fromName == "" {
		fromName = "AyurSutra"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

var _ EmailSender = (*SendGridSender)(nil)

// SendEmail sends a plain-text email.
func (s *SendGridSender) SendEmail(ctx context.Context, to, subject, message string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	email := mail.NewSingleEmail(from, subject, recipient, message, message)

	response, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("email: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email: sendgrid returned status %d", response.StatusCode)
	}

	utils.GetLogger().Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
