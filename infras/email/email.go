package email

//go:generate go run go.uber.org/mock/mockgen -source=./email.go -destination=./mocks/email_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jumpy/config"
	"jumpy/infras/otel"
	"jumpy/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

const (
	otelAttrRecipient = "email.recipient"
	otelAttrSubject   = "email.subject"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer sends transactional mail over SMTP.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailerImpl struct {
	dialer *gomail.Dialer
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Mailer {
	dialer := gomail.NewDialer(
		cfg.External.SMTP.Host,
		cfg.External.SMTP.Port,
		cfg.External.SMTP.Username,
		cfg.External.SMTP.Password,
	)

	return &mailerImpl{
		dialer: dialer,
		config: cfg,
		otel:   ot,
	}
}

func (m *mailerImpl) Send(ctx context.Context, msg Message) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelEmailScopeName, constant.OtelEmailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: msg.To,
		otelAttrSubject:   msg.Subject,
	})

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.config.External.SMTP.From)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	if msg.ReplyTo != "" {
		mail.SetHeader("Reply-To", msg.ReplyTo)
	}

	if err = m.dialer.DialAndSend(mail); err != nil {
		log.Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).Msg("Failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Email sent")

	return nil
}
