package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
)

type ResendConfig struct {
	APIKey string
	From   string
}

// NewResendConfig reads the Resend credentials from the environment. Email
// delivery is optional, so missing variables disable it instead of failing
// startup.
func NewResendConfig() *ResendConfig {
	apiKey := os.Getenv("RESEND_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		log.Println("Resend not configured, email delivery disabled")
		return &ResendConfig{}
	}
	return &ResendConfig{APIKey: apiKey, From: fromEmail}
}

type EmailService struct {
	client *resend.Client
	from   string
}

func NewEmailService(lc fx.Lifecycle, config *ResendConfig) *EmailService {
	service := &EmailService{from: config.From}
	if config.APIKey != "" {
		service.client = resend.NewClient(config.APIKey)
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if service.client != nil {
				log.Println("Email Service initialized")
			}
			return nil
		},
	})
	return service
}

// SendEmail delivers an HTML email through Resend. It is a no-op when the
// service is not configured.
func (e *EmailService) SendEmail(to, subject, body string) error {
	if e.client == nil {
		return nil
	}

	_, err := e.client.Emails.Send(&resend.SendEmailRequest{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Println("Email sent successfully to ", to)
	return nil
}
