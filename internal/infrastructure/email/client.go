// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/leads"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/email/templates"
	"github.com/luxeestates/luxegate-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendLeadNotification(toEmail string, lead leads.Lead, projectName string) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.NotifyEmailFrom,
		fromName:  config.NotifyEmailFromName,
	}, nil
}

// SendLeadNotification composes and sends the new-enquiry notification email.
func (c *ResendClient) SendLeadNotification(toEmail string, lead leads.Lead, projectName string) error {
	subject := fmt.Sprintf("New enquiry from %s", lead.Name)

	content := templates.GetLeadNotificationContent(templates.LeadNotificationProps{
		Name:        lead.Name,
		Phone:       lead.Phone,
		Email:       lead.Email,
		Budget:      lead.Budget,
		Config:      lead.InterestedConfig,
		ProjectName: projectName,
		SubmittedAt: lead.SubmittedAt.Format("02 Jan 2006 15:04 MST"),
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send lead notification via Resend: %w", err)
	}

	return nil
}
