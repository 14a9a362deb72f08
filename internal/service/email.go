package service

import (
	"context"
	"fmt"
	"strings"

	"memberdir-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendDecisionNotification(ctx context.Context, email, name, decision, notes string) error {
	var subject, body string
	switch decision {
	case "APPROVED":
		subject = "Your membership request has been approved"
		body = fmt.Sprintf("Hello %s,\n\nYour membership request has been approved. Welcome to the directory!", name)
	default:
		subject = "Your membership request needs an update"
		body = fmt.Sprintf("Hello %s,\n\nYour membership request could not be approved as submitted. Please update and resubmit it.", name)
		if notes != "" {
			body += fmt.Sprintf("\n\nFeedback from the review team:\n%s", notes)
		}
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPendingDigest(ctx context.Context, adminEmail string, requests []domain.MembershipRequest) error {
	if len(requests) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "There are %d membership requests awaiting review:\n\n", len(requests))
	for _, req := range requests {
		fmt.Fprintf(&b, "- #%d %s %s (%s), submitted %s\n",
			req.ID, req.Personal.FirstName, req.Personal.LastName,
			req.Contact.Email, req.CreatedOn.Format("2006-01-02"))
	}

	subject := fmt.Sprintf("%d membership requests pending review", len(requests))
	return s.send(adminEmail, "Admin", subject, b.String())
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}
