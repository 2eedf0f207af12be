package contact

import (
	"context"
	"fmt"
	"html"

	"nepolianStore/pkg/logger"
)

// NotificationRepository contract interface
type NotificationRepository interface {
	NotifyAdmin(subject, htmlContent string) error
}

type contactService struct {
	notificationRepo NotificationRepository
}

func NewContactService(notificationRepo NotificationRepository) *contactService {
	return &contactService{
		notificationRepo: notificationRepo,
	}
}

// Submit forwards a contact form message to the admins. Nothing is stored;
// the email is the record, so a delivery failure surfaces to the caller.
func (s *contactService) Submit(ctx context.Context, name, email, phone, message string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when submitting contact form")
		return fmt.Errorf("context error: %w", err)
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", name)
	body := fmt.Sprintf(
		"<h3>Contact Form</h3><p>Name: %s<br>Email: %s<br>Phone: %s</p><p>%s</p>",
		html.EscapeString(name), html.EscapeString(email),
		html.EscapeString(phone), html.EscapeString(message),
	)

	if err := s.notificationRepo.NotifyAdmin(subject, body); err != nil {
		logger.Error("Failed to send contact form email", err)
		return err
	}

	return nil
}
