package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	apperrors "hubsite/internal/errors"
	"hubsite/internal/mail"
	"hubsite/internal/model"
	"hubsite/internal/repository"
)

// ContactRequest carries the contact form fields. Phone is optional.
type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService persists visitor messages and notifies the site owner.
type ContactService interface {
	Submit(ctx context.Context, req ContactRequest) (*model.ContactMessage, error)
}

type contactService struct {
	messages  repository.ContactRepository
	mailer    mail.Sink
	recipient string
}

// NewContactService creates a new contact service. recipient is the site
// owner address that receives notifications.
func NewContactService(messages repository.ContactRepository, mailer mail.Sink, recipient string) ContactService {
	return &contactService{messages: messages, mailer: mailer, recipient: recipient}
}

// Submit stores the message first, then attempts notification. A failed
// send is logged; the visitor still gets a success response.
func (s *contactService) Submit(ctx context.Context, req ContactRequest) (*model.ContactMessage, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.ErrMissingFields
	}

	message := &model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		message.Name, message.Email, message.Phone, message.Message)
	if err := s.mailer.Send(s.recipient, "New Contact Message", body); err != nil {
		log.Printf("contact message %d: notification failed: %v", message.ID, err)
	}

	return message, nil
}
