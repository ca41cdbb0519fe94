package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

// Contact form limits, counted in characters.
const (
	MaxContactNameLength    = 200
	MaxContactMessageLength = 5000
)

// ContactService validates and stores contact form submissions.
type ContactService struct {
	store  driven.ContactStore
	logger *slog.Logger
}

// NewContactService creates a ContactService backed by store. A nil logger
// falls back to slog.Default().
func NewContactService(store driven.ContactStore, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{store: store, logger: logger}
}

// Submit validates the submission and persists it. Validation failures wrap
// driven.ErrInvalidContact.
func (s *ContactService) Submit(ctx context.Context, name, email, message, remoteAddr string) (model.ContactMessage, error) {
	msg, err := validateContact(name, email, message)
	if err != nil {
		return model.ContactMessage{}, err
	}
	msg.RemoteAddr = remoteAddr

	saved, err := s.store.Save(ctx, msg)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}

	s.logger.Info("contact message received", "id", saved.ID)

	return saved, nil
}

// Recent returns up to limit stored messages, newest first.
func (s *ContactService) Recent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	msgs, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

func validateContact(name, email, message string) (model.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return model.ContactMessage{}, fmt.Errorf("%w: name is required", driven.ErrInvalidContact)
	}
	if utf8.RuneCountInString(name) > MaxContactNameLength {
		return model.ContactMessage{}, fmt.Errorf("%w: name must be at most %d characters", driven.ErrInvalidContact, MaxContactNameLength)
	}

	if email == "" {
		return model.ContactMessage{}, fmt.Errorf("%w: email is required", driven.ErrInvalidContact)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return model.ContactMessage{}, fmt.Errorf("%w: email address is not valid", driven.ErrInvalidContact)
	}

	if message == "" {
		return model.ContactMessage{}, fmt.Errorf("%w: message is required", driven.ErrInvalidContact)
	}
	if utf8.RuneCountInString(message) > MaxContactMessageLength {
		return model.ContactMessage{}, fmt.Errorf("%w: message must be at most %d characters", driven.ErrInvalidContact, MaxContactMessageLength)
	}

	return model.ContactMessage{
		Name:    name,
		Email:   addr.Address,
		Message: message,
	}, nil
}
