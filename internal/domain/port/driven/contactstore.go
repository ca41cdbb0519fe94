package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// ErrInvalidContact indicates a contact submission failed validation.
var ErrInvalidContact = errors.New("invalid contact message")

// ContactStore defines the driven port for contact form persistence.
// Save returns the stored message with ID and CreatedAt assigned.
type ContactStore interface {
	Save(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error)
}
