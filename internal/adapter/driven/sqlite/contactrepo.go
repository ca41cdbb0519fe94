package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContactStore = (*ContactRepo)(nil)

const defaultContactListLimit = 50

// timestampLayout is fixed-width so created_at sorts chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ContactRepo is the SQLite implementation of the ContactStore port.
type ContactRepo struct {
	db  *DB
	now func() time.Time
}

// NewContactRepo creates a new ContactRepo backed by the given DB.
func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{db: db, now: time.Now}
}

// Save inserts msg and returns it with ID and CreatedAt assigned.
func (r *ContactRepo) Save(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	const query = `
		INSERT INTO contact_messages (name, email, message, remote_addr, created_at)
		VALUES (?, ?, ?, ?, ?)`

	createdAt := r.now().UTC()

	res, err := r.db.Writer.ExecContext(ctx, query,
		msg.Name, msg.Email, msg.Message, msg.RemoteAddr, createdAt.Format(timestampLayout),
	)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("read contact message id: %w", err)
	}

	msg.ID = id
	msg.CreatedAt = createdAt
	return msg, nil
}

// ListRecent returns up to limit messages, newest first. A non-positive
// limit uses the default of 50.
func (r *ContactRepo) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if limit <= 0 {
		limit = defaultContactListLimit
	}

	const query = `
		SELECT id, name, email, message, remote_addr, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.Reader.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	result := make([]model.ContactMessage, 0)
	for rows.Next() {
		var msg model.ContactMessage
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.RemoteAddr, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		msg.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for contact message %d: %w", msg.ID, err)
		}
		result = append(result, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return result, nil
}

// parseTime accepts the timestamp layouts SQLite and this package write.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised time format %q", s)
}
