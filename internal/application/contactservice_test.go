package application_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

func TestContactService_Submit(t *testing.T) {
	store := &mockContactStore{}
	svc := application.NewContactService(store, nil)

	msg, err := svc.Submit(context.Background(), "  Ada  ", "ada@example.com", "Hello there", "10.0.0.1:1234")
	require.NoError(t, err)

	assert.Equal(t, int64(1), msg.ID)
	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)
	assert.Equal(t, "Hello there", msg.Message)
	assert.Equal(t, "10.0.0.1:1234", msg.RemoteAddr)
	require.Len(t, store.saved, 1)

	recent, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestContactService_Submit_LogsIDOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := application.NewContactService(&mockContactStore{}, logger)

	_, err := svc.Submit(context.Background(), "Ada", "ada@example.com", "Hello there", "10.0.0.1:1234")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "contact message received")
	assert.Contains(t, buf.String(), "id=1")
	assert.NotContains(t, buf.String(), "ada@example.com")
	assert.NotContains(t, buf.String(), "Hello there")
}

func TestContactService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      [3]string
		wantMsg string
	}{
		{"missing name", [3]string{"", "a@b.co", "hi"}, "name is required"},
		{"long name", [3]string{strings.Repeat("n", application.MaxContactNameLength+1), "a@b.co", "hi"}, "name must be at most"},
		{"missing email", [3]string{"Ada", " ", "hi"}, "email is required"},
		{"bad email", [3]string{"Ada", "not-an-email", "hi"}, "email address is not valid"},
		{"display name email", [3]string{"Ada", "Ada <ada@example.com>", "hi"}, "email address is not valid"},
		{"missing message", [3]string{"Ada", "a@b.co", "\n\t"}, "message is required"},
		{"long message", [3]string{"Ada", "a@b.co", strings.Repeat("m", application.MaxContactMessageLength+1)}, "message must be at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockContactStore{}
			svc := application.NewContactService(store, nil)

			_, err := svc.Submit(context.Background(), tt.in[0], tt.in[1], tt.in[2], "")
			require.Error(t, err)
			assert.ErrorIs(t, err, driven.ErrInvalidContact)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, store.saved)
		})
	}
}

func TestContactService_Submit_StoreError(t *testing.T) {
	store := &mockContactStore{saveErr: errors.New("disk full")}
	svc := application.NewContactService(store, nil)

	_, err := svc.Submit(context.Background(), "Ada", "ada@example.com", "hi", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, driven.ErrInvalidContact)
	assert.Contains(t, err.Error(), "disk full")
}
