package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteadapter "github.com/ericfisherdev/folio/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/folio/internal/adapter/driving/http"
	"github.com/ericfisherdev/folio/internal/application"
)

func seedInbox(t *testing.T, dbPath string, names ...string) {
	t.Helper()
	ctx := context.Background()

	db, err := sqliteadapter.NewDB(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, sqliteadapter.RunMigrations(db.Writer))

	svc := application.NewContactService(sqliteadapter.NewContactRepo(db), nil)
	for _, name := range names {
		_, err := svc.Submit(ctx, name, "someone@example.com", "Hello from "+name, "10.0.0.1:1234")
		require.NoError(t, err)
	}
}

func runContacts(t *testing.T, args ...string) []httphandler.ContactMessageResponse {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"contacts"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var resp []httphandler.ContactMessageResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	return resp
}

func TestContactsCommand_NewestFirst(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "inbox.db")
	seedInbox(t, dbPath, "Ada", "Grace", "Linus")

	resp := runContacts(t, "--db", dbPath, "--limit", "2")

	require.Len(t, resp, 2)
	assert.Equal(t, "Linus", resp[0].Name)
	assert.Equal(t, "Grace", resp[1].Name)
	assert.Equal(t, "someone@example.com", resp[0].Email)
	assert.Equal(t, "Hello from Linus", resp[0].Message)
	assert.NotEmpty(t, resp[0].CreatedAt)
}

func TestContactsCommand_EmptyInbox(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")

	resp := runContacts(t, "--db", dbPath)

	assert.Empty(t, resp)
}
