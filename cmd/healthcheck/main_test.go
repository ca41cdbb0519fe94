package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "127.0.0.1:8080"},
		{"garbage", "127.0.0.1:8080"},
		{"0.0.0.0:9090", "127.0.0.1:9090"},
		{":7000", "127.0.0.1:7000"},
		{"[::]:7000", "127.0.0.1:7000"},
		{"10.1.2.3:8080", "10.1.2.3:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAddr(tt.raw))
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   int
	}{
		{"healthy", http.StatusOK, `{"status":"ok","time":"2024-06-01T00:00:00Z"}`, 0},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, 1},
		{"unexpected body", http.StatusOK, `<html>`, 1},
		{"not ok", http.StatusOK, `{"status":"degraded"}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, healthPath, r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			addr := strings.TrimPrefix(server.URL, "http://")
			assert.Equal(t, tt.want, check(addr))
		})
	}
}

func TestCheck_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	assert.Equal(t, 1, check(addr))
}
