// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Environment variable names read by Load.
const (
	EnvGitHubAccount = "FOLIO_GITHUB_ACCOUNT"
	EnvGitHubToken   = "FOLIO_GITHUB_TOKEN"
	EnvGitHubAPIURL  = "FOLIO_GITHUB_API_URL"
	EnvCacheTTL      = "FOLIO_CACHE_TTL"
	EnvListenAddr    = "FOLIO_LISTEN_ADDR"
	EnvDBPath        = "FOLIO_DB_PATH"
	EnvSiteTitle     = "FOLIO_SITE_TITLE"
)

const defaultDBPath = "folio.db"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubAccount string
	GitHubToken   string
	GitHubAPIURL  string
	CacheTTL      time.Duration
	ListenAddr    string
	DBPath        string
	SiteTitle     string
}

// HasGitHubToken reports whether requests to GitHub are authenticated.
// Unauthenticated requests share the low anonymous rate limit.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// FOLIO_GITHUB_ACCOUNT is required. FOLIO_GITHUB_TOKEN is optional.
// Optional variables with defaults: FOLIO_GITHUB_API_URL (https://api.github.com/),
// FOLIO_CACHE_TTL (1h, 0 disables caching), FOLIO_LISTEN_ADDR (127.0.0.1:8080),
// FOLIO_DB_PATH (folio.db), FOLIO_SITE_TITLE (Portfolio).
func Load() (*Config, error) {
	return LoadFor("")
}

// LoadFor is Load with the account taken from account when it is non-empty,
// so FOLIO_GITHUB_ACCOUNT may be unset.
func LoadFor(account string) (*Config, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		account = strings.TrimSpace(os.Getenv(EnvGitHubAccount))
	}
	if account == "" {
		return nil, fmt.Errorf("%s is required", EnvGitHubAccount)
	}

	cacheTTL := time.Hour
	if v, ok := os.LookupEnv(EnvCacheTTL); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s has invalid duration %q: %w", EnvCacheTTL, v, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %s", EnvCacheTTL, v)
		}
		cacheTTL = parsed
	}

	apiURL := "https://api.github.com/"
	if v, ok := os.LookupEnv(EnvGitHubAPIURL); ok && v != "" {
		apiURL = v
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	return &Config{
		GitHubAccount: account,
		GitHubToken:   os.Getenv(EnvGitHubToken),
		GitHubAPIURL:  apiURL,
		CacheTTL:      cacheTTL,
		ListenAddr:    envOr(EnvListenAddr, "127.0.0.1:8080"),
		DBPath:        DBPath(),
		SiteTitle:     envOr(EnvSiteTitle, "Portfolio"),
	}, nil
}

// DBPath returns FOLIO_DB_PATH, or folio.db when it is unset. Commands that
// only touch the contact inbox use it without loading the GitHub settings.
func DBPath() string {
	return envOr(EnvDBPath, defaultDBPath)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
