package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/format"
	"github.com/ericfisherdev/folio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ProjectResponse is the JSON representation of a repository with its
// display-ready fields.
type ProjectResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	Homepage       string   `json:"homepage"`
	Owner          string   `json:"owner"`
	DefaultBranch  string   `json:"default_branch"`
	Stars          int      `json:"stars"`
	Forks          int      `json:"forks"`
	OpenIssues     int      `json:"open_issues"`
	Language       string   `json:"language"`
	Topics         []string `json:"topics"`
	UpdatedAt      string   `json:"updated_at"`
	CreatedAt      string   `json:"created_at"`
	StarsDisplay   string   `json:"stars_display"`
	UpdatedDisplay string   `json:"updated_display"`
	LanguageColor  string   `json:"language_color"`
	Activity       string   `json:"activity"`
}

// SummaryResponse is the JSON representation of the feed summary.
type SummaryResponse struct {
	Repositories int     `json:"repositories"`
	TotalStars   int     `json:"total_stars"`
	TotalForks   int     `json:"total_forks"`
	MedianStars  float64 `json:"median_stars"`
	TopLanguage  string  `json:"top_language"`
}

// QueryResponse echoes the normalised query that produced the project list.
type QueryResponse struct {
	Search   string `json:"q"`
	Language string `json:"language"`
	Sort     string `json:"sort"`
}

// ProjectsResponse is the body of GET /api/v1/projects.
type ProjectsResponse struct {
	Loading   bool              `json:"loading"`
	Query     QueryResponse     `json:"query"`
	Projects  []ProjectResponse `json:"projects"`
	Languages []string          `json:"languages"`
	Summary   SummaryResponse   `json:"summary"`
}

// ProfileResponse is the JSON representation of the owner's GitHub profile.
type ProfileResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	URL         string `json:"url"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	Company     string `json:"company"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

// SimulationResponse is the body of GET /api/v1/simulations/{kind}.
type SimulationResponse struct {
	Kind   string `json:"kind"`
	Frames any    `json:"frames"`
}

// MarkdownRequest is the body of POST /api/v1/markdown.
type MarkdownRequest struct {
	Source string `json:"source"`
}

// MarkdownResponse carries the sanitized HTML preview.
type MarkdownResponse struct {
	HTML string `json:"html"`
}

// ContactRequest is the body of POST /api/v1/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a stored contact message.
type ContactResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
}

// ContactMessageResponse is one stored contact message as listed by the
// contacts command.
type ContactMessageResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// NewContactMessagesResponse converts stored messages, keeping their order.
func NewContactMessagesResponse(msgs []model.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ContactMessageResponse{
			ID:         m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Message:    m.Message,
			RemoteAddr: m.RemoteAddr,
			CreatedAt:  formatTime(m.CreatedAt),
		})
	}
	return out
}

// HealthResponse is the response body for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func toProjectResponse(r model.Repository, now time.Time) ProjectResponse {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}

	return ProjectResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		URL:            r.URL,
		Homepage:       r.Homepage,
		Owner:          r.Owner,
		DefaultBranch:  r.DefaultBranch,
		Stars:          r.Stars,
		Forks:          r.Forks,
		OpenIssues:     r.OpenIssues,
		Language:       r.Language,
		Topics:         topics,
		UpdatedAt:      formatTime(r.UpdatedAt),
		CreatedAt:      formatTime(r.CreatedAt),
		StarsDisplay:   format.Stars(r.Stars),
		UpdatedDisplay: format.Date(r.UpdatedAt),
		LanguageColor:  format.LanguageColor(r.Language),
		Activity:       string(application.ClassifyActivity(now, r.UpdatedAt)),
	}
}

// NewProjectsResponse builds the projects body from a session's current state.
func NewProjectsResponse(session *application.FeedSession, now time.Time) ProjectsResponse {
	q := session.Query()
	visible := session.Visible()

	projects := make([]ProjectResponse, 0, len(visible))
	for _, r := range visible {
		projects = append(projects, toProjectResponse(r, now))
	}

	s := session.Summary()

	return ProjectsResponse{
		Loading: session.Loading(),
		Query: QueryResponse{
			Search:   q.Search,
			Language: q.Language,
			Sort:     string(q.Sort),
		},
		Projects:  projects,
		Languages: session.Facets(),
		Summary: SummaryResponse{
			Repositories: s.Repositories,
			TotalStars:   s.TotalStars,
			TotalForks:   s.TotalForks,
			MedianStars:  s.MedianStars,
			TopLanguage:  s.TopLanguage,
		},
	}
}

func toProfileResponse(p model.Profile) ProfileResponse {
	return ProfileResponse{
		Login:       p.Login,
		Name:        p.DisplayName(),
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		URL:         p.URL,
		Location:    p.Location,
		Blog:        p.Blog,
		Company:     p.Company,
		PublicRepos: p.PublicRepos,
		Followers:   p.Followers,
		Following:   p.Following,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

// formatTime renders t as RFC 3339 in UTC, or "" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
