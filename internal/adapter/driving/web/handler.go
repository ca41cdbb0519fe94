// Package web implements the HTML driving adapter using templ components.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/folio/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/folio/internal/adapter/driving/web/templates/components"
	"github.com/ericfisherdev/folio/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/folio/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

// defaultFeedWait is how long a page render waits for the repository fetch
// before rendering the loading state instead.
const defaultFeedWait = 5 * time.Second

const contactFailedMessage = "Sorry, there was an error sending your message. Please try again later."

// Handler is the web driving adapter that serves HTML via templ components.
type Handler struct {
	feed        *application.FeedService
	contacts    *application.ContactService
	siteTitle   string
	aboutHTML   string
	sandboxHTML string
	feedWait    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewHandler creates a Handler. aboutMarkdown and the sandbox seed document
// are rendered once at startup.
func NewHandler(
	feed *application.FeedService,
	contacts *application.ContactService,
	siteTitle string,
	aboutMarkdown string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		feed:        feed,
		contacts:    contacts,
		siteTitle:   siteTitle,
		aboutHTML:   RenderMarkdown(aboutMarkdown),
		sandboxHTML: RenderMarkdown(sandboxMarkdown),
		feedWait:    defaultFeedWait,
		now:         time.Now,
		logger:      logger,
	}
}

// SetFeedWait overrides how long renders wait for the repository fetch.
func (h *Handler) SetFeedWait(d time.Duration) {
	h.feedWait = d
}

// Home renders the full page. The profile and the repository feed load
// concurrently; both are fail-open.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	token := csrfToken(w, r)

	session := h.feed.Open(r.Context())
	defer session.Close()
	session.SetQuery(queryFromRequest(r))

	var profile *model.Profile
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		profile = h.feed.Profile(gctx)
		return nil
	})
	g.Go(func() error {
		h.waitForFeed(gctx, session)
		return nil
	})
	_ = g.Wait()

	now := h.now()
	page := vm.PageViewModel{
		Title:       h.siteTitle,
		Account:     h.feed.Account(),
		GitHubURL:   "https://github.com/" + url.PathEscape(h.feed.Account()),
		Profile:     toProfileViewModel(profile),
		Projects:    toProjectGridViewModel(session, now),
		Summary:     toSummaryViewModel(session.Summary()),
		AboutHTML:   h.aboutHTML,
		SandboxSrc:  sandboxMarkdown,
		SandboxHTML: h.sandboxHTML,
		Physics:     toPhysicsViewModel(),
		Contact:     vm.ContactViewModel{CSRFToken: token},
	}

	h.render(w, r, templates.Layout(h.siteTitle, pages.Home(page)), "home page")
}

// Projects renders the project grid fragment for the current query.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	session := h.feed.Open(r.Context())
	defer session.Close()
	session.SetQuery(queryFromRequest(r))

	h.waitForFeed(r.Context(), session)

	h.render(w, r, components.ProjectGrid(toProjectGridViewModel(session, h.now())), "project grid")
}

// Contact handles a contact form submission and re-renders the form with the outcome.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	form := vm.ContactViewModel{
		CSRFToken: csrfToken(w, r),
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Message:   r.FormValue("message"),
	}

	_, err := h.contacts.Submit(r.Context(), form.Name, form.Email, form.Message, r.RemoteAddr)
	switch {
	case err == nil:
		form = vm.ContactViewModel{
			CSRFToken: form.CSRFToken,
			Success:   "Thank you for your message! I'll get back to you soon.",
		}
	case errors.Is(err, driven.ErrInvalidContact):
		form.Error = validationMessage(err)
	default:
		h.logger.Error("failed to store contact message", "error", err)
		form.Error = contactFailedMessage
	}

	h.render(w, r, components.ContactForm(form), "contact form")
}

// MarkdownPreview renders the mathematics sandbox preview fragment.
func (h *Handler) MarkdownPreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 4*MaxMarkdownBytes)
	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "document too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if !validateCSRF(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	source := r.PostFormValue("source")
	if len(source) > MaxMarkdownBytes {
		http.Error(w, "document too large", http.StatusRequestEntityTooLarge)
		return
	}

	h.render(w, r, components.MarkdownPreview(RenderMarkdown(source)), "markdown preview")
}

func (h *Handler) waitForFeed(ctx context.Context, session *application.FeedSession) {
	waitCtx, cancel := context.WithTimeout(ctx, h.feedWait)
	defer cancel()

	if err := session.Wait(waitCtx); err != nil {
		h.logger.Debug("rendering before repository fetch settled", "error", err)
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component, what string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render "+what, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func queryFromRequest(r *http.Request) model.FeedQuery {
	q := r.URL.Query()
	return model.NewFeedQuery(q.Get("q"), q.Get("language"), q.Get("sort"))
}

// validationMessage strips the sentinel prefix so users see only the reason.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), driven.ErrInvalidContact.Error()+": ")
}
