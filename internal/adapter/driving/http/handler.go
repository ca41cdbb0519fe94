// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/physics"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

const (
	healthPath = "/api/v1/health"

	defaultFeedWait      = 5 * time.Second
	defaultFrames        = 100
	maxMarkdownBodyBytes = 4 * maxMarkdownBytes
	maxMarkdownBytes     = 64 << 10
	maxContactBodyBytes  = 32 << 10
)

// MarkdownRenderer converts markdown source to sanitized HTML.
type MarkdownRenderer func(src string) string

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	feed     *application.FeedService
	contacts *application.ContactService
	markdown MarkdownRenderer
	feedWait time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	feed *application.FeedService,
	contacts *application.ContactService,
	markdown MarkdownRenderer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		feed:     feed,
		contacts: contacts,
		markdown: markdown,
		feedWait: defaultFeedWait,
		now:      time.Now,
		logger:   logger,
	}
}

// SetFeedWait overrides how long ListProjects waits for the repository fetch.
func (h *Handler) SetFeedWait(d time.Duration) {
	h.feedWait = d
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/projects", h.ListProjects)
	mux.HandleFunc("GET /api/v1/profile", h.GetProfile)
	mux.HandleFunc("GET /api/v1/simulations/{kind}", h.Simulate)
	mux.HandleFunc("POST /api/v1/markdown", h.RenderMarkdown)
	mux.HandleFunc("POST /api/v1/contact", h.SubmitContact)
	mux.HandleFunc("GET "+healthPath, h.Health)
}

// ListProjects returns the visible repositories for the q, language and
// sort query parameters, the language facets and the feed summary. When the
// fetch does not settle in time the response has loading set and no projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	session := h.feed.Open(r.Context())
	defer session.Close()
	session.SetQuery(model.NewFeedQuery(params.Get("q"), params.Get("language"), params.Get("sort")))

	waitCtx, cancel := context.WithTimeout(r.Context(), h.feedWait)
	defer cancel()
	if err := session.Wait(waitCtx); err != nil {
		h.logger.Debug("responding before repository fetch settled", "error", err)
	}

	writeJSON(w, http.StatusOK, NewProjectsResponse(session, h.now()))
}

// GetProfile returns the owner's GitHub profile, or 204 when it is unavailable.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile := h.feed.Profile(r.Context())
	if profile == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(*profile))
}

// Simulate returns precomputed frames for one physics simulation.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	params := r.URL.Query()

	frames, err := intParam(params.Get("frames"), defaultFrames)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid frames parameter")
		return
	}

	var out any
	switch kind {
	case physics.KindPendulum:
		angle, perr := floatParam(params.Get("angle"), 30)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid angle parameter")
			return
		}
		out, err = physics.Pendulum(angle, frames)
	case physics.KindWave:
		amplitude, perr := floatParam(params.Get("amplitude"), 20)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid amplitude parameter")
			return
		}
		frequency, perr := floatParam(params.Get("frequency"), 2)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid frequency parameter")
			return
		}
		out, err = physics.Wave(amplitude, frequency, frames)
	case physics.KindProjectile:
		velocity, perr := floatParam(params.Get("velocity"), 5)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid velocity parameter")
			return
		}
		out, err = physics.Projectile(velocity, frames)
	default:
		writeError(w, http.StatusNotFound, "unknown simulation: expected one of "+strings.Join(physics.Kinds(), ", "))
		return
	}

	if err != nil {
		if errors.Is(err, physics.ErrInvalidParameter) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("simulation failed", "kind", kind, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, SimulationResponse{Kind: kind, Frames: out})
}

// RenderMarkdown returns a sanitized HTML preview of a markdown document.
func (h *Handler) RenderMarkdown(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMarkdownBodyBytes)

	var req MarkdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Source) > maxMarkdownBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "document too large")
		return
	}

	writeJSON(w, http.StatusOK, MarkdownResponse{HTML: h.markdown(req.Source)})
}

// SubmitContact validates and stores a contact message.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.contacts.Submit(r.Context(), req.Name, req.Email, req.Message, r.RemoteAddr)
	if err != nil {
		if errors.Is(err, driven.ErrInvalidContact) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to store contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, ContactResponse{
		ID:        msg.ID,
		CreatedAt: formatTime(msg.CreatedAt),
	})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func floatParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", raw)
	}
	return v, nil
}
