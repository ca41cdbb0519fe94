package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web routes on the provided mux.
// Pages are served at / and HTMX fragments at /app/*.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET "+projectsPath, h.Projects)
	mux.HandleFunc("POST /app/contact", h.Contact)
	mux.HandleFunc("POST /app/markdown", h.MarkdownPreview)
}
