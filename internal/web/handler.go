package web

import (
	"net/http"

	"github.com/moulberry/pandora-site/internal/config"
	"github.com/moulberry/pandora-site/internal/downloads"
	"github.com/moulberry/pandora-site/internal/logger"
	"github.com/moulberry/pandora-site/internal/platform"
	"github.com/moulberry/pandora-site/internal/release"
)

// Handler renders the landing page from the latest release manifest
type Handler struct {
	cfg     *config.Config
	fetcher *release.Fetcher
}

// NewHandler creates the landing page handler
func NewHandler(cfg *config.Config, fetcher *release.Fetcher) *Handler {
	return &Handler{cfg: cfg, fetcher: fetcher}
}

// Home renders the landing page. A missing release manifest renders the
// page with every download control disabled; it is never an error.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	rel := h.fetcher.Latest()
	var links downloads.Links
	version := ""
	if rel != nil {
		links = downloads.Classify(rel.Assets)
		version = rel.Version()
	}

	visitor := platform.FromUserAgent(r.UserAgent())
	logger.Debug("Rendering page for platform %s (%d links)", visitor, links.Len())

	data := buildPage(h.cfg.Site, version, links, visitor)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTemplate.Execute(w, data); err != nil {
		logger.Error("Template render failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Health answers liveness probes
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
