package release

import (
	"sync"
	"time"

	"github.com/moulberry/pandora-site/internal/logger"
)

// Source is anything that can produce the latest release
type Source interface {
	FetchLatestRelease() (*Release, error)
}

// Fetcher wraps a Source with a never-fails contract: Latest returns nil
// when no manifest is available, and the page renders without links.
// Successful fetches are cached for a TTL so page loads don't hammer the
// GitHub API.
type Fetcher struct {
	source Source
	ttl    time.Duration

	mu        sync.Mutex
	cached    *Release
	fetchedAt time.Time
}

// NewFetcher creates a caching fetcher around the given source
func NewFetcher(source Source, ttl time.Duration) *Fetcher {
	return &Fetcher{source: source, ttl: ttl}
}

// Latest returns the most recent release manifest, or nil if none is
// available. It never returns an error: fetch failures are logged and
// surface as absence.
func (f *Fetcher) Latest() *Release {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached != nil && time.Since(f.fetchedAt) < f.ttl {
		return f.cached
	}

	rel, err := f.source.FetchLatestRelease()
	if err != nil {
		logger.Warn("Release fetch failed: %v", err)
		// Fetch failure is absence: the page renders with no links
		// until a refetch succeeds
		f.cached = nil
		return nil
	}

	f.cached = rel
	f.fetchedAt = time.Now()
	logger.Info("Fetched latest release %s (%d assets)", rel.TagName, len(rel.Assets))
	return f.cached
}

// Refresh drops the cached manifest and fetches a fresh one
func (f *Fetcher) Refresh() *Release {
	f.mu.Lock()
	f.cached = nil
	f.fetchedAt = time.Time{}
	f.mu.Unlock()
	return f.Latest()
}
