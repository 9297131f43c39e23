package release

import (
	"errors"
	"testing"
	"time"
)

// fakeSource is a scriptable Source for fetcher tests
type fakeSource struct {
	release *Release
	err     error
	calls   int
}

func (f *fakeSource) FetchLatestRelease() (*Release, error) {
	f.calls++
	return f.release, f.err
}

func TestFetcherLatest_Caches(t *testing.T) {
	source := &fakeSource{release: &Release{TagName: "v1.0.0"}}
	fetcher := NewFetcher(source, time.Hour)

	first := fetcher.Latest()
	second := fetcher.Latest()

	if first == nil || first.TagName != "v1.0.0" {
		t.Fatalf("Latest() = %v, want v1.0.0", first)
	}
	if second != first {
		t.Error("second Latest() should return the cached manifest")
	}
	if source.calls != 1 {
		t.Errorf("source called %d times, want 1", source.calls)
	}
}

func TestFetcherLatest_FailureIsAbsence(t *testing.T) {
	source := &fakeSource{err: errors.New("network down")}
	fetcher := NewFetcher(source, time.Hour)

	if got := fetcher.Latest(); got != nil {
		t.Errorf("Latest() = %v, want nil on fetch failure", got)
	}
}

func TestFetcherLatest_FailedRefreshIsAbsence(t *testing.T) {
	source := &fakeSource{release: &Release{TagName: "v1.0.0"}}
	fetcher := NewFetcher(source, 0) // every call refreshes

	if got := fetcher.Latest(); got == nil {
		t.Fatal("initial Latest() = nil, want manifest")
	}

	// The feed goes down; an expired manifest is not served stale
	source.release = nil
	source.err = errors.New("network down")

	if got := fetcher.Latest(); got != nil {
		t.Errorf("Latest() after failed refresh = %v, want nil", got)
	}

	// The feed recovers and links come back
	source.release = &Release{TagName: "v1.1.0"}
	source.err = nil

	if got := fetcher.Latest(); got == nil || got.TagName != "v1.1.0" {
		t.Errorf("Latest() after recovery = %v, want v1.1.0", got)
	}
}

func TestFetcherRefresh(t *testing.T) {
	source := &fakeSource{release: &Release{TagName: "v1.0.0"}}
	fetcher := NewFetcher(source, time.Hour)

	fetcher.Latest()
	source.release = &Release{TagName: "v1.1.0"}

	got := fetcher.Refresh()
	if got == nil || got.TagName != "v1.1.0" {
		t.Errorf("Refresh() = %v, want v1.1.0", got)
	}
	if source.calls != 2 {
		t.Errorf("source called %d times, want 2", source.calls)
	}
}
