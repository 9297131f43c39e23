package downloads

import "testing"

func TestLinkState(t *testing.T) {
	avail := Available("https://example.com/app.dmg")
	if !avail.IsAvailable() {
		t.Error("Available state should report available")
	}
	if avail.URL() != "https://example.com/app.dmg" {
		t.Errorf("URL() = %q, want the constructed URL", avail.URL())
	}

	missing := Unavailable()
	if missing.IsAvailable() {
		t.Error("Unavailable state should not report available")
	}
	if missing.URL() != "" {
		t.Errorf("Unavailable URL() = %q, want empty", missing.URL())
	}
}

func TestLinksGet_MissingCategory(t *testing.T) {
	var links Links

	// Zero-value Links behaves as all-unavailable, never panics
	for _, c := range Categories {
		if state := links.Get(c); state.IsAvailable() {
			t.Errorf("zero Links Get(%v) available, want unavailable", c)
		}
	}
	if links.Len() != 0 {
		t.Errorf("zero Links Len() = %d, want 0", links.Len())
	}
}
