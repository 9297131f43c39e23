package downloads

// LinkState is the download control state for one category: either a
// URL is available or the control renders disabled. Absence is normal,
// not an error.
type LinkState struct {
	url       string
	available bool
}

// Available creates a link state carrying a download URL
func Available(url string) LinkState {
	return LinkState{url: url, available: true}
}

// Unavailable is the state for a category with no published asset
func Unavailable() LinkState {
	return LinkState{}
}

// IsAvailable reports whether a download URL is present
func (s LinkState) IsAvailable() bool {
	return s.available
}

// URL returns the download URL, or "" when unavailable
func (s LinkState) URL() string {
	return s.url
}

// Links maps download categories to their resolved URLs. At most one
// URL survives per category.
type Links struct {
	byCategory map[Category]string
}

// Get returns the link state for a category. Missing categories come
// back Unavailable.
func (l Links) Get(c Category) LinkState {
	if url, ok := l.byCategory[c]; ok {
		return Available(url)
	}
	return Unavailable()
}

// Len returns how many categories resolved to a URL
func (l Links) Len() int {
	return len(l.byCategory)
}
