package release

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// Client queries the GitHub API for release information
type Client struct {
	repo   string
	apiURL string
	http   *http.Client
}

// NewClient creates a release client for the given "owner/repo" slug
func NewClient(repo, apiURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		repo:   repo,
		apiURL: strings.TrimSuffix(apiURL, "/"),
		http:   &http.Client{Timeout: timeout},
	}
}

// FetchLatestRelease queries GitHub API for the latest release
func (c *Client) FetchLatestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.apiURL, c.repo)

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GitHub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("GitHub API error: HTTP %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to parse release data: %w", err)
	}

	if release.TagName == "" {
		return nil, fmt.Errorf("invalid release: missing tag name")
	}

	return &release, nil
}

// IsNewer compares two version strings and returns true if latest is
// newer than current
func IsNewer(current, latest string) (bool, error) {
	// Normalize versions (ensure "v" prefix for semver)
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	// Handle dev builds - anything released is newer
	if current == "vdev" {
		return true, nil
	}

	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid current version: %s", current)
	}
	if !semver.IsValid(latest) {
		return false, fmt.Errorf("invalid latest version: %s", latest)
	}

	// -1 means current < latest
	return semver.Compare(current, latest) < 0, nil
}
