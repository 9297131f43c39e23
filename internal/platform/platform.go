// Package platform detects which operating system a visitor or the
// local machine is running, so the page and the TUI can surface the
// right download first.
package platform

import (
	"strings"

	"github.com/moulberry/pandora-site/internal/downloads"
)

// Platform is the visitor's detected operating system
type Platform int

const (
	Unknown Platform = iota
	Windows
	Linux
	MacOS
)

// String returns a human-readable name for the platform
func (p Platform) String() string {
	switch p {
	case Windows:
		return "Windows"
	case Linux:
		return "Linux"
	case MacOS:
		return "macOS"
	default:
		return "Unknown"
	}
}

// FromUserAgent maps a browser user-agent string to a platform. This is
// a best-effort heuristic evaluated in order: "Mac" beats "Win" beats
// "Linux". An empty or unrecognized string is Unknown, never an error.
func FromUserAgent(ua string) Platform {
	switch {
	case strings.Contains(ua, "Mac"):
		return MacOS
	case strings.Contains(ua, "Win"):
		return Windows
	case strings.Contains(ua, "Linux"):
		return Linux
	default:
		return Unknown
	}
}

// PrimaryCategory returns the download category to highlight as the
// primary call-to-action for a platform. Linux visitors get no single
// pick (three equally valid formats), so ok is false there and for
// Unknown.
func PrimaryCategory(p Platform) (downloads.Category, bool) {
	switch p {
	case Windows:
		return downloads.WindowsInstaller, true
	case MacOS:
		return downloads.MacInstaller, true
	default:
		return 0, false
	}
}
