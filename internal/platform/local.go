package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// LocalInfo describes the machine the CLI is running on
type LocalInfo struct {
	Platform    Platform
	Description string // e.g. "macOS 14.2 (arm64)"
}

// DetectLocal identifies the local machine's platform for the downloads
// TUI. It starts from runtime.GOOS and enriches the description with
// gopsutil host details; if host detection fails the GOOS-derived
// platform is still returned, never an error.
func DetectLocal(ctx context.Context) LocalInfo {
	info := LocalInfo{Platform: fromGOOS(runtime.GOOS)}
	info.Description = fmt.Sprintf("%s (%s)", info.Platform, runtime.GOARCH)

	hi, err := host.InfoWithContext(ctx)
	if err != nil || hi == nil {
		return info
	}

	name := info.Platform.String()
	if info.Platform == Linux && hi.Platform != "" {
		name = hi.Platform // distro ID reads better than "Linux"
	}
	if hi.PlatformVersion != "" {
		info.Description = fmt.Sprintf("%s %s (%s)", name, hi.PlatformVersion, runtime.GOARCH)
	} else {
		info.Description = fmt.Sprintf("%s (%s)", name, runtime.GOARCH)
	}
	return info
}

func fromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}
