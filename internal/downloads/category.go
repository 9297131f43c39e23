// Package downloads classifies release assets into download categories.
//
// The Pandora release pipeline publishes a fixed set of artifacts per
// release (Windows installer and portable exe, Debian package, AppImage,
// Linux portable, macOS dmg and portable). This package maps asset file
// names onto those categories so the landing page can offer the right
// link for each platform. It is not a general asset taxonomy: it knows
// exactly one producer's naming convention.
package downloads

// Category identifies one of the download slots offered on the page
type Category int

const (
	WindowsInstaller Category = iota
	WindowsPortable
	LinuxDebianInstaller
	LinuxAppImage
	LinuxPortable
	MacInstaller
	MacPortable
)

// Categories lists every category in display order
var Categories = []Category{
	WindowsInstaller,
	WindowsPortable,
	LinuxDebianInstaller,
	LinuxAppImage,
	LinuxPortable,
	MacInstaller,
	MacPortable,
}

// String returns a human-readable name for the category
func (c Category) String() string {
	switch c {
	case WindowsInstaller:
		return "Windows Installer"
	case WindowsPortable:
		return "Windows Portable"
	case LinuxDebianInstaller:
		return "Linux Debian Installer"
	case LinuxAppImage:
		return "Linux AppImage"
	case LinuxPortable:
		return "Linux Portable"
	case MacInstaller:
		return "macOS Installer"
	case MacPortable:
		return "macOS Portable"
	default:
		return "Unknown"
	}
}

// Label returns the text shown on the page's download control
func (c Category) Label() string {
	switch c {
	case WindowsInstaller:
		return "Installer .exe"
	case WindowsPortable:
		return "Portable Executable .exe"
	case LinuxDebianInstaller:
		return "Debian Installer .deb"
	case LinuxAppImage:
		return "AppImage .AppImage"
	case LinuxPortable:
		return "Portable Executable"
	case MacInstaller:
		return "Installer .dmg"
	case MacPortable:
		return "Portable Executable"
	default:
		return "Unknown"
	}
}
