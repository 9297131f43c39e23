package web

import (
	"embed"
	"html/template"

	"github.com/moulberry/pandora-site/internal/config"
	"github.com/moulberry/pandora-site/internal/downloads"
	"github.com/moulberry/pandora-site/internal/platform"
)

//go:embed templates/home.gohtml
var templateFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFS, "templates/home.gohtml"))

// DownloadEntry is one labeled link control on the page
type DownloadEntry struct {
	Label     string
	URL       string
	Available bool
}

// DownloadSection groups the entries for one operating system
type DownloadSection struct {
	Heading string
	Entries []DownloadEntry
}

// Feature is one feature tile on the page
type Feature struct {
	Title string
	Text  string
}

// PageData is everything the landing page template needs
type PageData struct {
	Title    string
	Tagline  string
	Version  string
	Primary  *DownloadEntry
	Features []Feature
	Sections []DownloadSection
}

// features is the launcher pitch shown on the page
var features = []Feature{
	{"Instance Management", "Easily manage instances and mods. Pandora's unique approach to modpacks makes them simple to manage and update"},
	{"File Syncing", "Automatically sync files and folders across instances: options.txt, servers.dat, saves, mod configs, and more"},
	{"Content Browser", "Install mods, modpacks, and more directly through the launcher from Modrinth (CurseForge support coming soon)"},
	{"Content Deduplication", "When installed through the launcher, Pandora will automatically deduplicate installed mods/resourcepacks/etc. using hard links to save space"},
	{"Game Output", "Pandora has a super responsive game output log with no size limit. Supports searching and uploading to mclo.gs"},
	{"Secure", "Stores account credentials using platform keyrings, automatically redacts sensitive information from logs and avoids automatic updates for manually installed mods"},
}

// sectionLayout fixes which categories appear under which OS heading
var sectionLayout = []struct {
	heading    string
	categories []downloads.Category
}{
	{"Windows x64", []downloads.Category{downloads.WindowsInstaller, downloads.WindowsPortable}},
	{"Linux x64", []downloads.Category{downloads.LinuxDebianInstaller, downloads.LinuxAppImage, downloads.LinuxPortable}},
	{"macOS", []downloads.Category{downloads.MacInstaller, downloads.MacPortable}},
}

func entryFor(links downloads.Links, c downloads.Category, label string) DownloadEntry {
	state := links.Get(c)
	return DownloadEntry{Label: label, URL: state.URL(), Available: state.IsAvailable()}
}

// buildPage assembles the template data. It only performs map lookups
// by fixed category key; classification happened upstream.
func buildPage(site config.SiteConfig, version string, links downloads.Links, visitor platform.Platform) PageData {
	data := PageData{
		Title:    site.Title,
		Tagline:  site.Tagline,
		Version:  version,
		Features: features,
	}

	if primary, ok := platform.PrimaryCategory(visitor); ok {
		label := "Download Windows Installer (.exe)"
		if primary == downloads.MacInstaller {
			label = "Download macOS Installer (.dmg)"
		}
		entry := entryFor(links, primary, label)
		data.Primary = &entry
	}

	for _, layout := range sectionLayout {
		section := DownloadSection{Heading: layout.heading}
		for _, c := range layout.categories {
			section.Entries = append(section.Entries, entryFor(links, c, c.Label()))
		}
		data.Sections = append(data.Sections, section)
	}

	return data
}
