package downloads

import (
	"strings"

	"github.com/moulberry/pandora-site/internal/logger"
	"github.com/moulberry/pandora-site/internal/release"
)

// rule pairs a name predicate with the category it selects
type rule struct {
	match    func(name string) bool
	category Category
}

func hasSuffix(suffix string) func(string) bool {
	return func(name string) bool { return strings.HasSuffix(name, suffix) }
}

func contains(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, sub) }
}

// rules are evaluated top to bottom, first match wins. Order matters:
// "-setup.exe" must be tested before ".exe", and the suffix rules before
// the looser substring rules. Matching is case-sensitive, mirroring the
// release pipeline's fixed naming.
var rules = []rule{
	{hasSuffix(".dmg"), MacInstaller},
	{hasSuffix(".AppImage"), LinuxAppImage},
	{hasSuffix(".deb"), LinuxDebianInstaller},
	{hasSuffix("-setup.exe"), WindowsInstaller},
	{hasSuffix(".exe"), WindowsPortable},
	{contains("-macOS"), MacPortable},
	{contains("-Linux"), LinuxPortable},
}

// categoryFor returns the category for an asset name, or false if the
// name matches no rule
func categoryFor(name string) (Category, bool) {
	for _, r := range rules {
		if r.match(name) {
			return r.category, true
		}
	}
	return 0, false
}

// Classify maps release assets onto download categories. Assets whose
// names match no rule are skipped; when two assets land in the same
// category the later one wins. A nil or empty asset list yields an
// empty map.
func Classify(assets []release.Asset) Links {
	links := Links{byCategory: make(map[Category]string)}
	for _, asset := range assets {
		category, ok := categoryFor(asset.Name)
		if !ok {
			logger.Info("Unknown download type for filename: %s", asset.Name)
			continue
		}
		links.byCategory[category] = asset.BrowserDownloadURL
	}
	return links
}
