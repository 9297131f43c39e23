package downloads

import (
	"reflect"
	"testing"

	"github.com/moulberry/pandora-site/internal/release"
)

func asset(name, url string) release.Asset {
	return release.Asset{Name: name, BrowserDownloadURL: url}
}

func TestClassify_FullManifest(t *testing.T) {
	assets := []release.Asset{
		asset("App-1.0.0-setup.exe", "u1"),
		asset("App-1.0.0.AppImage", "u2"),
		asset("App-1.0.0.dmg", "u3"),
		asset("App-1.0.0.deb", "u4"),
		asset("App-1.0.0-Linux", "u5"),
		asset("App-1.0.0-macOS", "u6"),
		asset("random.txt", "u7"),
	}

	links := Classify(assets)

	want := map[Category]string{
		WindowsInstaller:     "u1",
		LinuxAppImage:        "u2",
		MacInstaller:         "u3",
		LinuxDebianInstaller: "u4",
		LinuxPortable:        "u5",
		MacPortable:          "u6",
	}

	for category, url := range want {
		state := links.Get(category)
		if !state.IsAvailable() {
			t.Errorf("Get(%v) unavailable, want %s", category, url)
			continue
		}
		if state.URL() != url {
			t.Errorf("Get(%v) = %s, want %s", category, state.URL(), url)
		}
	}

	// random.txt contributed nothing and WindowsPortable has no asset
	if state := links.Get(WindowsPortable); state.IsAvailable() {
		t.Errorf("Get(WindowsPortable) = %s, want unavailable", state.URL())
	}
	if links.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", links.Len(), len(want))
	}
}

func TestClassify_RulePriority(t *testing.T) {
	// "-setup.exe" must win over the looser ".exe" rule
	links := Classify([]release.Asset{asset("App-setup.exe", "u1")})

	if state := links.Get(WindowsInstaller); !state.IsAvailable() || state.URL() != "u1" {
		t.Errorf("Get(WindowsInstaller) = %v, want u1", state)
	}
	if state := links.Get(WindowsPortable); state.IsAvailable() {
		t.Errorf("App-setup.exe classified as WindowsPortable")
	}
}

func TestClassify_DuplicateCategoryLastWins(t *testing.T) {
	links := Classify([]release.Asset{
		asset("App-1.0.0.dmg", "a"),
		asset("App-1.0.1.dmg", "b"),
	})

	if got := links.Get(MacInstaller).URL(); got != "b" {
		t.Errorf("Get(MacInstaller) = %s, want b (last write wins)", got)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	if got := Classify(nil).Len(); got != 0 {
		t.Errorf("Classify(nil).Len() = %d, want 0", got)
	}
	if got := Classify([]release.Asset{}).Len(); got != 0 {
		t.Errorf("Classify([]).Len() = %d, want 0", got)
	}
}

func TestClassify_CaseSensitive(t *testing.T) {
	// The producer's naming is fixed; matching does not fold case
	tests := []struct {
		name string
	}{
		{"App-1.0.0.DMG"},
		{"App-1.0.0.appimage"},
		{"App-1.0.0-linux"},
		{"App-1.0.0-MACOS"},
	}

	for _, tt := range tests {
		links := Classify([]release.Asset{asset(tt.name, "u")})
		if links.Len() != 0 {
			t.Errorf("Classify(%q) matched a category, want unclassified", tt.name)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	assets := []release.Asset{
		asset("App-1.0.0-setup.exe", "u1"),
		asset("App-1.0.0.dmg", "u2"),
		asset("unknown.bin", "u3"),
	}

	first := Classify(assets)
	second := Classify(assets)

	if !reflect.DeepEqual(first.byCategory, second.byCategory) {
		t.Errorf("Classify not idempotent: %v vs %v", first.byCategory, second.byCategory)
	}
}

func TestClassify_KeysWithinCategorySet(t *testing.T) {
	// Arbitrary names never panic and never invent categories
	assets := []release.Asset{
		asset("", "u1"),
		asset("...", "u2"),
		asset("App.exe.backup", "u3"),
		asset("App-1.0.0.tar.gz", "u4"),
		asset("checksums.sha256", "u5"),
	}

	links := Classify(assets)
	for category := range links.byCategory {
		found := false
		for _, c := range Categories {
			if c == category {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Classify produced unknown category %d", category)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{WindowsInstaller, "Windows Installer"},
		{WindowsPortable, "Windows Portable"},
		{LinuxDebianInstaller, "Linux Debian Installer"},
		{LinuxAppImage, "Linux AppImage"},
		{LinuxPortable, "Linux Portable"},
		{MacInstaller, "macOS Installer"},
		{MacPortable, "macOS Portable"},
		{Category(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
