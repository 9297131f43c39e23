package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GitHub.Repo != "Moulberry/PandoraLauncher" {
		t.Errorf("GitHub.Repo = %q", cfg.GitHub.Repo)
	}
	if cfg.GitHub.APIURL != "https://api.github.com" {
		t.Errorf("GitHub.APIURL = %q", cfg.GitHub.APIURL)
	}
	if cfg.GitHub.Timeout() != 30*time.Second {
		t.Errorf("GitHub.Timeout() = %v, want 30s", cfg.GitHub.Timeout())
	}
	if cfg.GitHub.CacheTTL() != 5*time.Minute {
		t.Errorf("GitHub.CacheTTL() = %v, want 5m", cfg.GitHub.CacheTTL())
	}
	if cfg.Server.ListenAddr != ":8480" {
		t.Errorf("Server.ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Site.Title != "Pandora" {
		t.Errorf("Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Site.Tagline == "" {
		t.Error("Site.Tagline should have a default")
	}
}

func TestLoadCreatesDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	configFile := filepath.Join(home, ".pandorasite", "config.yaml")
	if !fileExists(configFile) {
		t.Errorf("expected default config written to %s", configFile)
	}
}
