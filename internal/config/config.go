package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// General settings
	LogLevel string `mapstructure:"log_level"`

	// Release feed settings
	GitHub GitHubConfig `mapstructure:"github"`

	// HTTP server settings
	Server ServerConfig `mapstructure:"server"`

	// Page content settings
	Site SiteConfig `mapstructure:"site"`
}

// GitHubConfig holds release feed configuration
type GitHubConfig struct {
	Repo            string `mapstructure:"repo"`
	APIURL          string `mapstructure:"api_url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// SiteConfig holds page branding configuration
type SiteConfig struct {
	Title   string `mapstructure:"title"`
	Tagline string `mapstructure:"tagline"`
}

// Timeout returns the release feed request timeout
func (g GitHubConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long a fetched release manifest stays fresh
func (g GitHubConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	// Prefer ~/.pandorasite, but gracefully fall back if not writable (sandboxed)
	primaryDir := ""
	if homeDir != "" {
		primaryDir = filepath.Join(homeDir, ".pandorasite")
	}
	fallbackDir := ".pandorasite" // current working directory

	configDir := primaryDir
	if configDir == "" || os.MkdirAll(configDir, 0755) != nil {
		_ = os.MkdirAll(fallbackDir, 0755)
		configDir = fallbackDir
	}
	configFile := filepath.Join(configDir, "config.yaml")

	// Set up Viper
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")
	viper.SetConfigFile(configFile)

	setDefaults()

	// Enable environment variables
	viper.SetEnvPrefix("PANDORASITE")
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// If config file doesn't exist, create it with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			_ = createDefaultConfig(configFile) // Best-effort; continue on failure
			_ = viper.ReadInConfig()
		}
		// Any other error: proceed with defaults rather than failing hard
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("log_level", "info")

	// Release feed defaults
	viper.SetDefault("github.repo", "Moulberry/PandoraLauncher")
	viper.SetDefault("github.api_url", "https://api.github.com")
	viper.SetDefault("github.timeout_seconds", 30)
	viper.SetDefault("github.cache_ttl_seconds", 300)

	// Server defaults
	viper.SetDefault("server.listen_addr", ":8480")

	// Site defaults
	viper.SetDefault("site.title", "Pandora")
	viper.SetDefault("site.tagline", "Pandora is a modern Minecraft launcher that balances ease-of-use with powerful instance management features")
}

// createDefaultConfig creates a default configuration file
func createDefaultConfig(configFile string) error {
	defaultConfig := `# Pandora Site Configuration

# General Settings
log_level: info

# Release Feed Settings
github:
  repo: Moulberry/PandoraLauncher
  api_url: https://api.github.com
  timeout_seconds: 30
  cache_ttl_seconds: 300

# Server Settings
server:
  listen_addr: ":8480"

# Site Settings
site:
  title: Pandora
  tagline: Pandora is a modern Minecraft launcher that balances ease-of-use with powerful instance management features
`

	return os.WriteFile(configFile, []byte(defaultConfig), 0644)
}

// Save saves the current configuration to file
func (c *Config) Save() error {
	return viper.WriteConfig()
}
