package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moulberry/pandora-site/internal/config"
	"github.com/moulberry/pandora-site/internal/downloads"
	"github.com/moulberry/pandora-site/internal/logger"
	"github.com/moulberry/pandora-site/internal/release"
	"github.com/moulberry/pandora-site/internal/ui"
	"github.com/moulberry/pandora-site/internal/web"
)

// version is injected at build time via -ldflags
var version = "dev"

func main() {
	// Debug logging off by default; enable with --debug
	debugMode := false
	for _, arg := range os.Args {
		switch arg {
		case "--debug":
			debugMode = true
		case "--no-debug":
			debugMode = false
		}
	}

	command := "serve"
	if len(os.Args) > 1 && os.Args[1] != "" && os.Args[1][0] != '-' {
		command = os.Args[1]
	}

	switch command {
	case "version", "--version", "-v":
		fmt.Printf("Pandora Site v%s\n", version)
		os.Exit(0)
	case "help", "--help", "-h":
		showHelp()
		os.Exit(0)
	case "logs":
		if err := logger.Initialize(false); err != nil {
			log.Fatal("Failed to initialize logger:", err)
		}
		fmt.Printf("Log file location: %s\n", logger.GetLogPath())
		os.Exit(0)
	}

	if err := logger.Initialize(debugMode); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.GetLogger().Close()

	logger.Info("Starting Pandora Site v%s", version)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		log.Fatal("Failed to load configuration:", err)
	}

	client := release.NewClient(cfg.GitHub.Repo, cfg.GitHub.APIURL, cfg.GitHub.Timeout())
	fetcher := release.NewFetcher(client, cfg.GitHub.CacheTTL())

	switch command {
	case "serve":
		server := web.NewServer(cfg.Server.ListenAddr, web.NewHandler(cfg, fetcher))
		if err := server.Run(); err != nil {
			logger.Error("Server error: %v", err)
			log.Fatal("Server error:", err)
		}

	case "downloads":
		p := tea.NewProgram(ui.NewDownloads(fetcher))
		if _, err := p.Run(); err != nil {
			log.Fatal("Error running program:", err)
		}

	case "latest":
		printLatest(fetcher)

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		showHelp()
		os.Exit(1)
	}
}

// printLatest prints a summary of the latest release and its resolved
// download links
func printLatest(fetcher *release.Fetcher) {
	rel := fetcher.Latest()
	if rel == nil {
		fmt.Println("Latest release unavailable. Check the log for details.")
		os.Exit(1)
	}

	fmt.Printf("Latest release: %s (published %s)\n", rel.TagName, rel.PublishedAt)

	links := downloads.Classify(rel.Assets)
	for _, c := range downloads.Categories {
		state := links.Get(c)
		if state.IsAvailable() {
			fmt.Printf("  %-24s %s\n", c.String(), state.URL())
		} else {
			fmt.Printf("  %-24s (not available)\n", c.String())
		}
	}

	if newer, err := release.IsNewer(version, rel.TagName); err == nil && newer {
		fmt.Printf("\nThis site build (v%s) predates the launcher release.\n", version)
	}
}

func showHelp() {
	fmt.Printf(`Pandora Site v%s - Landing page and download resolver for the Pandora launcher

USAGE:
  pandorasite [serve]            Serve the landing page (default)
  pandorasite downloads          Browse the latest downloads in the terminal
  pandorasite latest             Print the latest release and its links
  pandorasite logs               Show debug log file location
  pandorasite version            Show version information
  pandorasite help               Show this help message

FLAGS:
  --debug                        Stream debug logs to the console

CONFIGURATION:
  Config: ~/.pandorasite/config.yaml
  Logs:   ~/.pandorasite/debug.log

The release feed defaults to github.com/Moulberry/PandoraLauncher; point
github.repo at a different repository to serve another project's page.
`, version)
}
