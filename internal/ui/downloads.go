package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moulberry/pandora-site/internal/downloads"
	"github.com/moulberry/pandora-site/internal/logger"
	"github.com/moulberry/pandora-site/internal/platform"
	"github.com/moulberry/pandora-site/internal/release"
)

// row is one selectable download entry in the list
type row struct {
	category downloads.Category
	section  string
	state    downloads.LinkState
}

// Model is the interactive downloads view
type Model struct {
	fetcher *release.Fetcher
	local   platform.LocalInfo
	styles  *Styles

	release *release.Release
	rows    []row
	cursor  int
	loading bool
	status  string
}

// releaseMsg delivers a fetch result to the model
type releaseMsg struct {
	release *release.Release
}

// sections mirrors the landing page's grouping
var sections = []struct {
	heading    string
	categories []downloads.Category
}{
	{"Windows x64", []downloads.Category{downloads.WindowsInstaller, downloads.WindowsPortable}},
	{"Linux x64", []downloads.Category{downloads.LinuxDebianInstaller, downloads.LinuxAppImage, downloads.LinuxPortable}},
	{"macOS", []downloads.Category{downloads.MacInstaller, downloads.MacPortable}},
}

// NewDownloads creates the downloads view
func NewDownloads(fetcher *release.Fetcher) *Model {
	return &Model{
		fetcher: fetcher,
		local:   platform.DetectLocal(context.Background()),
		styles:  NewStyles(),
		loading: true,
	}
}

// Init kicks off the initial fetch
func (m *Model) Init() tea.Cmd {
	return m.fetchCmd(false)
}

func (m *Model) fetchCmd(refresh bool) tea.Cmd {
	return func() tea.Msg {
		if refresh {
			return releaseMsg{release: m.fetcher.Refresh()}
		}
		return releaseMsg{release: m.fetcher.Latest()}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case releaseMsg:
		m.loading = false
		m.release = msg.release
		m.rebuildRows()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.rows) {
				return m, m.openSelected(m.rows[m.cursor])
			}
		case "r":
			m.loading = true
			m.status = ""
			return m, m.fetchCmd(true)
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// rebuildRows flattens the sections into a selectable list and moves the
// cursor to the local platform's primary pick
func (m *Model) rebuildRows() {
	var links downloads.Links
	if m.release != nil {
		links = downloads.Classify(m.release.Assets)
	}

	m.rows = m.rows[:0]
	for _, s := range sections {
		for _, c := range s.categories {
			m.rows = append(m.rows, row{category: c, section: s.heading, state: links.Get(c)})
		}
	}

	if primary, ok := platform.PrimaryCategory(m.local.Platform); ok {
		for i, r := range m.rows {
			if r.category == primary {
				m.cursor = i
				break
			}
		}
	}
}

func (m *Model) openSelected(r row) tea.Cmd {
	if !r.state.IsAvailable() {
		m.status = m.styles.Warning().Render(fmt.Sprintf("No %s download in the latest release", r.category))
		return nil
	}
	url := r.state.URL()
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		if err := cmd.Start(); err != nil {
			logger.Error("Failed to open browser: %v", err)
		}
		return nil
	}
}

// View renders the downloads list
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title().Render("Pandora Downloads"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted().Render(fmt.Sprintf("Detected: %s", m.local.Description)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted().Render("Fetching latest release..."))
		b.WriteString("\n")
	case m.release == nil:
		b.WriteString(m.styles.Warning().Render("Latest release unavailable; check the log for details"))
		b.WriteString("\n")
	default:
		b.WriteString(fmt.Sprintf("Latest release: v%s  (%s)\n", m.release.Version(), m.release.PublishedAt))
	}
	b.WriteString("\n")

	if len(m.rows) > 0 {
		i := 0
		for _, s := range sections {
			b.WriteString(m.styles.Heading().Render(s.heading))
			b.WriteString("\n")
			for range s.categories {
				r := m.rows[i]
				line := fmt.Sprintf("  %s", r.category.Label())
				if !r.state.IsAvailable() {
					line += "  (not available)"
				}
				if i == m.cursor {
					line = m.styles.Selected().Render("›" + line[1:])
				} else if !r.state.IsAvailable() {
					line = m.styles.Muted().Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
				i++
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted().Render("↑/↓ navigate • enter open • r refresh • q quit"))
	b.WriteString("\n")
	return b.String()
}
