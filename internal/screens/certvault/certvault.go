package certvault

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/ui/layout"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

type certsLoadedMsg struct {
	Certs []cert.Certification
	Err   error
}

type filter int

const (
	filterAll filter = iota
	filterVerified
	filterPending
)

var filterLabels = []string{"All", "Verified", "Pending"}

// CertVaultScreen displays the candidate's earned certifications.
type CertVaultScreen struct {
	issuer       *cert.Issuer
	certs        []cert.Certification
	selected     filter
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*CertVaultScreen)(nil)
var _ screen.KeyHintProvider = (*CertVaultScreen)(nil)

// New creates a new CertVaultScreen.
func New(issuer *cert.Issuer) *CertVaultScreen {
	return &CertVaultScreen{
		issuer: issuer,
	}
}

func (s *CertVaultScreen) Init() tea.Cmd {
	return func() tea.Msg {
		certs, err := s.issuer.List(context.Background())
		return certsLoadedMsg{Certs: certs, Err: err}
	}
}

func (s *CertVaultScreen) Title() string {
	return "My Certifications"
}

func (s *CertVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CertVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case certsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.certs = msg.Certs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.selected = (s.selected + 1) % filter(len(filterLabels))
			s.scrollOffset = 0
			return s, nil
		case "shift+tab":
			s.selected = (s.selected - 1 + filter(len(filterLabels))) % filter(len(filterLabels))
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			filtered := s.filteredCerts()
			if s.scrollOffset < len(filtered)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *CertVaultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading certifications...")
	}

	var b strings.Builder

	// Total count.
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal: %d certifications\n", len(s.certs))))
	b.WriteString("\n")

	// Filter tabs.
	var tabs []string
	for i, label := range filterLabels {
		count := s.countByFilter(filter(i))
		text := fmt.Sprintf("%s (%d)", label, count)
		if filter(i) == s.selected {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(text))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(text))
		}
	}
	tabLine := strings.Join(tabs, "     ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 70)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filteredCerts()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No certifications here yet. Pass a test to earn one."))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		c := filtered[i]
		dateStr := c.IssuedAt.Format("Jan 02, 2006")

		status := "◌ pending"
		statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if c.Verified {
			status = "✓ verified"
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		} else if c.MetadataCID != "" {
			status = "◍ pinned"
			statusStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		}

		line := fmt.Sprintf("  %-28s score %3d  %s  %s",
			c.SkillName, c.Score, dateStr, statusStyle.Render(status))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")

		// Anchor details on the line below.
		if c.TokenID != "" || c.MetadataCID != "" {
			detail := "    "
			if c.MetadataCID != "" {
				detail += fmt.Sprintf("cid %s  ", truncate(c.MetadataCID, 20))
			}
			if c.TokenID != "" {
				detail += fmt.Sprintf("token #%s", c.TokenID)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *CertVaultScreen) filteredCerts() []cert.Certification {
	var filtered []cert.Certification
	for _, c := range s.certs {
		if s.matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (s *CertVaultScreen) matches(c cert.Certification) bool {
	switch s.selected {
	case filterVerified:
		return c.Verified
	case filterPending:
		return !c.Verified
	default:
		return true
	}
}

func (s *CertVaultScreen) countByFilter(f filter) int {
	count := 0
	for _, c := range s.certs {
		switch f {
		case filterVerified:
			if c.Verified {
				count++
			}
		case filterPending:
			if !c.Verified {
				count++
			}
		default:
			count++
		}
	}
	return count
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
