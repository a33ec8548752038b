package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/grading"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/ui/components"
	"github.com/fairpersona/skillcert/internal/ui/layout"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

type issueDoneMsg struct {
	Cert *cert.Certification
	Err  error
}

// ResultsScreen displays the graded outcome of an attempt and lets a
// passing candidate claim the certification badge.
type ResultsScreen struct {
	attempt *attempt.Attempt
	result  *grading.Result
	skill   skills.Skill
	issuer  *cert.Issuer
	ident   identity.Identity

	scrollOffset int
	claiming     bool
	claimed      *cert.Certification
	claimErr     string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(a *attempt.Attempt, result *grading.Result, skill skills.Skill, issuer *cert.Issuer, ident identity.Identity) *ResultsScreen {
	return &ResultsScreen{
		attempt: a,
		result:  result,
		skill:   skill,
		issuer:  issuer,
		ident:   ident,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Test Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Done"},
	}
	if s.canClaim() {
		hints = append([]layout.KeyHint{{Key: "C", Description: "Claim badge"}}, hints...)
	}
	return hints
}

func (s *ResultsScreen) canClaim() bool {
	return s.result.Passed && s.issuer != nil && s.claimed == nil && !s.claiming
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case issueDoneMsg:
		s.claiming = false
		if msg.Err != nil {
			s.claimErr = msg.Err.Error()
		} else {
			s.claimed = msg.Cert
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			if s.claiming {
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c", "C":
			if s.canClaim() {
				return s, s.claim()
			}
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			if s.scrollOffset < len(s.result.Feedback)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

// claim issues the certification asynchronously, anchoring it to the
// candidate's wallet when one is configured.
func (s *ResultsScreen) claim() tea.Cmd {
	s.claiming = true
	return func() tea.Msg {
		c, err := s.issuer.Issue(context.Background(), s.attempt, s.ident.WalletAddress)
		return issueDoneMsg{Cert: c, Err: err}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder

	// Verdict.
	if r.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("PASSED"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("NOT PASSED"))
	}
	b.WriteString("\n\n")

	// Score line.
	scoreLine := fmt.Sprintf("Score: %d / 100        Points: %d / %d        Required: %d",
		r.Score, r.EarnedPoints, r.TotalPoints, s.skill.PassThreshold)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(scoreLine))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(r.Score)/100, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Claim status.
	b.WriteString(s.renderClaimLine(width))
	b.WriteString("\n")

	// Feedback section.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 70)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Feedback")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	maxVisible := height - lipgloss.Height(b.String()) - 2
	if maxVisible < 3 {
		maxVisible = 3
	}

	feedback := r.Feedback
	start := s.scrollOffset
	if start > len(feedback) {
		start = len(feedback)
	}
	end := start + maxVisible
	if end > len(feedback) {
		end = len(feedback)
	}

	lineStyle := lipgloss.NewStyle().
		Width(min(width-8, 90)).
		Foreground(theme.Text)
	for _, line := range feedback[start:end] {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lineStyle.Render(line)))
		b.WriteString("\n")
	}
	if end < len(feedback) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(feedback)-end)))
	}

	return b.String()
}

func (s *ResultsScreen) renderClaimLine(width int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	switch {
	case s.claiming:
		return center(lipgloss.NewStyle().Foreground(theme.TextDim), "Issuing certification...")
	case s.claimErr != "":
		return center(lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("Claim failed: %s", s.claimErr))
	case s.claimed != nil:
		status := "issued locally"
		if s.claimed.Verified {
			status = "verified on-chain"
		} else if s.claimed.MetadataCID != "" {
			status = "metadata pinned, mint pending"
		}
		return center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("✦ Certification %s", status))
	case s.result.Passed && s.issuer != nil:
		return center(lipgloss.NewStyle().Foreground(theme.Accent),
			"[C] Claim your certification badge")
	case s.result.Passed:
		return center(lipgloss.NewStyle().Foreground(theme.TextDim),
			"Certification issuance is not configured")
	default:
		return center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Score %d or higher to earn this certification", s.skill.PassThreshold))
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
