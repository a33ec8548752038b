package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	testscreen "github.com/fairpersona/skillcert/internal/screens/test"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/ui/layout"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

// SkillDetailScreen shows details for a single skill and starts the test.
type SkillDetailScreen struct {
	skill     skills.Skill
	bestScore int
	svc       *attempt.Service
	issuer    *cert.Issuer
	ident     identity.Provider
}

var _ screen.Screen = (*SkillDetailScreen)(nil)
var _ screen.KeyHintProvider = (*SkillDetailScreen)(nil)

func newSkillDetail(skill skills.Skill, bestScore int, svc *attempt.Service, issuer *cert.Issuer, ident identity.Provider) *SkillDetailScreen {
	return &SkillDetailScreen{skill: skill, bestScore: bestScore, svc: svc, issuer: issuer, ident: ident}
}

func (d *SkillDetailScreen) Init() tea.Cmd { return nil }
func (d *SkillDetailScreen) Title() string { return d.skill.Name }

func (d *SkillDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "s":
			if d.svc == nil {
				return d, nil
			}
			// Replace the detail screen so finishing the test lands
			// back on the catalog.
			return d, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: testscreen.New(d.svc, d.issuer, d.ident, d.skill),
				}
			}
		}
	}
	return d, nil
}

func (d *SkillDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start test"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *SkillDetailScreen) View(width, height int) string {
	sk := d.skill
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", sk.Icon, sk.Name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", sk.Difficulty.Label())))
	b.WriteString("\n\n")

	if sk.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(sk.Description))
		b.WriteString("\n\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Category:    ") + valStyle.Render(sk.Category) + "\n")
	b.WriteString(dimStyle.Render("  Time limit:  ") + valStyle.Render(fmt.Sprintf("%d minutes", sk.EstimatedMins)) + "\n")
	b.WriteString(dimStyle.Render("  Pass score:  ") + valStyle.Render(fmt.Sprintf("%d / 100", sk.PassThreshold)) + "\n")
	if d.bestScore > 0 {
		b.WriteString(dimStyle.Render("  Your best:   ") +
			lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d", d.bestScore)) + "\n")
	}
	b.WriteString("\n")

	if len(sk.Tags) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Covers"))
		b.WriteString("\n")
		for _, tag := range sk.Tags {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  · %s", tag)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("  [Enter] Start the test"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  The timer starts immediately and runs even if you quit."))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
