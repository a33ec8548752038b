package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/ui/layout"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

type historyLoadedMsg struct {
	Grades []store.GradeEventRecord
	Err    error
}

// HistoryScreen displays past graded attempts.
type HistoryScreen struct {
	eventRepo store.EventRepo
	grades    []store.GradeEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		grades, err := s.eventRepo.QueryGradeEvents(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Grades: grades, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Feedback"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.grades = msg.Grades
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.grades)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.grades) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No graded attempts yet. Take a test!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.grades {
		dateStr := g.Timestamp.Format("Jan 02, 2006")
		name := skillName(g.SkillID)

		verdict := "failed"
		verdictStyle := lipgloss.NewStyle().Foreground(theme.Error)
		if g.Passed {
			verdict = "passed"
			verdictStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-26s score %3d  %s",
			prefix, dateStr, name, g.Score, verdictStyle.Render(verdict))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded per-question feedback.
		if s.expanded[i] {
			if len(g.Feedback) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No feedback recorded")))
				b.WriteString("\n")
			} else {
				fbStyle := lipgloss.NewStyle().
					Width(min(width-12, 80)).
					Foreground(theme.TextDim)
				for _, line := range g.Feedback {
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						fbStyle.Render("    "+line)))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}

// skillName resolves a catalog display name, falling back to the raw ID
// for skills no longer in the catalog.
func skillName(id string) string {
	sk, err := skills.GetSkill(id)
	if err != nil {
		return id
	}
	return sk.Name
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
