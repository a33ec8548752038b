package catalog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/ui/layout"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowSkill
)

type row struct {
	kind     rowKind
	category string
	skill    *skills.Skill
}

// CatalogScreen displays the skill catalog organized by category.
type CatalogScreen struct {
	svc          *attempt.Service
	issuer       *cert.Issuer
	ident        identity.Provider
	rows         []row
	cursor       int
	scrollOffset int
	bestScores   map[string]int
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen.
func New(svc *attempt.Service, issuer *cert.Issuer, ident identity.Provider, snapRepo store.SnapshotRepo) *CatalogScreen {
	bestScores := make(map[string]int)
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			for id, score := range snap.Data.BestScores {
				bestScores[id] = score
			}
		}
	}

	var rows []row
	for _, category := range skills.Categories() {
		rows = append(rows, row{kind: rowCategoryHeader, category: category})
		list := skills.ByCategory(category)
		for i := range list {
			rows = append(rows, row{kind: rowSkill, category: category, skill: &list[i]})
		}
	}

	s := &CatalogScreen{
		svc:        svc,
		issuer:     issuer,
		ident:      ident,
		rows:       rows,
		bestScores: bestScores,
	}

	// Set cursor to first skill row
	for i, r := range s.rows {
		if r.kind == rowSkill {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *CatalogScreen) Init() tea.Cmd {
	return nil
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCategory()
		case "shift+tab":
			s.prevCategory()
		case "enter":
			return s, s.selectSkill()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CatalogScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	// Ensure cursor is visible within the scroll window
	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowSkill:
			lines = append(lines, s.renderSkillRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *CatalogScreen) Title() string {
	return "Skill Catalog"
}

// KeyHints returns the key binding hints for the footer.
func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *CatalogScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowSkill {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first skill in the next category.
func (s *CatalogScreen) nextCategory() {
	currentCategory := s.rows[s.cursor].category
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowSkill && s.rows[i].category != currentCategory {
			s.cursor = i
			return
		}
	}
}

// prevCategory jumps the cursor to the first skill in the previous category.
func (s *CatalogScreen) prevCategory() {
	currentCategory := s.rows[s.cursor].category

	prevStart := -1
	var prevCategory string
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowSkill && s.rows[i].category != currentCategory {
			prevCategory = s.rows[i].category
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowSkill || s.rows[i].category != prevCategory {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowSkill {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *CatalogScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the category header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectSkill handles enter on the current skill.
func (s *CatalogScreen) selectSkill() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowSkill || r.skill == nil {
		return nil
	}

	detail := newSkillDetail(*r.skill, s.bestScores[r.skill.ID], s.svc, s.issuer, s.ident)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// renderCategoryHeader renders a category section header.
func (s *CatalogScreen) renderCategoryHeader(category string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(category))
}

// renderSkillRow renders a single skill row.
func (s *CatalogScreen) renderSkillRow(r row, selected bool, width int) string {
	if r.skill == nil {
		return ""
	}

	sk := r.skill
	diff := sk.Difficulty.Label()
	timeStr := fmt.Sprintf("%d min", sk.EstimatedMins)
	passStr := fmt.Sprintf("pass %d", sk.PassThreshold)

	best := ""
	if score, ok := s.bestScores[sk.ID]; ok {
		best = fmt.Sprintf("best %d", score)
	}

	// Calculate column widths
	padding := 4 // left indent
	iconWidth := 3
	diffWidth := 13
	timeWidth := 8
	passWidth := 9
	bestWidth := 9
	spacing := 6
	nameWidth := width - padding - iconWidth - diffWidth - timeWidth - passWidth - bestWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := sk.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle, metaStyle, bestStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		metaStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		bestStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		metaStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		bestStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s  %s  %s  %s",
		cursor,
		sk.Icon,
		nameStyle.Render(namePadded),
		metaStyle.Render(fmt.Sprintf("%-12s", diff)),
		metaStyle.Render(fmt.Sprintf("%-7s", timeStr)),
		metaStyle.Render(fmt.Sprintf("%-8s", passStr)),
		bestStyle.Render(fmt.Sprintf("%8s", best)),
	)
}
