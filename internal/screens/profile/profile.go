package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/ui/components"
	"github.com/fairpersona/skillcert/internal/ui/layout"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

type profileLoadedMsg struct {
	Ident identity.Identity
	Err   error
}

type profileSavedMsg struct {
	Backing int
	Err     error
}

const (
	fieldName = iota
	fieldSpecialty
	fieldWallet
	fieldCount
)

var fieldLabels = [fieldCount]string{"Display name", "Specialty", "Wallet address"}

// ProfileScreen edits the local candidate identity.
type ProfileScreen struct {
	idents identity.Provider
	issuer *cert.Issuer

	ident   identity.Identity
	inputs  [fieldCount]components.TextInput
	focused int
	loaded  bool
	saving  bool
	saved   bool
	backing int
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(idents identity.Provider, issuer *cert.Issuer) *ProfileScreen {
	s := &ProfileScreen{
		idents: idents,
		issuer: issuer,
	}
	s.inputs[fieldName] = components.NewTextInput("How should we address you?", false, 60)
	s.inputs[fieldSpecialty] = components.NewTextInput("e.g. react, solidity, ml", false, 60)
	s.inputs[fieldWallet] = components.NewTextInput("0x... (optional, for badge minting)", false, 80)
	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			ident, err := s.idents.Current(context.Background())
			return profileLoadedMsg{Ident: ident, Err: err}
		},
		s.inputs[fieldName].Init(),
	)
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.ident = msg.Ident
		s.inputs[fieldName].Model.SetValue(msg.Ident.DisplayName)
		s.inputs[fieldSpecialty].Model.SetValue(msg.Ident.Specialty)
		s.inputs[fieldWallet].Model.SetValue(msg.Ident.WalletAddress)
		s.loaded = true
		return s, nil

	case profileSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.saved = true
		s.backing = msg.Backing
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.focused = (s.focused + 1) % fieldCount
			s.saved = false
			return s, s.inputs[s.focused].Init()
		case "shift+tab":
			s.focused = (s.focused - 1 + fieldCount) % fieldCount
			s.saved = false
			return s, s.inputs[s.focused].Init()
		case "enter":
			if s.loaded && !s.saving {
				return s, s.save()
			}
			return s, nil
		}

		if !s.loaded || s.saving {
			return s, nil
		}
		var cmd tea.Cmd
		s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
		s.saved = false
		return s, cmd
	}
	return s, nil
}

// save persists the edited identity, then counts certifications that
// back the claimed specialty.
func (s *ProfileScreen) save() tea.Cmd {
	s.saving = true
	ident := s.ident
	ident.DisplayName = strings.TrimSpace(s.inputs[fieldName].Value())
	ident.Specialty = strings.TrimSpace(s.inputs[fieldSpecialty].Value())
	ident.WalletAddress = strings.TrimSpace(s.inputs[fieldWallet].Value())
	s.ident = ident

	return func() tea.Msg {
		ctx := context.Background()
		if err := s.idents.Update(ctx, ident); err != nil {
			return profileSavedMsg{Err: err}
		}

		backing := 0
		if s.issuer != nil && ident.Specialty != "" {
			if certs, err := s.issuer.BackingSpecialty(ctx, ident.Specialty); err == nil {
				backing = len(certs)
			}
		}
		return profileSavedMsg{Backing: backing}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profile...")
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	focusedLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Candidate ID: %s", s.ident.UserID)))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		style := labelStyle
		marker := "  "
		if i == s.focused {
			style = focusedLabel
			marker = "▸ "
		}

		line := style.Render(fmt.Sprintf("%s%-16s", marker, label+":")) + " " + s.inputs[i].View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n\n")
	}

	if s.saving {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Saving..."))
	} else if s.saved {
		status := "Profile saved"
		if s.ident.Specialty != "" {
			if s.backing > 0 {
				status = fmt.Sprintf("Profile saved — specialty %q backed by %d verified certification(s)",
					s.ident.Specialty, s.backing)
			} else {
				status = fmt.Sprintf("Profile saved — no verified certifications back %q yet",
					s.ident.Specialty)
			}
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).
			Render(status))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Tab between fields, Enter to save"))
	}

	return b.String()
}
