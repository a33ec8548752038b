package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/screens/home"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/ui/layout"
)

// Deps carries the services the screens need. Nil fields degrade the
// corresponding menu entries to placeholders.
type Deps struct {
	Attempts  *attempt.Service
	Issuer    *cert.Issuer
	Identity  identity.Provider
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	certCount int
	width     int
	height    int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Attempts, deps.Issuer, deps.Identity, deps.EventRepo, deps.SnapRepo)

	certCount := 0
	if deps.SnapRepo != nil {
		if snap, err := deps.SnapRepo.Latest(context.Background()); err == nil && snap != nil {
			certCount = snap.Data.CertCount
		}
	}

	return AppModel{
		router:    router.New(homeScreen),
		certCount: certCount,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens mid-flow intercept esc for their own confirm
			// dialogs.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.certCount, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
