package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/screens/catalog"
	"github.com/fairpersona/skillcert/internal/screens/certvault"
	"github.com/fairpersona/skillcert/internal/screens/history"
	"github.com/fairpersona/skillcert/internal/screens/placeholder"
	"github.com/fairpersona/skillcert/internal/screens/profile"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	attempts   int
	passes     int
	certCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *attempt.Service, issuer *cert.Issuer, ident identity.Provider, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	// Load snapshot for the dashboard stats line.
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	var attempts, passes, certCount int
	if snap != nil {
		attempts = snap.Data.Attempts
		passes = snap.Data.Passes
		certCount = snap.Data.CertCount
	}

	menuLabels := []string{"TAKE A TEST", "MY CERTIFICATIONS", "HISTORY", "PROFILE", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if svc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Take a Test")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: catalog.New(svc, issuer, ident, snapRepo)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if issuer == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("My Certifications")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: certvault.New(issuer)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if ident == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Profile")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(ident, issuer)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		attempts:   attempts,
		passes:     passes,
		certCount:  certCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.attempts, h.passes, h.certCount, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderHomeFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
