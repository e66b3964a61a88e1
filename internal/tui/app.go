package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-admin-config/models"
)

// RootModel is a TUI router:
// 1) keeps the active screen
// 2) handles global quit, tab switching and the build info window
// 3) handles NavigateTo messages
// 4) hands keys to the active screen and every other message to all screens
type RootModel struct {
	pages   []screen
	current int

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers the screens and opens the one bound to startPage.
// An unknown route opens the first screen.
func NewRootModel(pages []screen, startPage string, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{pages: pages, buildInfo: buildInfo}
	if i := r.indexOf(startPage); i >= 0 {
		r.current = i
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, p := range r.pages {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(r.pages) == 0 {
		return r, tea.Quit
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if k.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if r.pages[r.current].capturesInput() {
			return r.updateCurrent(msg)
		}

		switch {
		case key.Matches(k, keys.quit):
			return r, tea.Quit
		case key.Matches(k, keys.info):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if key.Matches(k, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(k, keys.tab):
			r.current = (r.current + 1) % len(r.pages)
			return r, nil
		case key.Matches(k, keys.backtab):
			r.current = (r.current + len(r.pages) - 1) % len(r.pages)
			return r, nil
		}
		return r.updateCurrent(msg)
	}

	if nav, ok := msg.(NavigateTo); ok {
		if i := r.indexOf(nav.Page); i >= 0 {
			r.current = i
			r.showBuildInfo = false
		}
		return r, nil
	}

	pages := make([]screen, len(r.pages))
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for i, p := range r.pages {
		updated, cmd := p.Update(msg)
		pages[i] = updated.(screen)
		cmds = append(cmds, cmd)
	}
	r.pages = pages
	return r, tea.Batch(cmds...)
}

func (r RootModel) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := r.pages[r.current].Update(msg)
	r.pages = append([]screen(nil), r.pages...)
	r.pages[r.current] = updated.(screen)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if len(r.pages) == 0 {
		return renderPage("Consola", "", "")
	}
	return appStyle.Render(r.tabs() + "\n\n" + r.pages[r.current].View())
}

func (r RootModel) tabs() string {
	parts := make([]string, len(r.pages))
	for i, p := range r.pages {
		if i == r.current {
			parts[i] = activeTabStyle.Render(p.title())
		} else {
			parts[i] = tabStyle.Render(p.title())
		}
	}
	return strings.Join(parts, " ")
}

// Route returns the route of the active screen.
func (r RootModel) Route() string {
	if len(r.pages) == 0 {
		return ""
	}
	return r.pages[r.current].route()
}

func (r RootModel) indexOf(route string) int {
	for i, p := range r.pages {
		if p.route() == route {
			return i
		}
	}
	return -1
}
