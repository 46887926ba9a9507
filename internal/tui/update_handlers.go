package tui

import (
	"sort"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const tabCount = config.TabMusic + 1

func defaultKeyMap() *keyMap {
	k := &keyMap{}
	lists := []int{config.TabResources, config.TabMusic}

	k.bind(key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "log mood")), handleOpenMoodDialog)
	k.bind(key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/filtered")), handleToggleAll, lists...)
	k.bind(key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "link")), handleShowLink, lists...)
	k.bind(key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")), handleNextTab)
	k.bind(key.NewBinding(key.WithKeys("shift+tab", "left", "h")), handlePrevTab)
	k.bind(key.NewBinding(key.WithKeys("1", "2", "3")), handleJumpTab)
	k.bind(key.NewBinding(key.WithKeys("j", "down")), handleCursorDown)
	k.bind(key.NewBinding(key.WithKeys("k", "up")), handleCursorUp)
	k.bind(key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")), handleRefresh)
	k.bind(key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")), handleOpenTheme)
	k.bind(key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")), handleQuit)
	return k
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleOpenMoodDialog(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.modal = newMoodDialog()
	return m, nil, true
}

func handleOpenTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	state := &ThemeState{Names: names}
	for i, name := range names {
		if Themes[name].Name == CurrentTheme.Name {
			state.Cursor = i
		}
	}
	m.modal = state
	return m, nil, true
}

func handleToggleAll(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.showAll = !m.showAll
	m.cursors[config.TabResources] = 0
	m.cursors[config.TabMusic] = 0
	return m, loadDataCmd(m.ctx, m.store, m.showAll), true
}

func handleRefresh(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, loadDataCmd(m.ctx, m.store, m.showAll), true
}

func handleShowLink(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	switch m.tab {
	case config.TabResources:
		if c := m.cursors[m.tab]; c < len(m.resources) {
			m.Message = m.resources[c].Link
		}
	case config.TabMusic:
		if c := m.cursors[m.tab]; c < len(m.music) {
			m.Message = m.music[c].Link
		}
	}
	return m, nil, true
}

func handleNextTab(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.tab = (m.tab + 1) % tabCount
	return m, nil, true
}

func handlePrevTab(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.tab = (m.tab + tabCount - 1) % tabCount
	return m, nil, true
}

func handleJumpTab(m MainModel, pressed string) (MainModel, tea.Cmd, bool) {
	m.tab = int(pressed[0]-'1') % tabCount
	return m, nil, true
}

func handleCursorDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.cursors[m.tab] < m.rowCount(m.tab)-1 {
		m.cursors[m.tab]++
	}
	return m, nil, true
}

func handleCursorUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.cursors[m.tab] > 0 {
		m.cursors[m.tab]--
	}
	return m, nil, true
}
