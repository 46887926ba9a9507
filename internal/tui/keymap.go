package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// action runs a main-screen command. Returning false lets a later binding
// for the same key try.
type action func(m MainModel, pressed string) (MainModel, tea.Cmd, bool)

type keyAction struct {
	binding key.Binding
	run     action
	tabs    []int // nil means every tab
}

func (a keyAction) onTab(tab int) bool {
	return a.tabs == nil || slices.Contains(a.tabs, tab)
}

// keyMap holds the main screen bindings in the order they are tried and
// listed in the footer.
type keyMap struct {
	actions []keyAction
}

func (k *keyMap) bind(b key.Binding, run action, tabs ...int) {
	k.actions = append(k.actions, keyAction{binding: b, run: run, tabs: tabs})
}

func (k *keyMap) dispatch(m MainModel, pressed string) (MainModel, tea.Cmd, bool) {
	for _, a := range k.actions {
		if !a.binding.Enabled() || !a.onTab(m.tab) || !slices.Contains(a.binding.Keys(), pressed) {
			continue
		}
		if next, cmd, ok := a.run(m, pressed); ok {
			return next, cmd, true
		}
	}
	return m, nil, false
}

// shortHelp lists the documented bindings available on tab.
func (k *keyMap) shortHelp(tab int) []key.Binding {
	var out []key.Binding
	for _, a := range k.actions {
		if a.onTab(tab) && a.binding.Help().Desc != "" {
			out = append(out, a.binding)
		}
	}
	return out
}

// newHelp renders unstyled so the footer can apply the current theme.
func newHelp() help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	h.Styles.Ellipsis = plain
	return h
}
