package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestShortHelpPerTab(t *testing.T) {
	k := defaultKeyMap()
	h := newHelp()

	logHelp := h.ShortHelpView(k.shortHelp(config.TabMoodLog))
	if !strings.Contains(logHelp, "m log mood") {
		t.Fatalf("expected mood binding in help, got %q", logHelp)
	}
	if strings.Contains(logHelp, "all/filtered") || strings.Contains(logHelp, "link") {
		t.Fatalf("list bindings should not be offered on the mood log, got %q", logHelp)
	}
	if strings.Index(logHelp, "log mood") > strings.Index(logHelp, "quit") {
		t.Fatalf("expected bindings in registration order, got %q", logHelp)
	}
	if musicHelp := h.ShortHelpView(k.shortHelp(config.TabMusic)); !strings.Contains(musicHelp, "a all/filtered") {
		t.Fatalf("expected toggle on music tab, got %q", musicHelp)
	}
	for _, b := range k.shortHelp(config.TabResources) {
		if b.Help().Desc == "" {
			t.Fatalf("undocumented binding %v listed in help", b.Keys())
		}
	}
}

func TestDispatchAliases(t *testing.T) {
	k := defaultKeyMap()
	for _, pressed := range []string{"tab", "right", "l"} {
		m, _, ok := k.dispatch(MainModel{}, pressed)
		if !ok || m.tab != config.TabResources {
			t.Fatalf("%q: expected next tab, got tab %d (handled=%v)", pressed, m.tab, ok)
		}
	}
	for _, pressed := range []string{"shift+tab", "left", "h"} {
		m, _, ok := k.dispatch(MainModel{}, pressed)
		if !ok || m.tab != config.TabMusic {
			t.Fatalf("%q: expected previous tab to wrap, got tab %d", pressed, m.tab)
		}
	}
	if m, _, _ := k.dispatch(MainModel{}, "3"); m.tab != config.TabMusic {
		t.Fatalf("expected jump to music tab, got %d", m.tab)
	}
	if _, _, ok := k.dispatch(MainModel{tab: config.TabMoodLog}, "a"); ok {
		t.Fatalf("toggle must not fire on the mood log")
	}
}

func TestDispatchFallsThroughUnhandled(t *testing.T) {
	k := &keyMap{}
	calls := 0
	k.bind(key.NewBinding(key.WithKeys("x")), func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		calls++
		return m, nil, false
	})
	k.bind(key.NewBinding(key.WithKeys("x"), key.WithDisabled()), func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		t.Fatalf("disabled binding ran")
		return m, nil, true
	})
	k.bind(key.NewBinding(key.WithKeys("x", "y")), func(m MainModel, pressed string) (MainModel, tea.Cmd, bool) {
		calls++
		m.Message = "handled " + pressed
		return m, nil, true
	})

	m, _, ok := k.dispatch(MainModel{}, "x")
	if !ok || m.Message != "handled x" || calls != 2 {
		t.Fatalf("expected last binding to handle key, calls=%d message=%q", calls, m.Message)
	}
	if m, _, ok := k.dispatch(MainModel{}, "y"); !ok || m.Message != "handled y" {
		t.Fatalf("expected alias to dispatch, got %q", m.Message)
	}
	if _, _, ok := k.dispatch(MainModel{}, "z"); ok {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestFooterFitsWidth(t *testing.T) {
	m := MainModel{keys: defaultKeyMap(), help: newHelp(), width: 20}
	footer := ansi.Strip(m.renderFooter())
	if lipgloss.Width(footer) > 20 {
		t.Fatalf("footer wider than the window: %q", footer)
	}
	if !strings.HasPrefix(footer, "m log mood") || !strings.HasSuffix(footer, "…") {
		t.Fatalf("expected truncated footer, got %q", footer)
	}
}
