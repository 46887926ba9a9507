package tui

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/talk/internal/database"
	"github.com/akyairhashvil/talk/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeReminder struct {
	mu     sync.Mutex
	delays []time.Duration
	ch     chan reminder.Fire
}

func newFakeReminder() *fakeReminder {
	return &fakeReminder{ch: make(chan reminder.Fire, 1)}
}

func (f *fakeReminder) Schedule(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays = append(f.delays, d)
}

func (f *fakeReminder) C() <-chan reminder.Fire { return f.ch }

func (f *fakeReminder) scheduled() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.delays)
}

func setupTestStore(t *testing.T) (*database.Database, context.Context) {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{DSN: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db, ctx
}

// setupTestModel returns a loaded model in the main state.
func setupTestModel(t *testing.T, store Store) (MainModel, *fakeReminder) {
	t.Helper()
	rem := newFakeReminder()
	m := NewMainModel(context.Background(), store, rem, Options{ReminderDelay: time.Minute})
	m = update(t, m, loadDataCmd(m.ctx, m.store, m.showAll)())
	return m, rem
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func update(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(MainModel)
	if !ok {
		t.Fatalf("expected MainModel, got %T", next)
	}
	return updated
}

// press sends keys in order and returns the model with the last command.
func press(t *testing.T, m MainModel, keys ...string) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		updated, ok := next.(MainModel)
		if !ok {
			t.Fatalf("expected MainModel, got %T", next)
		}
		m = updated
	}
	return m, cmd
}

// drain runs cmd and every command it produces, feeding messages back in.
// Reminder waits must not be reachable from cmd.
func drain(t *testing.T, m MainModel, cmd tea.Cmd) MainModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if msg == nil {
			continue
		}
		next, follow := m.Update(msg)
		m = next.(MainModel)
		queue = append(queue, follow)
	}
	return m
}
