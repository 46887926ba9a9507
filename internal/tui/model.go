package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/akyairhashvil/talk/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateIntro SessionState = iota
	StateMain
)

// Options tune a MainModel.
type Options struct {
	// FirstLaunch shows the intro screen before the journal.
	FirstLaunch   bool
	ReminderDelay time.Duration
}

// MainModel is the root bubbletea model.
type MainModel struct {
	ctx       context.Context
	store     Store
	reminders Reminder
	delay     time.Duration
	keys      *keyMap
	help      help.Model

	state   SessionState
	tab     int
	showAll bool
	cursors [tabCount]int
	modal   ModalState

	moods     []models.MoodEntry
	latest    models.MoodEntry
	hasLatest bool
	resources []models.ResourceItem
	music     []models.MusicItem
	loaded    bool

	progress      progress.Model
	err           error
	Message       string
	width, height int
}

func NewMainModel(ctx context.Context, store Store, reminders Reminder, opts Options) MainModel {
	name, ok, err := store.GetSetting(ctx, config.SettingTheme)
	switch {
	case err != nil:
		util.LogError("load theme setting", err)
	case ok:
		SetTheme(name)
	}
	delay := opts.ReminderDelay
	if delay <= 0 {
		delay = config.DefaultReminderDelay
	}
	m := MainModel{
		ctx:       ctx,
		store:     store,
		reminders: reminders,
		delay:     delay,
		keys:      defaultKeyMap(),
		help:      newHelp(),
		state:     StateMain,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(config.IntensityBarWidth),
			progress.WithoutPercentage(),
		),
	}
	if opts.FirstLaunch {
		m.state = StateIntro
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadDataCmd(m.ctx, m.store, m.showAll),
		waitReminderCmd(m.reminders),
	}
	if m.state == StateMain {
		cmds = append(cmds, scheduleReminderCmd(m.reminders, m.delay))
	}
	return tea.Batch(cmds...)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg.String())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		m.moods = msg.moods
		m.latest = msg.latest
		m.hasLatest = msg.hasLatest
		m.resources = msg.resources
		m.music = msg.music
		m.loaded = true
		for tab := range m.cursors {
			m.cursors[tab] = util.Clamp(m.cursors[tab], 0, max(m.rowCount(tab)-1, 0))
		}
		return m, nil

	case moodChosenMsg:
		return m, saveMoodCmd(m.ctx, m.store, msg.Mood, msg.Intensity)

	case moodSavedMsg:
		m.err = nil
		m.Message = "Saved " + FormatEntry(msg.Seq, msg.Mood, msg.Intensity)
		m.cursors[config.TabMoodLog] = 0
		return m, tea.Batch(
			loadDataCmd(m.ctx, m.store, m.showAll),
			scheduleReminderCmd(m.reminders, m.delay),
		)

	case themeChosenMsg:
		SetTheme(msg.Name)
		m.Message = "Theme: " + CurrentTheme.Name
		return m, saveSettingCmd(m.ctx, m.store, config.SettingTheme, msg.Name)

	case reminderMsg:
		if m.state == StateMain && m.modal == nil {
			m.modal = newMoodDialog()
			m.Message = "Time to check in."
		}
		return m, waitReminderCmd(m.reminders)

	case errMsg:
		m.err = msg.err
		m.Message = ""
		util.Logger.Warnw("ui operation failed", "op", msg.op, "error", msg.err)
		return m, nil
	}
	return m, nil
}

func (m MainModel) handleKey(key string) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateIntro:
		switch key {
		case "enter", " ":
			m.state = StateMain
			return m, scheduleReminderCmd(m.reminders, m.delay)
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.modal != nil {
		next, cmd := m.modal.HandleKey(key)
		m.modal = next
		return m, cmd
	}

	m.err = nil
	next, cmd, handled := m.keys.dispatch(m, key)
	if !handled {
		return m, nil
	}
	return next, cmd
}

func (m MainModel) rowCount(tab int) int {
	switch tab {
	case config.TabMoodLog:
		return len(m.moods)
	case config.TabResources:
		return len(m.resources)
	case config.TabMusic:
		return len(m.music)
	}
	return 0
}

func (m MainModel) statusLine() string {
	if m.err != nil {
		return CurrentTheme.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	return CurrentTheme.Dim.Render(m.Message)
}
