package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/talk/internal/models"
	"github.com/akyairhashvil/talk/internal/reminder"
	"github.com/akyairhashvil/talk/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type dataLoadedMsg struct {
	moods     []models.MoodEntry
	latest    models.MoodEntry
	hasLatest bool
	resources []models.ResourceItem
	music     []models.MusicItem
}

type moodSavedMsg struct {
	Seq       int64
	Mood      models.Mood
	Intensity int
}

type errMsg struct {
	op  string
	err error
}

type reminderMsg reminder.Fire

// Reminder is the notification collaborator the UI arms after each save.
type Reminder interface {
	Schedule(delay time.Duration)
	C() <-chan reminder.Fire
}

func loadDataCmd(ctx context.Context, store Store, showAll bool) tea.Cmd {
	return func() tea.Msg {
		moods, err := store.GetAllMoods(ctx)
		if err != nil {
			return errMsg{op: "load moods", err: err}
		}
		latest, ok, err := store.LatestMood(ctx)
		if err != nil {
			return errMsg{op: "load latest mood", err: err}
		}
		msg := dataLoadedMsg{moods: moods, latest: latest, hasLatest: ok}
		if showAll || !ok {
			if msg.resources, err = store.GetAllResources(ctx); err != nil {
				return errMsg{op: "load resources", err: err}
			}
			if msg.music, err = store.GetAllMusic(ctx); err != nil {
				return errMsg{op: "load music", err: err}
			}
			return msg
		}
		if msg.resources, err = store.GetResourcesByMood(ctx, latest.Mood); err != nil {
			return errMsg{op: "load resources", err: err}
		}
		if msg.music, err = store.GetMusicByMood(ctx, latest.Mood); err != nil {
			return errMsg{op: "load music", err: err}
		}
		return msg
	}
}

func saveMoodCmd(ctx context.Context, store Store, mood models.Mood, intensity int) tea.Cmd {
	return func() tea.Msg {
		seq, err := store.RecordMood(ctx, mood, intensity)
		if err != nil {
			util.LogError("record mood", err)
			return errMsg{op: "save mood", err: err}
		}
		return moodSavedMsg{Seq: seq, Mood: mood, Intensity: intensity}
	}
}

func saveSettingCmd(ctx context.Context, store Store, key, value string) tea.Cmd {
	return func() tea.Msg {
		if err := store.SetSetting(ctx, key, value); err != nil {
			util.LogError("save setting "+key, err)
			return errMsg{op: "save setting", err: err}
		}
		return nil
	}
}

func scheduleReminderCmd(r Reminder, delay time.Duration) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		r.Schedule(delay)
		return nil
	}
}

func waitReminderCmd(r Reminder) tea.Cmd {
	if r == nil {
		return nil
	}
	ch := r.C()
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return nil
		}
		return reminderMsg(f)
	}
}
