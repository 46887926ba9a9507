package tui

import (
	"strconv"

	"github.com/akyairhashvil/talk/internal/models"
	"github.com/akyairhashvil/talk/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalChooseMood
	ModalChooseIntensity
	ModalTheme
)

// ModalState is one step of a modal flow. HandleKey returns the next step,
// or nil when the modal closes.
type ModalState interface {
	Type() ModalType
	HandleKey(key string) (ModalState, tea.Cmd)
}

// moodChosenMsg is emitted when the mood dialog commits.
type moodChosenMsg struct {
	Mood      models.Mood
	Intensity int
}

// themeChosenMsg is emitted when a theme is picked.
type themeChosenMsg struct {
	Name string
}

// ChooseMoodState is the first step of the mood dialog.
type ChooseMoodState struct {
	Cursor int
}

func newMoodDialog() ModalState {
	return &ChooseMoodState{}
}

func (s *ChooseMoodState) Type() ModalType { return ModalChooseMood }

func (s *ChooseMoodState) Selected() models.Mood {
	return models.AllMoods()[s.Cursor]
}

func (s *ChooseMoodState) HandleKey(key string) (ModalState, tea.Cmd) {
	moods := models.AllMoods()
	switch key {
	case "esc", "q":
		return nil, nil
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(moods)-1 {
			s.Cursor++
		}
	case "enter", "right", "l":
		return &ChooseIntensityState{Mood: s.Selected(), Intensity: models.MinIntensity}, nil
	default:
		if n, err := strconv.Atoi(key); err == nil && models.Mood(n).Valid() {
			s.Cursor = n - 1
		}
	}
	return s, nil
}

// ChooseIntensityState is the second step; Enter commits the entry.
type ChooseIntensityState struct {
	Mood      models.Mood
	Intensity int
}

func (s *ChooseIntensityState) Type() ModalType { return ModalChooseIntensity }

func (s *ChooseIntensityState) HandleKey(key string) (ModalState, tea.Cmd) {
	switch key {
	case "esc", "q":
		return nil, nil
	case "backspace":
		return &ChooseMoodState{Cursor: int(s.Mood) - 1}, nil
	case "left", "h", "down", "j":
		s.Intensity = util.Clamp(s.Intensity-1, models.MinIntensity, models.MaxIntensity)
	case "right", "l", "up", "k":
		s.Intensity = util.Clamp(s.Intensity+1, models.MinIntensity, models.MaxIntensity)
	case "enter":
		chosen := moodChosenMsg{Mood: s.Mood, Intensity: s.Intensity}
		return nil, func() tea.Msg { return chosen }
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= models.MinIntensity && n <= models.MaxIntensity {
			s.Intensity = n
		}
	}
	return s, nil
}

// ThemeState picks one of the registered themes.
type ThemeState struct {
	Cursor int
	Names  []string
}

func (s *ThemeState) Type() ModalType { return ModalTheme }

func (s *ThemeState) HandleKey(key string) (ModalState, tea.Cmd) {
	switch key {
	case "esc", "q":
		return nil, nil
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Names)-1 {
			s.Cursor++
		}
	case "enter":
		if len(s.Names) == 0 {
			return nil, nil
		}
		name := s.Names[s.Cursor]
		return nil, func() tea.Msg { return themeChosenMsg{Name: name} }
	}
	return s, nil
}
