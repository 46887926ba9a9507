package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mood is one of the six fixed states used to tag journal entries and
// reference content.
type Mood int

const (
	MoodDepressed Mood = iota + 1
	MoodSad
	MoodAngry
	MoodScared
	MoodModerate
	MoodHappy
)

// Intensity bounds, inclusive.
const (
	MinIntensity = 1
	MaxIntensity = 6
)

var (
	ErrInvalidMood      = errors.New("mood must be between 1 and 6")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 6")
	ErrInvalidSequence  = errors.New("sequence number must be positive")
	ErrEmptyTitle       = errors.New("title must not be empty")
)

var moodNames = [...]string{"", "Depressed", "Sad", "Angry", "Scared", "Moderate", "Happy"}

// AllMoods lists the moods in their declared order.
func AllMoods() []Mood {
	return []Mood{MoodDepressed, MoodSad, MoodAngry, MoodScared, MoodModerate, MoodHappy}
}

func (m Mood) Valid() bool {
	return m >= MoodDepressed && m <= MoodHappy
}

func (m Mood) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return moodNames[m]
}

// ParseMood accepts either the mood name (case-insensitive) or its number.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := Mood(n)
		if !m.Valid() {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidMood)
		}
		return m, nil
	}
	for _, m := range AllMoods() {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidMood)
}

// MoodEntry is one record of the append-only mood log.
type MoodEntry struct {
	ID        int64     `db:"id"`
	Seq       int64     `db:"seq"` // sequential day index, strictly increasing
	Mood      Mood      `db:"mood"`
	Intensity int       `db:"intensity"`
	CreatedAt time.Time `db:"created_at"`
}

// Validate checks the closed ranges. A zero Seq means "assign the next one".
func (e MoodEntry) Validate() error {
	if !e.Mood.Valid() {
		return ErrInvalidMood
	}
	if e.Intensity < MinIntensity || e.Intensity > MaxIntensity {
		return ErrInvalidIntensity
	}
	if e.Seq < 0 {
		return ErrInvalidSequence
	}
	return nil
}

// ResourceItem is a coping article or video tagged with a mood.
type ResourceItem struct {
	ID          int64  `db:"id" json:"-"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Link        string `db:"link" json:"link"`
	Mood        Mood   `db:"mood" json:"mood"`
}

func (r ResourceItem) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if !r.Mood.Valid() {
		return ErrInvalidMood
	}
	return nil
}

// MusicItem is a song suggestion tagged with a mood.
type MusicItem struct {
	ID     int64  `db:"id" json:"-"`
	Title  string `db:"title" json:"title"`
	Artist string `db:"artist" json:"artist"`
	Link   string `db:"link" json:"link"`
	Mood   Mood   `db:"mood" json:"mood"`
}

func (m MusicItem) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrEmptyTitle
	}
	if !m.Mood.Valid() {
		return ErrInvalidMood
	}
	return nil
}
