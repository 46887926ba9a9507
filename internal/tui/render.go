package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/charmbracelet/lipgloss"
)

var tabTitles = [tabCount]string{"Mood log", "Resources", "Music"}

func (m MainModel) View() string {
	if m.state == StateIntro {
		return m.renderIntro()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(m.renderTabs() + "\n\n")
	if m.modal != nil {
		b.WriteString(m.renderModal())
	} else {
		b.WriteString(m.renderBody())
	}
	b.WriteString("\n\n" + m.statusLine())
	b.WriteString("\n" + m.renderFooter())
	return CurrentTheme.Base.Render(b.String())
}

func (m MainModel) renderIntro() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Welcome to talk") + "\n\n")
	b.WriteString("A small, private place to keep track of how you feel.\n\n")
	b.WriteString("Every so often you'll be asked how you are feeling and how\n")
	b.WriteString("strongly. The Resources and Music tabs then suggest reading\n")
	b.WriteString("and songs that match your latest mood.\n\n")
	b.WriteString(CurrentTheme.Dim.Render("Everything stays on this machine.") + "\n\n")
	b.WriteString(CurrentTheme.Focused.Render("Press Enter to begin"))
	box := CurrentTheme.Dialog.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m MainModel) renderHeader() string {
	title := CurrentTheme.Header.Render("talk") + CurrentTheme.Dim.Render(" v"+versionLabel())
	if !m.hasLatest {
		return title + CurrentTheme.Dim.Render("  | no mood recorded yet")
	}
	latest := moodStyle(m.latest.Mood).Render(m.latest.Mood.String())
	return fmt.Sprintf("%s  | feeling %s %s", title, latest, CurrentTheme.Dim.Render(FormatIntensity(m.latest.Intensity)))
}

func (m MainModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabTitles {
		if i == m.tab {
			parts = append(parts, CurrentTheme.ActiveTab.Render(name))
		} else {
			parts = append(parts, CurrentTheme.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m MainModel) renderBody() string {
	if !m.loaded {
		return CurrentTheme.Dim.Render("Loading...")
	}
	switch m.tab {
	case config.TabResources:
		return m.renderResources()
	case config.TabMusic:
		return m.renderMusic()
	}
	return m.renderMoodLog()
}

func (m MainModel) renderMoodLog() string {
	if len(m.moods) == 0 {
		return CurrentTheme.Dim.Render("No moods recorded yet. Press m to log how you feel.")
	}
	n := len(m.moods)
	cursor := m.cursors[config.TabMoodLog]
	start, end := visibleWindow(n, cursor, config.MaxVisibleRows)
	compact := m.width > 0 && m.width < config.CompactModeThreshold

	var rows []string
	for i := start; i < end; i++ {
		// newest first
		e := m.moods[n-1-i]
		mood := moodStyle(e.Mood).Render(padRight(e.Mood.String(), 10))
		row := fmt.Sprintf("%5d  %s %s", e.Seq, mood, FormatIntensity(e.Intensity))
		if !compact {
			bar := m.progress.ViewAs(float64(e.Intensity) / float64(models.MaxIntensity))
			row += "  " + bar
			if !e.CreatedAt.IsZero() {
				row += "  " + CurrentTheme.Dim.Render(e.CreatedAt.Local().Format("Jan 02 15:04"))
			}
		}
		rows = append(rows, m.renderRow(row, i == cursor))
	}
	return strings.Join(rows, "\n")
}

func (m MainModel) renderResources() string {
	if len(m.resources) == 0 {
		return CurrentTheme.Dim.Render("No resources for this mood.")
	}
	cursor := m.cursors[config.TabResources]
	start, end := visibleWindow(len(m.resources), cursor, config.MaxVisibleRows)
	tw := titleWidth(m.width)
	compact := m.width > 0 && m.width < config.CompactModeThreshold

	var rows []string
	rows = append(rows, m.listCaption())
	for i := start; i < end; i++ {
		r := m.resources[i]
		row := padRight(truncate(r.Title, tw), tw)
		if !compact {
			row += "  " + CurrentTheme.Dim.Render(truncate(r.Description, tw))
		}
		if m.showAll {
			row = moodStyle(r.Mood).Render(padRight(r.Mood.String(), 10)) + row
		}
		rows = append(rows, m.renderRow(row, i == cursor))
	}
	return strings.Join(rows, "\n")
}

func (m MainModel) renderMusic() string {
	if len(m.music) == 0 {
		return CurrentTheme.Dim.Render("No songs for this mood.")
	}
	cursor := m.cursors[config.TabMusic]
	start, end := visibleWindow(len(m.music), cursor, config.MaxVisibleRows)
	tw := titleWidth(m.width)
	compact := m.width > 0 && m.width < config.CompactModeThreshold

	var rows []string
	rows = append(rows, m.listCaption())
	for i := start; i < end; i++ {
		s := m.music[i]
		row := padRight(truncate(s.Title, tw), tw)
		if !compact {
			row += "  " + CurrentTheme.Dim.Render(truncate(s.Artist, tw))
		}
		if m.showAll {
			row = moodStyle(s.Mood).Render(padRight(s.Mood.String(), 10)) + row
		}
		rows = append(rows, m.renderRow(row, i == cursor))
	}
	return strings.Join(rows, "\n")
}

func (m MainModel) listCaption() string {
	if m.showAll || !m.hasLatest {
		return CurrentTheme.Highlight.Render("All moods")
	}
	return CurrentTheme.Highlight.Render("For feeling " + m.latest.Mood.String())
}

func (m MainModel) renderRow(row string, selected bool) string {
	if selected {
		return CurrentTheme.Selected.Render("> " + row)
	}
	return CurrentTheme.Row.Render("  " + row)
}

func (m MainModel) renderModal() string {
	var b strings.Builder
	switch s := m.modal.(type) {
	case *ChooseMoodState:
		b.WriteString(CurrentTheme.Focused.Render("How are you feeling?") + "\n\n")
		for i, mood := range models.AllMoods() {
			label := fmt.Sprintf("%d. %s", int(mood), mood)
			if i == s.Cursor {
				b.WriteString(CurrentTheme.Selected.Render("> "+label) + "\n")
			} else {
				b.WriteString("  " + moodStyle(mood).Render(label) + "\n")
			}
		}
		b.WriteString("\n" + CurrentTheme.Dim.Render("[enter] next  [esc] cancel"))
	case *ChooseIntensityState:
		b.WriteString(CurrentTheme.Focused.Render("How intense is this feeling?") + "\n\n")
		b.WriteString(moodStyle(s.Mood).Render(s.Mood.String()) + "  ")
		b.WriteString(m.progress.ViewAs(float64(s.Intensity)/float64(models.MaxIntensity)) + "  ")
		b.WriteString(FormatIntensity(s.Intensity) + "\n\n")
		b.WriteString(CurrentTheme.Dim.Render("[←/→] adjust  [enter] save  [backspace] back  [esc] cancel"))
	case *ThemeState:
		b.WriteString(CurrentTheme.Focused.Render("Theme") + "\n\n")
		for i, name := range s.Names {
			label := Themes[name].Name
			if i == s.Cursor {
				b.WriteString(CurrentTheme.Selected.Render("> "+label) + "\n")
			} else {
				b.WriteString("  " + label + "\n")
			}
		}
	}
	return CurrentTheme.Dialog.Render(b.String())
}

func (m MainModel) renderFooter() string {
	h := m.help
	h.Width = m.width
	return CurrentTheme.Dim.Render(h.ShortHelpView(m.keys.shortHelp(m.tab)))
}
