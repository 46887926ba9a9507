package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// truncate shortens s to width cells, ANSI aware.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FormatIntensity formats an intensity as "n/6".
func FormatIntensity(i int) string {
	return fmt.Sprintf("%d/%d", i, models.MaxIntensity)
}

// FormatEntry is the one-line form of a mood entry used in status messages.
func FormatEntry(seq int64, mood models.Mood, intensity int) string {
	return fmt.Sprintf("Day %d: %s (%s)", seq, mood, FormatIntensity(intensity))
}

// titleWidth picks the title column width for the given terminal width.
func titleWidth(total int) int {
	if total <= 0 {
		return config.TargetTitleWidth
	}
	w := total / 2
	if w > config.TargetTitleWidth {
		w = config.TargetTitleWidth
	}
	if w < config.MinColumnWidth {
		w = config.MinColumnWidth
	}
	return w
}

// visibleWindow returns the [start, end) slice bounds that keep cursor in view.
func visibleWindow(n, cursor, max int) (int, int) {
	if n <= max {
		return 0, n
	}
	start := 0
	if cursor >= max {
		start = cursor - max + 1
	}
	end := start + max
	if end > n {
		end = n
	}
	return start, end
}
