package tui

import (
	"testing"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	got := truncate("The Science of Sadness", 10)
	if ansi.StringWidth(got) > 10 {
		t.Fatalf("truncated string too wide: %q", got)
	}
	if got == "The Science of Sadness" {
		t.Fatalf("expected truncation")
	}
	if truncate("anything", 0) != "" {
		t.Fatalf("expected empty string for zero width")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Sad", 6); got != "Sad   " {
		t.Fatalf("unexpected padding %q", got)
	}
	if got := padRight("Depressed", 3); got != "Depressed" {
		t.Fatalf("padRight should never cut, got %q", got)
	}
}

func TestFormatEntry(t *testing.T) {
	if got := FormatEntry(7, models.MoodScared, 2); got != "Day 7: Scared (2/6)" {
		t.Fatalf("unexpected entry format %q", got)
	}
}

func TestTitleWidth(t *testing.T) {
	if got := titleWidth(0); got != config.TargetTitleWidth {
		t.Fatalf("expected target width for unknown terminal, got %d", got)
	}
	if got := titleWidth(12); got != config.MinColumnWidth {
		t.Fatalf("expected minimum width, got %d", got)
	}
	if got := titleWidth(200); got != config.TargetTitleWidth {
		t.Fatalf("expected capped width, got %d", got)
	}
	if got := titleWidth(60); got != 30 {
		t.Fatalf("expected half width, got %d", got)
	}
}

func TestVisibleWindow(t *testing.T) {
	cases := []struct {
		n, cursor, max int
		start, end     int
	}{
		{5, 0, 10, 0, 5},
		{20, 0, 10, 0, 10},
		{20, 9, 10, 0, 10},
		{20, 10, 10, 1, 11},
		{20, 19, 10, 10, 20},
	}
	for _, c := range cases {
		start, end := visibleWindow(c.n, c.cursor, c.max)
		if start != c.start || end != c.end {
			t.Fatalf("visibleWindow(%d,%d,%d) = %d,%d want %d,%d", c.n, c.cursor, c.max, start, end, c.start, c.end)
		}
	}
}
