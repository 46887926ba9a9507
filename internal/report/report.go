// Package report renders the mood history as a printable PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/akyairhashvil/talk/internal/util"
	"github.com/go-pdf/fpdf"
)

// MoodStat aggregates the entries recorded for one mood.
type MoodStat struct {
	Mood         models.Mood
	Count        int
	AvgIntensity float64
}

// Summary is the aggregate view of a mood log.
type Summary struct {
	Total    int
	ByMood   []MoodStat // one per mood, in declared order
	Dominant models.Mood
	Latest   *models.MoodEntry
}

// Summarize computes per-mood counts and average intensity. Dominant is the
// most frequent mood, ties going to the one recorded last; zero when empty.
func Summarize(entries []models.MoodEntry) Summary {
	counts := make(map[models.Mood]int)
	sums := make(map[models.Mood]int)
	lastSeen := make(map[models.Mood]int)
	var latest *models.MoodEntry
	for i := range entries {
		e := entries[i]
		counts[e.Mood]++
		sums[e.Mood] += e.Intensity
		lastSeen[e.Mood] = i
		if latest == nil || e.Seq > latest.Seq {
			latest = &entries[i]
		}
	}

	s := Summary{Total: len(entries), Latest: latest}
	best := -1
	for _, m := range models.AllMoods() {
		st := MoodStat{Mood: m, Count: counts[m]}
		if st.Count > 0 {
			st.AvgIntensity = float64(sums[m]) / float64(st.Count)
			if s.Dominant == 0 || st.Count > best || (st.Count == best && lastSeen[m] > lastSeen[s.Dominant]) {
				s.Dominant = m
				best = st.Count
			}
		}
		s.ByMood = append(s.ByMood, st)
	}
	return s
}

// WritePDF renders the history table followed by the summary.
func WritePDF(w io.Writer, entries []models.MoodEntry, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Mood history", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Mood History")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	headers := []string{"Day", "Mood", "Intensity", "Recorded"}
	widths := []float64{20, 45, 30, 60}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	if len(entries) == 0 {
		pdf.CellFormat(sum(widths), 8, "No moods recorded yet.", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for _, e := range entries {
		recorded := ""
		if !e.CreatedAt.IsZero() {
			recorded = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", e.Seq), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[1], 7, e.Mood.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d / %d", e.Intensity, models.MaxIntensity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, recorded, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary
	s := Summarize(entries)
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total entries: %d", s.Total))
	pdf.Ln(6)
	if s.Dominant != 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Most frequent mood: %s", s.Dominant))
		pdf.Ln(6)
	}
	pdf.Ln(2)
	for _, st := range s.ByMood {
		line := fmt.Sprintf("  %-10s %3d", st.Mood, st.Count)
		if st.Count > 0 {
			line += fmt.Sprintf("   avg intensity %.1f", st.AvgIntensity)
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// DefaultPath names a report file under the user's documents folder.
func DefaultPath(now time.Time) string {
	return filepath.Join(util.ReportsDir(config.AppName), fmt.Sprintf("mood_report_%s.pdf", now.Format("20060102_150405")))
}

// WriteFile renders the report into path, creating parent directories, and
// returns the absolute path written.
func WriteFile(path string, entries []models.MoodEntry, now time.Time) (string, error) {
	if path == "" {
		path = DefaultPath(now)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}
	if err := WritePDF(f, entries, now); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return abs, nil
}

func sum(v []float64) float64 {
	var t float64
	for _, x := range v {
		t += x
	}
	return t
}
