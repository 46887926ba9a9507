package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/akyairhashvil/talk/internal/catalog"
	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/database"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/akyairhashvil/talk/internal/reminder"
	"github.com/akyairhashvil/talk/internal/report"
	"github.com/akyairhashvil/talk/internal/tui"
	"github.com/akyairhashvil/talk/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const usage = `usage: talk [command]

With no command, talk opens the journal (or prints the log when not on a terminal).

commands:
  log <mood> <intensity>   record how you feel (mood 1-6 or name, intensity 1-6)
  list                     print the mood log
  report [file.pdf]        write a PDF of the mood history
  export [file.json]       write the whole journal as JSON (stdout by default)
  seed                     load the bundled resources and music again
  remind [duration]        show or set the reminder delay (e.g. 30m)
`

var (
	errUsage           = errors.New("usage")
	errInvalidArgument = errors.New("invalid argument")
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}

	interactive := len(args) == 0 && term.IsTerminal(int(os.Stdout.Fd()))
	flush, err := util.InitLogger(util.LogOptions{
		Path:    cfg.LogPath(),
		Level:   cfg.LogLevel,
		Console: !interactive,
		Stderr:  stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer flush()

	store, err := database.Shared(ctx, database.Options{Driver: cfg.DBDriver, DSN: cfg.DBDSN})
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer func() {
		if err := database.CloseShared(); err != nil {
			util.LogError("close store", err)
		}
	}()

	_, launchedBefore, err := store.GetSetting(ctx, config.SettingLaunchedBefore)
	if err != nil {
		util.LogError("read launch flag", err)
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	if _, err := catalog.Seed(ctx, store, false); err != nil {
		util.LogError("seed catalogs", err)
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}

	if len(args) == 0 {
		if !interactive {
			err = cmdList(ctx, store, stdout)
		} else {
			delay, derr := reminderDelay(ctx, store, cfg.ReminderDelay)
			if derr != nil {
				util.LogError("read reminder delay", derr)
			}
			err = runTUI(ctx, store, tui.Options{
				FirstLaunch:   !launchedBefore,
				ReminderDelay: delay,
			})
		}
	} else {
		err = dispatch(ctx, store, args, stdout)
	}

	if errors.Is(err, errUsage) {
		fmt.Fprint(stderr, usage)
		return 2
	}
	if err != nil {
		if !isInputError(err) {
			util.LogError("command failed", err)
		}
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

// isInputError reports whether err comes from bad arguments rather than a
// failure worth logging.
func isInputError(err error) bool {
	for _, target := range []error{
		errUsage,
		errInvalidArgument,
		models.ErrInvalidMood,
		models.ErrInvalidIntensity,
		database.ErrConstraintViolation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func dispatch(ctx context.Context, store *database.Database, args []string, w io.Writer) error {
	switch args[0] {
	case "log":
		return cmdLog(ctx, store, w, args[1:])
	case "list":
		return cmdList(ctx, store, w)
	case "report":
		return cmdReport(ctx, store, w, args[1:], time.Now())
	case "export":
		return cmdExport(ctx, store, w, args[1:])
	case "seed":
		return cmdSeed(ctx, store, w)
	case "remind":
		return cmdRemind(ctx, store, w, args[1:])
	}
	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

func runTUI(ctx context.Context, store *database.Database, opts tui.Options) error {
	sched := reminder.New()
	defer sched.Stop()

	p := tea.NewProgram(tui.NewMainModel(ctx, store, sched, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func cmdLog(ctx context.Context, store database.MoodRepository, w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("log needs a mood and an intensity: %w", errUsage)
	}
	mood, err := models.ParseMood(args[0])
	if err != nil {
		return err
	}
	intensity, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return fmt.Errorf("intensity %q: %w", args[1], models.ErrInvalidIntensity)
	}
	seq, err := store.RecordMood(ctx, mood, intensity)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Recorded day %d: %s (%d/%d)\n", seq, mood, intensity, models.MaxIntensity)
	return nil
}

func cmdList(ctx context.Context, store database.MoodRepository, w io.Writer) error {
	entries, err := store.GetAllMoods(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No moods recorded yet.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tMOOD\tINTENSITY\tRECORDED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d/%d\t%s\n", e.Seq, e.Mood, e.Intensity, models.MaxIntensity, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	s := report.Summarize(entries)
	fmt.Fprintf(w, "\n%d entries, most often %s\n", s.Total, s.Dominant)
	return nil
}

func cmdReport(ctx context.Context, store database.MoodRepository, w io.Writer, args []string, now time.Time) error {
	if len(args) > 1 {
		return fmt.Errorf("report takes at most one path: %w", errUsage)
	}
	entries, err := store.GetAllMoods(ctx)
	if err != nil {
		return err
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	written, err := report.WriteFile(path, entries, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "PDF Report generated: %s\n", written)
	return nil
}

type journalExporter interface {
	ExportJournal(ctx context.Context) ([]byte, error)
}

func cmdExport(ctx context.Context, store journalExporter, w io.Writer, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("export takes at most one path: %w", errUsage)
	}
	raw, err := store.ExportJournal(ctx)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	if err := os.WriteFile(args[0], raw, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(w, "Journal exported: %s\n", args[0])
	return nil
}

func cmdSeed(ctx context.Context, store catalog.Seeder, w io.Writer) error {
	res, err := catalog.Seed(ctx, store, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %d resources and %d songs\n", res.Resources, res.Music)
	return nil
}

func cmdRemind(ctx context.Context, store database.SettingsRepository, w io.Writer, args []string) error {
	switch len(args) {
	case 0:
		d, err := reminderDelay(ctx, store, config.DefaultReminderDelay)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Reminder delay: %s\n", d)
		return nil
	case 1:
		d, err := time.ParseDuration(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("reminder delay %q is not a duration: %w", args[0], errInvalidArgument)
		}
		d = config.ClampReminderDelay(d)
		if err := store.SetSetting(ctx, config.SettingReminderDelay, d.String()); err != nil {
			return err
		}
		fmt.Fprintf(w, "Reminder delay set to %s\n", d)
		return nil
	}
	return fmt.Errorf("remind takes at most one duration: %w", errUsage)
}

// reminderDelay prefers the stored setting over the configured default. A
// read failure returns the fallback along with the error.
func reminderDelay(ctx context.Context, store database.SettingsRepository, fallback time.Duration) (time.Duration, error) {
	raw, ok, err := store.GetSetting(ctx, config.SettingReminderDelay)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		util.Logger.Warnw("ignoring stored reminder delay", "value", raw, "error", err)
		return fallback, nil
	}
	return config.ClampReminderDelay(d), nil
}
