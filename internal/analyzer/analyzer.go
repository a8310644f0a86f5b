// Package analyzer runs the single pass over a log file and writes the
// summary report.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/loglens/internal/logfile"
	"github.com/five82/loglens/internal/logger"
	"github.com/five82/loglens/internal/logparse"
	"github.com/five82/loglens/internal/render"
	"github.com/five82/loglens/internal/tally"
)

// Options configures one analysis run.
type Options struct {
	Path string
	// Level keeps only entries whose level equals strings.ToUpper(Level).
	// Empty disables filtering.
	Level string
	// MaxLineBytes caps a single line. Zero uses logfile.DefaultMaxLineBytes.
	MaxLineBytes int
}

// Report is the outcome of a run.
type Report struct {
	Entries  []logparse.Entry
	Counts   tally.Counts
	Unparsed int
	Filtered int
}

// Analyzer writes reports using a fixed Formatter.
type Analyzer struct {
	formatter *render.Formatter
}

// New returns an Analyzer that formats entries with f.
func New(f *render.Formatter) *Analyzer {
	return &Analyzer{formatter: f}
}

// Run reads opts.Path once, writing "Unparsed: ..." lines to w as they are
// met, then the level summary and the formatted entries. If the file cannot
// be opened nothing is written and the error wraps ErrFileNotFound or
// ErrFileUnreadable.
func (a *Analyzer) Run(ctx context.Context, opts Options, w io.Writer) (*Report, error) {
	log := logger.Get(ctx)

	file, err := logfile.Open(opts.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, opts.Path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	defer file.Close()

	filter := ""
	if opts.Level != "" {
		filter = strings.ToUpper(opts.Level)
	}
	log.Debugw("scanning log", "path", opts.Path, "filter", filter)

	out := &errWriter{w: w}
	report := &Report{}
	lineNo := 0
	err = logfile.Scan(file, opts.MaxLineBytes, func(raw string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := logparse.Trim(raw)

		entry, ok := logparse.ParseLine(line)
		if !ok {
			report.Unparsed++
			log.Debugw("unparsed line", "line", lineNo)
			out.printf("Unparsed: %s\n", line)
			if out.err != nil {
				return fmt.Errorf("write report: %w", out.err)
			}
			return nil
		}
		if filter != "" && entry.Level != filter {
			report.Filtered++
			return nil
		}
		report.Entries = append(report.Entries, entry)
		report.Counts.Increment(entry.Level)
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.writeReport(out, report)
	if out.err != nil {
		return nil, fmt.Errorf("write report: %w", out.err)
	}

	log.Debugw("scan complete",
		"lines", lineNo,
		"entries", len(report.Entries),
		"unparsed", report.Unparsed,
		"filtered", report.Filtered,
		"levels", report.Counts.Levels(),
	)
	return report, nil
}

func (a *Analyzer) writeReport(out *errWriter, report *Report) {
	out.printf("\nLog Summary:\n")
	for _, level := range report.Counts.Levels() {
		out.printf("%s: %d\n", level, report.Counts.Count(level))
	}

	out.printf("\nFormatted Log Entries:\n")
	for _, entry := range report.Entries {
		out.printf("%s\n", a.formatter.FormatEntry(entry))
	}
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
