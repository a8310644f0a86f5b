package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/five82/loglens/internal/logparse"
)

func TestColorize_Always(t *testing.T) {
	f := New(&bytes.Buffer{}, ColorAlways)

	tests := []struct {
		level string
		want  string
	}{
		{level: "ERROR", want: "\x1b[91mERROR\x1b[0m"},
		{level: "WARNING", want: "\x1b[93mWARNING\x1b[0m"},
		{level: "INFO", want: "\x1b[92mINFO\x1b[0m"},
		{level: "DEBUG", want: "DEBUG"},
		{level: "WARN", want: "WARN"},
		{level: "CRITICAL", want: "CRITICAL"},
		{level: "error", want: "error"},
		{level: "Info", want: "Info"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := f.Colorize(tt.level); got != tt.want {
				t.Fatalf("Colorize(%q) = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestColorize_NeverEmitsNoEscapes(t *testing.T) {
	f := New(&bytes.Buffer{}, ColorNever)
	for _, level := range []string{"ERROR", "WARNING", "INFO", "DEBUG"} {
		got := f.Colorize(level)
		if got != level {
			t.Fatalf("Colorize(%q) = %q, want %q", level, got, level)
		}
	}
	if f.Enabled() {
		t.Fatalf("Enabled() = true, want false")
	}
}

func TestColorize_AutoOnNonTerminalIsPlain(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "0")
	f := New(&bytes.Buffer{}, ColorAuto)
	if got := f.Colorize("ERROR"); got != "ERROR" {
		t.Fatalf("Colorize(ERROR) = %q, want plain ERROR", got)
	}
}

func TestFormatEntry(t *testing.T) {
	f := New(&bytes.Buffer{}, ColorAlways)

	got := f.FormatEntry(logparse.Entry{Date: "2023-04-15 10:34:23", Level: "INFO", Message: "Starting application..."})
	want := "2023-04-15 10:34:23 \x1b[92mINFO\x1b[0m Starting application..."
	if got != want {
		t.Fatalf("FormatEntry = %q, want %q", got, want)
	}

	got = f.FormatEntry(logparse.Entry{Date: "2023-04-15 10:34:25", Level: "DEBUG", Message: "cache  warm"})
	want = "2023-04-15 10:34:25 DEBUG cache  warm"
	if got != want {
		t.Fatalf("FormatEntry = %q, want %q", got, want)
	}
}

func TestFormatEntry_ColorsOnlyTheLevel(t *testing.T) {
	f := New(&bytes.Buffer{}, ColorAlways)
	got := f.FormatEntry(logparse.Entry{Date: "2023-04-15 10:34:24", Level: "ERROR", Message: "ERROR in ERROR handler"})
	if !strings.HasPrefix(got, "2023-04-15 10:34:24 \x1b[91m") {
		t.Fatalf("FormatEntry = %q, want uncolored date prefix", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m ERROR in ERROR handler") {
		t.Fatalf("FormatEntry = %q, want uncolored message suffix", got)
	}
	if n := strings.Count(got, "\x1b["); n != 2 {
		t.Fatalf("FormatEntry has %d escape sequences, want 2: %q", n, got)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{in: "", want: ColorAlways},
		{in: "always", want: ColorAlways},
		{in: " Auto ", want: ColorAuto},
		{in: "NEVER", want: ColorNever},
		{in: "sometimes", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseColorMode(%q) returned nil error, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseColorMode(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
