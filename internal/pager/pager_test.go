package pager

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return pm, cmd
}

func sampleContent() string {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		switch i {
		case 5, 25:
			fmt.Fprintf(&b, "2023-10-01 12:00:%02d \x1b[91mERROR\x1b[0m boom %d\n", i, i)
		default:
			fmt.Fprintf(&b, "line %d\n", i)
		}
	}
	return b.String()
}

func sized(t *testing.T) Model {
	t.Helper()
	m, _ := update(t, New("app.log", sampleContent()), tea.WindowSizeMsg{Width: 80, Height: 10})
	return m
}

func TestView_BeforeSize(t *testing.T) {
	if got := New("app.log", "x").View(); got != "Loading..." {
		t.Fatalf("View() = %q, want %q", got, "Loading...")
	}
}

func TestView_ShowsContentAndStatus(t *testing.T) {
	m := sized(t)
	view := m.View()

	if !strings.Contains(view, "line 0") {
		t.Fatalf("View() missing first line:\n%s", view)
	}
	if strings.Contains(view, "line 20") {
		t.Fatalf("View() shows lines beyond the viewport:\n%s", view)
	}
	if !strings.Contains(view, "app.log") {
		t.Fatalf("View() missing title:\n%s", view)
	}
	if m.viewport.Height != 9 {
		t.Fatalf("viewport height = %d, want 9", m.viewport.Height)
	}
}

func TestNavigation(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, runes("j"))
	if m.viewport.YOffset != 1 {
		t.Fatalf("after j YOffset = %d, want 1", m.viewport.YOffset)
	}
	m, _ = update(t, m, runes("k"))
	if m.viewport.YOffset != 0 {
		t.Fatalf("after k YOffset = %d, want 0", m.viewport.YOffset)
	}
	m, _ = update(t, m, runes("G"))
	if !m.viewport.AtBottom() {
		t.Fatalf("after G viewport not at bottom (YOffset %d)", m.viewport.YOffset)
	}
	m, _ = update(t, m, runes("g"))
	if !m.viewport.AtTop() {
		t.Fatalf("after g viewport not at top (YOffset %d)", m.viewport.YOffset)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if m.viewport.YOffset == 0 {
		t.Fatalf("after ctrl+d YOffset = 0, want it to move down")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := update(t, sized(t), msg)
			if cmd == nil {
				t.Fatalf("Update(%q) returned nil cmd, want tea.Quit", msg.String())
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatalf("Update(%q) cmd did not quit", msg.String())
			}
		})
	}
}

func TestSearch(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, runes("/"))
	if !m.searchActive {
		t.Fatalf("searchActive = false after /")
	}
	m, _ = update(t, m, runes("error"))
	if got := m.searchInput.Value(); got != "error" {
		t.Fatalf("search input = %q, want %q", got, "error")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.searchActive {
		t.Fatalf("searchActive = true after enter")
	}
	if len(m.searchMatches) != 2 || m.searchMatches[0] != 5 || m.searchMatches[1] != 25 {
		t.Fatalf("searchMatches = %v, want [5 25]", m.searchMatches)
	}
	if !strings.Contains(m.View(), "/error 1/2") {
		t.Fatalf("status missing match position:\n%s", m.View())
	}
	if m.viewport.YOffset != 1 {
		t.Fatalf("YOffset = %d, want 1 (match centered)", m.viewport.YOffset)
	}

	m, _ = update(t, m, runes("n"))
	if m.searchMatchIdx != 1 {
		t.Fatalf("after n searchMatchIdx = %d, want 1", m.searchMatchIdx)
	}
	m, _ = update(t, m, runes("n"))
	if m.searchMatchIdx != 0 {
		t.Fatalf("n did not wrap, searchMatchIdx = %d", m.searchMatchIdx)
	}
	m, _ = update(t, m, runes("N"))
	if m.searchMatchIdx != 1 {
		t.Fatalf("after N searchMatchIdx = %d, want 1", m.searchMatchIdx)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatalf("esc with an active search should clear it, not quit")
	}
	if m.searchRegex != nil || m.searchMatches != nil {
		t.Fatalf("search not cleared: regex=%v matches=%v", m.searchRegex, m.searchMatches)
	}
}

func TestSearch_IgnoresEscapeSequences(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("91m"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.searchMatches) != 0 {
		t.Fatalf("searchMatches = %v, want none", m.searchMatches)
	}
	if !strings.Contains(m.View(), "Pattern not found: 91m") {
		t.Fatalf("status missing not-found message:\n%s", m.View())
	}
}

func TestSearch_InvalidPattern(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("("))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.searchRegex != nil {
		t.Fatalf("searchRegex set for invalid pattern")
	}
	if !strings.Contains(m.View(), "Invalid pattern") {
		t.Fatalf("status missing invalid pattern message:\n%s", m.View())
	}
}

func TestSearch_EscapeCancelsInput(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("boom"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if cmd != nil {
		t.Fatalf("esc during input returned a cmd")
	}
	if m.searchActive || m.searchInput.Value() != "" {
		t.Fatalf("search input not cancelled: active=%v value=%q", m.searchActive, m.searchInput.Value())
	}
}
