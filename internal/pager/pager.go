// Package pager shows a finished report in a scrollable, searchable
// terminal view.
package pager

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Model is the bubbletea model for the pager.
type Model struct {
	title string
	lines []string
	plain []string // lines without escape sequences, for searching

	keys     keyMap
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	searchActive   bool
	searchInput    textinput.Model
	searchQuery    string
	searchRegex    *regexp.Regexp
	searchMatches  []int
	searchMatchIdx int
	searchErr      string

	statusStyle lipgloss.Style
	matchStyle  lipgloss.Style
}

// New returns a pager model for content. The title is shown in the status
// line.
func New(title, content string) Model {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = ansi.Strip(line)
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/"
	ti.CharLimit = 100

	return Model{
		title:       title,
		lines:       lines,
		plain:       plain,
		keys:        defaultKeyMap(),
		searchInput: ti,
		statusStyle: lipgloss.NewStyle().Reverse(true),
		matchStyle:  lipgloss.NewStyle().Reverse(true),
	}
}

// Run shows content until the user quits or ctx is cancelled.
func Run(ctx context.Context, title, content string, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(title, content),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-1, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.searchRegex != nil {
			m.clearSearch()
			m.refresh()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchErr = ""
		m.searchInput.SetValue("")
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextMatch):
		m.stepMatch(1)
	case key.Matches(msg, m.keys.PrevMatch):
		m.stepMatch(-1)

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	}
	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.searchInput.Value()
		m.searchActive = false
		m.searchInput.Blur()
		if query == "" {
			return m, nil
		}

		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			m.searchErr = "Invalid pattern: " + query
			return m, nil
		}
		m.searchRegex = re
		m.searchQuery = query
		m.findMatches()
		if len(m.searchMatches) > 0 {
			m.searchMatchIdx = 0
			m.refresh()
			m.scrollToMatch()
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape), msg.Type == tea.KeyCtrlC:
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) clearSearch() {
	m.searchRegex = nil
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchMatchIdx = 0
}

func (m *Model) findMatches() {
	m.searchMatches = nil
	for i, line := range m.plain {
		if m.searchRegex.MatchString(line) {
			m.searchMatches = append(m.searchMatches, i)
		}
	}
}

// stepMatch moves delta matches forward, wrapping at either end.
func (m *Model) stepMatch(delta int) {
	n := len(m.searchMatches)
	if n == 0 {
		return
	}
	m.searchMatchIdx = ((m.searchMatchIdx+delta)%n + n) % n
	m.refresh()
	m.scrollToMatch()
}

// scrollToMatch centers the current match when possible.
func (m *Model) scrollToMatch() {
	if m.searchMatchIdx >= len(m.searchMatches) {
		return
	}
	target := m.searchMatches[m.searchMatchIdx]
	m.viewport.SetYOffset(max(target-m.viewport.Height/2, 0))
}

// refresh re-renders viewport content, highlighting the current match.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	active := -1
	if len(m.searchMatches) > 0 {
		active = m.searchMatches[m.searchMatchIdx]
	}

	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == active {
			b.WriteString(m.matchStyle.Render(m.plain[i]))
			continue
		}
		b.WriteString(line)
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(b.String())
	m.viewport.SetYOffset(offset)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if m.searchActive {
		return m.searchInput.View()
	}

	parts := []string{m.title, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)}
	switch {
	case m.searchErr != "":
		parts = append(parts, m.searchErr)
	case m.searchRegex != nil && len(m.searchMatches) == 0:
		parts = append(parts, "Pattern not found: "+m.searchQuery)
	case m.searchRegex != nil:
		parts = append(parts, fmt.Sprintf("/%s %d/%d", m.searchQuery, m.searchMatchIdx+1, len(m.searchMatches)))
	}
	parts = append(parts, "q quit · / search")

	line := strings.Join(parts, "  ")
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return m.statusStyle.Render(line)
}
