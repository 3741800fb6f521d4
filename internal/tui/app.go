// Package tui is an interactive host for the find command: a read-only
// view of the searched file, a modal prompt and the results pane.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/dl/quickfind/internal/buffer"
	"github.com/dl/quickfind/internal/finder"
	"github.com/dl/quickfind/internal/host"
	"github.com/dl/quickfind/internal/matcher"
	"github.com/dl/quickfind/internal/output"
	"github.com/dl/quickfind/internal/surface"
	"github.com/dl/quickfind/internal/syntax"
)

type pane int

const (
	paneSource pane = iota
	paneResults
)

var (
	colorBorder  = lipgloss.Color("#374151")
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	stylePane        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder)
	stylePaneFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary)
	styleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleMuted       = lipgloss.NewStyle().Foreground(colorMuted)
	styleCursor      = lipgloss.NewStyle().Background(lipgloss.Color("#1F2937"))
	styleSelection   = lipgloss.NewStyle().Reverse(true)
)

// App is the bubbletea model. It owns one window of the surface registry.
type App struct {
	buf      *buffer.Buffer
	surfaces *surface.Registry
	window   host.WindowID
	logger   *log.Logger

	source  viewport.Model
	results viewport.Model
	prompt  textinput.Model

	promptDone func(string)
	focus      pane
	cursor     int // zero-based line in the source view
	status     string
	width      int
	height     int
	ready      bool
	last       *finder.Report
}

// NewApp creates the model for buf. Surfaces are created in window.
func NewApp(buf *buffer.Buffer, surfaces *surface.Registry, window host.WindowID, logger *log.Logger) *App {
	ti := textinput.New()
	ti.CharLimit = 256
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		buf:      buf,
		surfaces: surfaces,
		window:   window,
		logger:   logger,
		prompt:   ti,
	}
}

// Prompt shows the modal input. done runs from Update when the user
// confirms; cancelling drops it.
func (a *App) Prompt(message, initial string, done func(string)) {
	a.prompt.Prompt = message + " "
	a.prompt.SetValue(initial)
	a.prompt.CursorEnd()
	a.prompt.Focus()
	a.promptDone = done
}

// Prompting reports whether the modal input is open.
func (a *App) Prompting() bool {
	return a.promptDone != nil
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.status
}

// LastReport returns the report of the most recent find, if any.
func (a *App) LastReport() (finder.Report, bool) {
	if a.last == nil {
		return finder.Report{}, false
	}
	return *a.last, true
}

// Cursor returns the zero-based cursor line of the source view.
func (a *App) Cursor() int {
	return a.cursor
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.Prompting() {
			return a, a.updatePrompt(msg)
		}
		return a, a.updateKeys(msg)
	}
	return a, nil
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Confirm):
		done := a.promptDone
		text := a.prompt.Value()
		a.closePrompt()
		done(text)
		return nil
	case key.Matches(msg, Keys.CancelKey):
		a.closePrompt()
		a.status = "find cancelled"
		return nil
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return cmd
}

func (a *App) closePrompt() {
	a.promptDone = nil
	a.prompt.Blur()
	a.prompt.SetValue("")
}

func (a *App) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit
	case key.Matches(msg, Keys.Find):
		a.runFind()
	case key.Matches(msg, Keys.Select):
		a.selectLine()
	case key.Matches(msg, Keys.Clear):
		a.buf.SetSelections(nil)
		a.refreshSource()
	case key.Matches(msg, Keys.Tab):
		if a.focus == paneSource {
			a.focus = paneResults
		} else {
			a.focus = paneSource
		}
	case key.Matches(msg, Keys.Up):
		a.scroll(-1)
	case key.Matches(msg, Keys.Down):
		a.scroll(1)
	case key.Matches(msg, Keys.PageUp):
		a.scroll(-max(1, a.source.Height))
	case key.Matches(msg, Keys.PageDown):
		a.scroll(max(1, a.source.Height))
	}
	return nil
}

// runFind builds a command for this invocation; the App itself is the
// prompter so a missing selection opens the modal input.
func (a *App) runFind() {
	cmd := &finder.Command{
		Buffer:   a.buf,
		Selector: a.buf,
		Prompter: a,
		Surfaces: a.surfaces,
		Window:   a.window,
		Logger:   a.logger,
		OnDone:   a.onFindDone,
	}
	cmd.Run()
}

func (a *App) onFindDone(rep finder.Report, err error) {
	if err != nil {
		a.status = "find failed: " + err.Error()
		return
	}
	a.last = &rep
	a.status = fmt.Sprintf("%d matches on %d lines", rep.Hits(), rep.HitLines())
	a.refreshResults()
}

// selectLine selects the trimmed text of the cursor line.
func (a *App) selectLine() {
	if a.buf.LineCount() == 0 {
		return
	}
	text := a.buf.LineText(a.cursor)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		a.buf.SetSelections(nil)
		a.refreshSource()
		return
	}
	start := a.buf.LineStart(a.cursor) + strings.Index(text, trimmed)
	a.buf.SetSelections([]matcher.Span{{Begin: start, End: start + len(trimmed)}})
	a.refreshSource()
}

func (a *App) scroll(delta int) {
	if a.focus == paneResults {
		if delta < 0 {
			a.results.ScrollUp(-delta)
		} else {
			a.results.ScrollDown(delta)
		}
		return
	}
	a.cursor = max(0, min(a.buf.LineCount()-1, a.cursor+delta))
	if a.cursor < a.source.YOffset {
		a.source.SetYOffset(a.cursor)
	} else if a.source.Height > 0 && a.cursor >= a.source.YOffset+a.source.Height {
		a.source.SetYOffset(a.cursor - a.source.Height + 1)
	}
	a.refreshSource()
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	inner := max(1, width-2)
	// Two titles, two bordered panes and the status line.
	avail := max(2, height-7)
	srcH := avail / 2
	resH := avail - srcH
	if !a.ready {
		a.source = viewport.New(inner, srcH)
		a.results = viewport.New(inner, resH)
		a.ready = true
	} else {
		a.source.Width, a.source.Height = inner, srcH
		a.results.Width, a.results.Height = inner, resH
	}
	a.prompt.Width = max(10, width-4)
	a.refreshSource()
	a.refreshResults()
}

func (a *App) refreshSource() {
	if !a.ready {
		return
	}
	var sel []matcher.Span
	if s := a.buf.Selections(); len(s) == 1 {
		sel = s
	}

	var b strings.Builder
	for i := 0; i < a.buf.LineCount(); i++ {
		text := a.buf.LineText(i)
		line := fmt.Sprintf("%5d  %s", i+1, renderSelection(text, a.buf.LineStart(i), sel))
		if i == a.cursor {
			line = styleCursor.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	a.source.SetContent(b.String())
}

func renderSelection(text string, offset int, sel []matcher.Span) string {
	if len(sel) == 0 {
		return text
	}
	b, e := sel[0].Begin-offset, sel[0].End-offset
	if e <= 0 || b >= len(text) {
		return text
	}
	b, e = max(b, 0), min(e, len(text))
	return text[:b] + styleSelection.Render(text[b:e]) + text[e:]
}

func (a *App) refreshResults() {
	if !a.ready {
		return
	}
	s, ok := a.surfaces.Lookup(a.window, finder.ResultsSurface)
	if !ok {
		a.results.SetContent(styleMuted.Render("  press f to find in file"))
		return
	}
	rs, ok := syntax.Lookup(s.Options().Syntax)
	styles := output.NoStyles()
	if ok {
		styles = output.NewStyles(rs, io.Discard)
	}
	f := output.NewTextFormatter(styles)
	data := f.Format(nil, output.Result{
		Content: s.Content(),
		Regions: s.Regions(finder.HighlightKey),
	})
	a.results.SetContent(string(data))
	a.results.GotoTop()
}

func (a *App) View() string {
	if !a.ready {
		return "loading..."
	}

	srcStyle, resStyle := stylePane, stylePane
	if a.focus == paneSource {
		srcStyle = stylePaneFocused
	} else {
		resStyle = stylePaneFocused
	}

	title := styleTitle.Render(a.buf.Path())
	resTitle := styleTitle.Render(finder.ResultsSurface)
	if name, ok := a.surfaces.Revealed(a.window); !ok || name != finder.ResultsSurface {
		resTitle = styleMuted.Render(finder.ResultsSurface)
	}

	var bottom string
	if a.Prompting() {
		bottom = a.prompt.View()
	} else {
		help := "f find  s select line  esc clear  tab switch  q quit"
		bottom = styleMuted.Render(help)
		if a.status != "" {
			bottom = a.status + "  " + bottom
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		srcStyle.Render(a.source.View()),
		resTitle,
		resStyle.Render(a.results.View()),
		bottom,
	)
}

var (
	_ tea.Model     = (*App)(nil)
	_ host.Prompter = (*App)(nil)
)
