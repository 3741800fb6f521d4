package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/dl/quickfind/internal/buffer"
	"github.com/dl/quickfind/internal/finder"
	"github.com/dl/quickfind/internal/host"
	"github.com/dl/quickfind/internal/input"
	"github.com/dl/quickfind/internal/output"
	"github.com/dl/quickfind/internal/surface"
	"github.com/dl/quickfind/internal/syntax"
	"github.com/dl/quickfind/internal/tui"
)

// stdinName is the buffer path shown when the file is read from stdin.
const stdinName = "<stdin>"

// Streams are the standard streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes quickfind with the given config on the process streams.
// Returns exit code: 0 = hit found, 1 = no hit or cancelled, 2 = error.
func Run(cfg Config) int {
	return RunWith(cfg, Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// RunWith is Run on explicit streams.
func RunWith(cfg Config, s Streams) int {
	logger := log.NewWithOptions(s.Err, log.Options{
		Level: cfg.LogLevel,
	})

	buf, err := openBuffer(cfg, s.In)
	if err != nil {
		logger.Error("open failed", "path", cfg.Path, "err", err)
		return 2
	}
	defer buf.Close()
	buf.SetSelections(cfg.Selections)

	window := host.WindowID(cfg.Window)
	surfaces := surface.NewRegistry(window)

	if cfg.Interactive {
		return runInteractive(buf, surfaces, window, logger)
	}

	var (
		rep     finder.Report
		findErr error
		done    bool
	)
	cmd := &finder.Command{
		Buffer:   buf,
		Selector: buf,
		Surfaces: surfaces,
		Window:   window,
		Logger:   logger,
		OnDone: func(r finder.Report, err error) {
			rep, findErr, done = r, err, true
		},
	}
	if cfg.Text != "" {
		cmd.Selector = textSelector(cfg.Text)
	}
	if cfg.Path != StdinPath {
		cmd.Prompter = newLinePrompter(s.In, s.Err)
	}
	cmd.Run()

	switch {
	case !done:
		logger.Debug("nothing searched")
		return 1
	case findErr != nil:
		return 2
	}

	sf, ok := surfaces.Lookup(window, finder.ResultsSurface)
	if !ok {
		logger.Error("results surface missing", "window", window)
		return 2
	}
	result := output.Result{
		Report:  rep,
		Content: sf.Content(),
		Regions: sf.Regions(finder.HighlightKey),
	}

	formatter, err := newFormatter(cfg, sf.Options().Syntax, s.Out)
	if err != nil {
		logger.Error("formatter", "err", err)
		return 2
	}
	if err := writeOut(s.Out, formatter.Format(nil, result)); err != nil {
		logger.Error("write failed", "err", err)
		return 2
	}

	if result.HasMatch() {
		return 0
	}
	return 1
}

func openBuffer(cfg Config, stdin io.Reader) (*buffer.Buffer, error) {
	opts := buffer.Options{Engine: cfg.Engine, IgnoreCase: cfg.IgnoreCase}
	if cfg.Path == StdinPath {
		return buffer.Open(input.NewStdinReader(stdin), stdinName, opts)
	}
	return buffer.Open(input.NewAdaptiveReader(cfg.MmapThreshold), cfg.Path, opts)
}

func runInteractive(buf *buffer.Buffer, surfaces *surface.Registry, window host.WindowID, logger *log.Logger) int {
	app := tui.NewApp(buf, surfaces, window, logger)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui failed", "err", err)
		return 2
	}
	if rep, ok := app.LastReport(); ok && rep.Hits() > 0 {
		return 0
	}
	return 1
}

func newFormatter(cfg Config, syntaxName string, out io.Writer) (output.Formatter, error) {
	if cfg.JSONOutput {
		return output.NewJSONFormatter(), nil
	}
	if !useColor(cfg.Color, out) {
		return output.NewTextFormatter(output.NoStyles()), nil
	}
	rs, ok := syntax.Lookup(syntaxName)
	if !ok {
		return nil, fmt.Errorf("unknown syntax %q", syntaxName)
	}
	return output.NewTextFormatter(output.NewStyles(rs, out)), nil
}

func useColor(mode ColorMode, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && output.IsTerminal(f.Fd())
}

// writeOut writes data with writev when out is a file.
func writeOut(out io.Writer, data []byte) error {
	if f, ok := out.(*os.File); ok {
		return output.NewFileWriter(f).Write(data)
	}
	_, err := out.Write(data)
	return err
}
