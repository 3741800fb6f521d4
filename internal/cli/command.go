package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dl/quickfind/internal/input"
	"github.com/dl/quickfind/internal/matcher"
)

// Execute parses args, runs quickfind and returns its exit code.
func Execute(args []string) int {
	code := 0
	cmd := NewRootCommand(func(cfg Config) error {
		code = Run(cfg)
		return nil
	})
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 2
	}
	return code
}

// NewRootCommand builds the quickfind command. run receives the validated
// config.
func NewRootCommand(run func(Config) error) *cobra.Command {
	var (
		v   flagValues
		cfg = Config{Window: "main"}
	)

	cmd := &cobra.Command{
		Use:   "quickfind FILE [TEXT]",
		Short: "Show every line of a file containing a literal text, with context",
		Long: `quickfind searches FILE for TEXT and renders each hit line with two
lines of context on either side. Without TEXT the single --selection is used,
otherwise the search text is read from a prompt. FILE "-" reads stdin.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Path = args[0]
			if len(args) == 2 {
				cfg.Text = args[1]
			}

			var err error
			if cfg.Engine, err = matcher.ParseEngine(v.engine); err != nil {
				return err
			}
			if cfg.Color, err = ParseColorMode(v.color); err != nil {
				return err
			}
			if cfg.LogLevel, err = log.ParseLevel(v.logLevel); err != nil {
				return fmt.Errorf("invalid log level %q: %w", v.logLevel, err)
			}
			cfg.Selections = cfg.Selections[:0]
			for _, s := range v.selections {
				span, err := ParseSelection(s)
				if err != nil {
					return err
				}
				cfg.Selections = append(cfg.Selections, span)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	v.register(cmd.Flags(), &cfg)
	return cmd
}

// flagValues holds flags that are parsed into Config after cobra has run.
type flagValues struct {
	engine     string
	color      string
	logLevel   string
	selections []string
}

func (v *flagValues) register(f *pflag.FlagSet, cfg *Config) {
	f.SortFlags = false
	f.StringVar(&v.engine, "engine", string(matcher.EngineLiteral), "match engine: literal, regex or pcre")
	f.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive search")
	f.StringArrayVar(&v.selections, "selection", nil, "selected byte range begin:end (repeatable)")
	f.StringVar(&v.color, "color", "auto", "color output: auto, always or never")
	f.BoolVar(&cfg.JSONOutput, "json", false, "write results as JSON Lines")
	f.BoolVarP(&cfg.Interactive, "tui", "t", false, "open the interactive viewer")
	f.Int64Var(&cfg.MmapThreshold, "mmap-threshold", input.DefaultMmapThreshold, "mmap files at least this large (0 disables)")
	f.StringVar(&v.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	f.StringVar(&cfg.Window, "window", cfg.Window, "id of the window the results surface belongs to")
}
