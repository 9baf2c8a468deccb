package config

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/takaishi/snip/colorize"
	"github.com/takaishi/snip/editor"
	"github.com/takaishi/snip/snippet"
)

// ErrHelp is returned when -h or --help was given
var ErrHelp = pflag.ErrHelp

// Config holds application configuration
type Config struct {
	Query           string
	Path            string
	Glob            string
	ContextRadius   int
	Color           colorize.Mode
	Interactive     bool
	Editor          editor.Editor
	ShowAllowlisted bool
	Verbose         bool
}

// Parse parses command line arguments (without the program name)
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("snip", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snip [flags] QUERY [PATH]\n\n")
		fs.PrintDefaults()
	}

	cfg := &Config{}
	var color, editorName string
	fs.IntVarP(&cfg.ContextRadius, "context", "C", snippet.DefaultContextRadius, "Lines of context shown around each match")
	fs.StringVarP(&cfg.Glob, "glob", "g", "", "Only search files matching this glob")
	fs.StringVar(&color, "color", getEnv("SNIP_COLOR"), "When to color output: auto, always or never")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Browse matches interactively")
	fs.StringVar(&editorName, "editor", getEnv("SNIP_EDITOR"), "Editor used to open matches (cursor or code)")
	fs.BoolVar(&cfg.ShowAllowlisted, "show-allowlisted", false, "Show matches exempted by allowlist pragmas")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 1:
		cfg.Query = fs.Arg(0)
	case 2:
		cfg.Query, cfg.Path = fs.Arg(0), fs.Arg(1)
	default:
		return nil, errors.New("expected QUERY and optional PATH")
	}
	if cfg.Query == "" {
		return nil, errors.New("query must not be empty")
	}
	if cfg.ContextRadius < 0 {
		return nil, errors.Newf("--context must not be negative, got %d", cfg.ContextRadius)
	}

	mode, err := colorize.ParseMode(color)
	if err != nil {
		return nil, err
	}
	cfg.Color = mode

	if editorName != "" {
		cfg.Editor = editor.Editor(editorName)
	}

	return cfg, nil
}

func getEnv(key string) string {
	return os.Getenv(key)
}
