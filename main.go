package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/takaishi/snip/colorize"
	"github.com/takaishi/snip/config"
	"github.com/takaishi/snip/report"
	"github.com/takaishi/snip/search"
	"github.com/takaishi/snip/tui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if _, err := exec.LookPath("rg"); err != nil {
		log.Fatal().Msg("ripgrep (rg) is not installed or not in PATH, see https://github.com/BurntSushi/ripgrep")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(cfg *config.Config) error {
	q := search.Query{
		Pattern: cfg.Query,
		Glob:    cfg.Glob,
		Dir:     cfg.Path,
	}
	if q.Dir == "" {
		if root, ok := search.GetCurrentGitRoot(); ok {
			q.Dir = root
		}
	}

	printer := &report.Printer{
		Out:             os.Stdout,
		Dir:             q.Dir,
		Colorizer:       colorize.New(os.Stdout, cfg.Color),
		ContextRadius:   cfg.ContextRadius,
		ShowAllowlisted: cfg.ShowAllowlisted,
	}

	if cfg.Interactive {
		// The alt screen is always a terminal
		if cfg.Color == colorize.ModeAuto {
			printer.Colorizer = colorize.New(os.Stdout, colorize.ModeAlways)
		}
		return tui.New(q, printer, cfg.Editor).Run()
	}

	msg := <-search.NewSearcher().Search(context.Background(), q)
	if msg.Error != nil {
		return msg.Error
	}

	shown, err := printer.Print(msg.Results, cfg.Query)
	if err != nil {
		return err
	}
	log.Debug().Int("results", len(msg.Results)).Int("shown", shown).Msg("done")
	if shown == 0 {
		os.Exit(1)
	}
	return nil
}
