package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	cfg, err := config.Load(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 2
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, cfg.NoColor)

	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.Level()
	logOpts.NoColor = cfg.NoColor
	logger := logging.New(os.Stderr, logOpts)
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	storeOpts := []store.Option{store.WithLogger(logger)}
	if !cfg.Seed {
		storeOpts = append(storeOpts, store.WithSeed(nil))
	}
	s := store.New(storeOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := cli.NewRunner(s, logger, cli.Options{
		Group:    cfg.Group,
		EchoList: true,
	})
	r.Theme = cfg.Theme
	if isatty.IsTerminal(os.Stdin.Fd()) {
		r.Prompt = "> "
	}

	// Hand the remaining args to the CLI runner.
	code := r.Run(ctx, fs.Args())
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
