package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/config"
	"headsup-analyzer/internal/duel"
	"headsup-analyzer/internal/explore"
	"headsup-analyzer/pkg/equity"
	"headsup-analyzer/pkg/rangestore"
)

const usage = `Analyze Heads-Up of poker

Usage:
  headsup duel YOUR_POSITION YOUR_CARDS VILLAIN_POSITION VILLAIN_ACTION [BOARD]
  headsup hand
`

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	rangesFile := flag.String("ranges", "", "range file to load (overrides the configured ranges file)")
	iterations := flag.Int("iterations", 0, "equity simulation iterations (overrides the configured value)")
	flag.Parse()

	cfg := config.Instance()
	if err := config.SetupLogger(cfg); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	if *rangesFile != "" {
		cfg.RangeSource = config.RangeSourceFile
		cfg.RangesFile = *rangesFile
	}

	if *iterations > 0 {
		cfg.Equity.Iterations = *iterations
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := rangestore.Load(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not load ranges")
	}

	args := flag.Args()
	switch args[0] {
	case "duel":
		runDuel(ctx, cfg, store, args[1:])
	case "hand":
		err := explore.NewSession(store, os.Stdin, os.Stdout).Run(ctx)
		if errors.Is(err, context.Canceled) {
			logrus.Debug("interrupted")
			return
		}

		if err != nil {
			logrus.WithError(err).Fatal("could not read input")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runDuel(ctx context.Context, cfg config.Config, store *rangestore.Store, args []string) {
	if len(args) < 4 || len(args) > 5 {
		flag.Usage()
		os.Exit(2)
	}

	board := ""
	if len(args) == 5 {
		board = args[4]
	}

	d, err := duel.Parse(args[0], args[1], args[2], args[3], board)
	if err != nil {
		logrus.WithError(err).Fatal("invalid duel")
	}

	simulator := equity.New(cfg.Equity.Iterations, cfg.Equity.Workers)
	report, err := duel.NewAnalyzer(store, simulator).Analyze(ctx, d)
	if errors.Is(err, context.Canceled) {
		logrus.Debug("interrupted")
		return
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not analyze duel")
	}

	if err := duel.Render(os.Stdout, d, report); err != nil {
		logrus.WithError(err).Fatal("could not render report")
	}
}
