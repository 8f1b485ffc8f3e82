package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/window"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if the file doesn't exist,
	// then let flags override either.
	cfg, err := utils.LoadConfig(configFile)
	if err != nil {
		cfg = utils.DefaultConfig()
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := utils.SeedOrNow(cfg.Seed)
	simulator, err := sim.NewSimulator(cfg, model.NewTerminalRenderer(), nil, utils.NewRNG(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
		os.Exit(1)
	}

	if cfg.Windowed {
		if err = window.Run(cfg, simulator); err != nil {
			fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
			os.Exit(1)
		}
		return
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	displayGameInfo(cfg, simulator, seed)
	simulator.OnFrame = makeStatusDisplay(cfg)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return simulator.Run(ctx)
	})
	if err = eg.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
		os.Exit(1)
	}

	displayFinalStats(simulator)
}
