// Command vantage-cli renders, exports and serves perspective grids without
// a desktop environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vantage/internal/cli"
	"vantage/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return 1
	}
	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &cli.Env{Out: os.Stdout, Config: cfg, Logger: logger}
	if err := cli.Run(ctx, env, cli.Commands(), os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Printf("Error: %v\n", err)
		}
		return 1
	}
	return 0
}
