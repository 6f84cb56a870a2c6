// Command vantage is the perspective grid editor. With no desktop command
// it behaves like vantage-cli.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"vantage/internal/cli"
	"vantage/internal/config"
	"vantage/internal/gui"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

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

	cmds := append(cli.Commands(), cli.Command{
		Name:    "gui",
		Summary: "Open the grid editor [reference image]",
		Run:     cmdGUI,
	})

	args := os.Args[1:]
	// An image path on its own opens the editor with it as reference.
	if len(args) == 1 && imageExts[strings.ToLower(filepath.Ext(args[0]))] {
		args = []string{"gui", args[0]}
	}

	env := &cli.Env{Out: os.Stdout, Config: cfg, Logger: logger}
	if err := cli.Run(ctx, env, cmds, args); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Printf("Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func cmdGUI(_ context.Context, env *cli.Env, args []string) error {
	a := gui.NewApp(env.Config, env.Logger)
	if len(args) > 0 {
		a.RunWithReference(args[0])
	} else {
		a.Run()
	}
	return nil
}
