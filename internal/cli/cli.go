// Package cli implements the vantage subcommands shared by the full and
// the CLI-only binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"vantage/internal/config"
)

// ErrUsage is returned for missing or malformed arguments. The caller has
// already been shown what went wrong.
var ErrUsage = errors.New("usage error")

// Env is what every command runs against.
type Env struct {
	Out    io.Writer
	Config *config.Config
	Logger *slog.Logger
}

func (e *Env) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

// Command is one subcommand.
type Command struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, env *Env, args []string) error
}

// Commands lists the subcommands available without a GUI.
func Commands() []Command {
	return []Command{
		{Name: "render", Summary: "Render the grid at canvas size to PNG", Run: cmdRender},
		{Name: "export", Summary: "Export the grid at export size to PNG", Run: cmdExport},
		{Name: "lines", Summary: "Print the guide lines of a grid", Run: cmdLines},
		{Name: "state", Summary: "Print a grid state as JSON", Run: cmdState},
		{Name: "serve", Summary: "Serve the grid engine over HTTP", Run: cmdServe},
	}
}

// Run dispatches args[0] to one of cmds. help prints usage for cmds.
func Run(ctx context.Context, env *Env, cmds []Command, args []string) error {
	if len(args) < 1 {
		PrintUsage(env.Out, cmds)
		return ErrUsage
	}

	switch args[0] {
	case "help", "-h", "--help":
		PrintUsage(env.Out, cmds)
		return nil
	}

	for _, c := range cmds {
		if c.Name == args[0] {
			return c.Run(ctx, env, args[1:])
		}
	}

	env.printf("Unknown command: %s\n", args[0])
	PrintUsage(env.Out, cmds)
	return ErrUsage
}

// PrintUsage writes the command overview.
func PrintUsage(w io.Writer, cmds []Command) {
	fmt.Fprintln(w, `
  vantage: perspective grids for drawing and reference

Usage:
  vantage <command> [options]

Commands:`)
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-10s %s\n", c.Name, c.Summary)
	}
	fmt.Fprintln(w, `
Grid options (render, export, lines, state):
  -state <file.json>         Start from a saved state
  -w <px> -h <px>            Canvas size (default: VANTAGE_CANVAS_WIDTH/HEIGHT)
  -type <1|2|3>              Number of vanishing points
  -density <low|medium|high> Line density
  -orientation <top|bottom>  Third point above or below the horizon
  -angle <deg>               Horizon tilt
  -zoom <factor>             Camera zoom (0.1 - 5)
  -pan <x,y>                 Camera pan in pixels
  -horizon <dy>              Move the horizon down by dy pixels
  -vp1/-vp2/-vp3 <dist>      Vanishing point distance from centre
  -vp3x <x>                  Third point sideways offset
  -ref <image>               Reference image (png, jpeg, gif, bmp, tiff, webp)
  -ref-opacity <0-1>         Reference image opacity

Command options:
  render -o <out.png> [-ui]
  export -o <dir> [-name <name>] [-size <WxH>]
  lines  [-json]
  serve  [-addr <host:port>]

Examples:
  vantage render -type 3 -density high -o grid.png
  vantage export -ref photo.jpg -angle 5 -name sketch
  vantage lines -type 1 -json
  vantage state -type 3 -orientation bottom > grid.json`)
}
