package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"vantage/internal/server"
	"vantage/pkg/perspective"
	"vantage/pkg/raster"
)

func cmdRender(ctx context.Context, env *Env, args []string) error {
	g, err := parseGridArgs(env, args)
	if err != nil {
		return err
	}

	output := "grid.png"
	showUI := false
	for i := 0; i < len(g.rest); i++ {
		switch g.rest[i] {
		case "-o":
			if i+1 >= len(g.rest) {
				return usagef(env, "missing value for -o")
			}
			output = g.rest[i+1]
			i++
		case "-ui":
			showUI = true
		default:
			return usagef(env, "unknown option %s", g.rest[i])
		}
	}

	s, err := g.session(ctx, env)
	if err != nil {
		return err
	}
	s.SetShowUI(showUI)

	st := s.State()
	c := raster.NewCanvas(int(st.CanvasWidth), int(st.CanvasHeight))
	s.Render(c)

	if err := c.SaveToFile(output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}

	env.Logger.Debug("rendered grid", "output", output, "type", int(st.Config.Type))
	env.printf("✓ Saved %s (%dx%d pixels)\n", output, c.Width(), c.Height())
	return nil
}

func cmdExport(ctx context.Context, env *Env, args []string) error {
	g, err := parseGridArgs(env, args)
	if err != nil {
		return err
	}

	dir := env.Config.ExportDir
	opts := env.Config.ExportOptions()
	for i := 0; i < len(g.rest); i++ {
		flag := g.rest[i]
		if i+1 >= len(g.rest) {
			return usagef(env, "missing value for %s", flag)
		}
		val := g.rest[i+1]
		i++

		switch flag {
		case "-o":
			dir = val
		case "-name":
			opts.Name = val
		case "-size":
			w, h, err := parseSize(val)
			if err != nil {
				return usagef(env, "-size: %v", err)
			}
			opts.Width, opts.Height = w, h
		default:
			return usagef(env, "unknown option %s", flag)
		}
	}

	s, err := g.session(ctx, env)
	if err != nil {
		return err
	}

	path, err := s.ExportFile(dir, opts)
	if err != nil {
		return err
	}

	env.Logger.Debug("exported grid", "path", path)
	env.printf("✓ Saved %s (%dx%d pixels)\n", path, opts.Width, opts.Height)
	return nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %q", s)
	}
	return w, h, nil
}

func cmdLines(ctx context.Context, env *Env, args []string) error {
	g, err := parseGridArgs(env, args)
	if err != nil {
		return err
	}

	asJSON := false
	for _, a := range g.rest {
		switch a {
		case "-json":
			asJSON = true
		default:
			return usagef(env, "unknown option %s", a)
		}
	}

	s, err := g.session(ctx, env)
	if err != nil {
		return err
	}
	lines := s.Lines()

	if asJSON {
		enc := json.NewEncoder(env.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	}

	st := s.State()
	env.printf("Grid: %d-point, %s density, %.0fx%.0f\n",
		int(st.Config.Type), st.Config.Density, st.CanvasWidth, st.CanvasHeight)

	for _, id := range st.ActiveVPs() {
		p := perspective.WorldToScreen(st, id)
		env.printf("  %s at (%.1f, %.1f)\n", id, p.X, p.Y)
	}

	counts := perspective.CountLines(lines)
	kinds := make([]perspective.LineKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	env.printf("Lines: %d\n", len(lines))
	for _, k := range kinds {
		env.printf("  %-10s %d\n", k, counts[k])
	}
	return nil
}

func cmdServe(ctx context.Context, env *Env, args []string) error {
	cfg := *env.Config
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-addr":
			if i+1 >= len(args) {
				return usagef(env, "missing value for -addr")
			}
			cfg.Addr = args[i+1]
			i++
		default:
			return usagef(env, "unknown option %s", args[i])
		}
	}

	return server.New(&cfg, env.Logger).ListenAndServe(ctx)
}

// cmdState prints the described grid state as JSON, for reuse with -state.
func cmdState(ctx context.Context, env *Env, args []string) error {
	g, err := parseGridArgs(env, args)
	if err != nil {
		return err
	}
	if len(g.rest) > 0 {
		return usagef(env, "unknown option %s", g.rest[0])
	}

	s, err := g.session(ctx, env)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(env.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(s.State())
}
