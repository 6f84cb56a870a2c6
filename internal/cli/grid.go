package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vantage/pkg/api"
	"vantage/pkg/perspective"
)

// gridArgs are the state-shaping options shared by render, export and lines.
type gridArgs struct {
	statePath string
	width     float64
	height    float64
	// Set when -w or -h was given, so they can override a loaded state.
	widthSet  bool
	heightSet bool
	ops       []func(perspective.State) perspective.State
	refPath   string
	refOpts   []perspective.ReferenceOption
	rest      []string
}

// parseGridArgs consumes the grid options it knows and leaves the rest in
// rest for the command. Later options apply after earlier ones.
func parseGridArgs(env *Env, args []string) (*gridArgs, error) {
	g := &gridArgs{
		width:  float64(env.Config.CanvasWidth),
		height: float64(env.Config.CanvasHeight),
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		if !isGridFlag(flag) {
			g.rest = append(g.rest, flag)
			continue
		}
		if i+1 >= len(args) {
			return nil, usagef(env, "missing value for %s", flag)
		}
		val := args[i+1]
		i++

		if err := g.apply(flag, val); err != nil {
			return nil, usagef(env, "%s: %v", flag, err)
		}
	}
	return g, nil
}

var gridFlags = map[string]bool{
	"-state": true, "-w": true, "-h": true, "-type": true, "-density": true,
	"-orientation": true, "-angle": true, "-zoom": true, "-pan": true,
	"-horizon": true, "-vp1": true, "-vp2": true, "-vp3": true, "-vp3x": true,
	"-ref": true, "-ref-opacity": true,
}

func isGridFlag(s string) bool {
	return gridFlags[s]
}

func (g *gridArgs) apply(flag, val string) error {
	switch flag {
	case "-state":
		g.statePath = val
		return nil
	case "-ref":
		g.refPath = val
		return nil
	case "-type":
		n, err := strconv.Atoi(val)
		if err != nil || !perspective.GridType(n).Valid() {
			return fmt.Errorf("want 1, 2 or 3, got %q", val)
		}
		g.config(perspective.WithType(perspective.GridType(n)))
		return nil
	case "-density":
		d, err := perspective.ParseDensity(val)
		if err != nil {
			return err
		}
		g.config(perspective.WithDensity(d))
		return nil
	case "-orientation":
		var o perspective.Orientation
		if err := o.UnmarshalText([]byte(val)); err != nil {
			return err
		}
		g.config(perspective.WithOrientation(o))
		return nil
	case "-pan":
		x, y, ok := strings.Cut(val, ",")
		if !ok {
			return fmt.Errorf("want x,y, got %q", val)
		}
		dx, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return err
		}
		dy, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return err
		}
		g.op(func(st perspective.State) perspective.State { return perspective.Pan(st, dx, dy) })
		return nil
	}

	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return err
	}
	switch flag {
	case "-w":
		g.width, g.widthSet = v, true
	case "-h":
		g.height, g.heightSet = v, true
	case "-angle":
		g.op(func(st perspective.State) perspective.State { return perspective.SetHorizonAngle(st, v) })
	case "-zoom":
		g.op(func(st perspective.State) perspective.State { return perspective.Zoom(st, v-st.Camera.Zoom) })
	case "-horizon":
		g.op(func(st perspective.State) perspective.State { return perspective.MoveHorizon(st, v) })
	case "-vp1":
		g.op(func(st perspective.State) perspective.State {
			return perspective.SetVanishingPointDistance(st, perspective.VP1, v)
		})
	case "-vp2":
		g.op(func(st perspective.State) perspective.State {
			return perspective.SetVanishingPointDistance(st, perspective.VP2, v)
		})
	case "-vp3":
		g.op(func(st perspective.State) perspective.State {
			return perspective.SetVanishingPointDistance(st, perspective.VP3, v)
		})
	case "-vp3x":
		g.op(func(st perspective.State) perspective.State {
			st.VanishingPoints[perspective.VP3.Index()].X = v
			return st
		})
	case "-ref-opacity":
		g.refOpts = append(g.refOpts, perspective.RefOpacity(v))
	}
	return nil
}

func (g *gridArgs) op(fn func(perspective.State) perspective.State) {
	g.ops = append(g.ops, fn)
}

func (g *gridArgs) config(opt perspective.ConfigOption) {
	g.op(func(st perspective.State) perspective.State { return perspective.SetGridConfig(st, opt) })
}

// session builds a session holding the described grid and reference image.
func (g *gridArgs) session(ctx context.Context, env *Env) (*api.Session, error) {
	if !(g.width > 0) || !(g.height > 0) {
		return nil, usagef(env, "invalid canvas size %vx%v", g.width, g.height)
	}

	s := api.NewSession(g.width, g.height,
		api.Logger(env.Logger),
		api.Grid(
			perspective.WithType(env.Config.GridType),
			perspective.WithDensity(env.Config.Density),
		),
	)

	if g.statePath != "" {
		st, err := readState(g.statePath)
		if err != nil {
			return nil, err
		}
		// -w and -h resize the loaded grid; otherwise it keeps its own size.
		w, h := st.CanvasWidth, st.CanvasHeight
		if g.widthSet {
			w = g.width
		}
		if g.heightSet {
			h = g.height
		}
		s.Replace(perspective.Resize(st, w, h))
	}

	for _, op := range g.ops {
		s.Update(op)
	}

	if g.refPath != "" {
		f, err := os.Open(g.refPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open reference image: %w", err)
		}
		defer f.Close()

		if err := s.LoadReferenceImage(ctx, g.refPath, f); err != nil {
			return nil, err
		}
		if len(g.refOpts) > 0 {
			if err := s.SetReferenceImageProps(g.refOpts...); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func readState(path string) (perspective.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return perspective.State{}, fmt.Errorf("failed to read state: %w", err)
	}
	var st perspective.State
	if err := json.Unmarshal(data, &st); err != nil {
		return perspective.State{}, fmt.Errorf("failed to parse state %s: %w", path, err)
	}
	if err := perspective.Validate(st); err != nil {
		return perspective.State{}, fmt.Errorf("state %s: %w", path, err)
	}
	return st, nil
}

func usagef(env *Env, format string, args ...any) error {
	env.printf("Error: "+format+"\n", args...)
	return ErrUsage
}
