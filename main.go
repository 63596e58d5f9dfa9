package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gookit/color"

	"mazerunner/pkg/engine/config"
	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/locale"
	"mazerunner/pkg/engine/terminal"
	"mazerunner/pkg/game/devtools"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/renderer/tui"
	"mazerunner/pkg/game/state"
)

// options are the command line settings layered over the environment config
type options struct {
	config.Config
	play    bool
	solve   bool
	dumpDir string
}

func parseOptions(cfg config.Config) options {
	opts := options{Config: cfg}

	flag.IntVar(&opts.Length, "length", cfg.Length, "cells along x (minimum 3)")
	flag.IntVar(&opts.Height, "height", cfg.Height, "cells along z (minimum 3)")
	flag.Int64Var(&opts.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	flag.StringVar(&opts.Lang, "lang", cfg.Lang, "language for messages (en, de)")
	flag.BoolVar(&opts.NoColor, "no-color", cfg.NoColor, "disable coloured output")
	flag.BoolVar(&opts.play, "play", false, "walk the maze interactively")
	flag.BoolVar(&opts.solve, "solve", false, "overlay the route from start to exit")
	flag.StringVar(&opts.dumpDir, "dump", "", "write a map dump into this directory")
	flag.Parse()

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts
}

// buildGame carves a new maze for opts and places an agent at its start
func buildGame(opts options) (*state.Game, error) {
	gen := generator.NewRecursiveBacktracker(rand.New(rand.NewSource(opts.Seed)))

	grid, err := generator.Build(gen, opts.Length, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	log.Printf("[APP] [INFO] %s carved a %dx%d maze (seed %d)", gen.Name(), grid.Length(), grid.Height(), opts.Seed)

	return state.NewGame(grid, opts.Seed)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts := parseOptions(cfg)

	if err := locale.Load(opts.Lang); err != nil {
		return err
	}
	if opts.NoColor {
		color.Enable = false
	}

	g, err := buildGame(opts)
	if err != nil {
		return err
	}

	r := tui.New()
	renderer.SetRenderer(r)

	if width, height := tui.GridSize(g.Grid); !terminal.Fits(width, height) {
		log.Printf("[APP] [INFO] maze is %dx%d characters, wider or taller than the terminal", width, height)
	}

	if opts.dumpDir != "" {
		path, err := devtools.DumpMapToFile(opts.dumpDir, g.Grid, g.Agent)
		if err != nil {
			return fmt.Errorf("dump map: %w", err)
		}
		log.Printf("[APP] [INFO] map dumped to %s", path)
		state.DumpDir = opts.dumpDir
	}

	if opts.solve {
		g.ShowRoute = true
		if g.UpdateRoute() {
			g.AddMessage(locale.Get("ROUTE_LENGTH", len(g.Route)))
		} else {
			g.AddMessage(locale.Get("NO_ROUTE"))
		}
	}

	if !opts.play {
		renderer.RenderFrame(g)
		return nil
	}

	return mainLoop(g)
}

func mainLoop(g *state.Game) error {
	for !g.Quit {
		renderer.Clear()
		renderer.RenderFrame(g)

		key, err := input.ReadKey()
		if err != nil {
			return err
		}
		g.ProcessIntent(input.MapToIntent(key))
	}

	fmt.Println(locale.Get("GOODBYE"))
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, renderer.StyleText(err.Error(), renderer.StyleDenied))
		os.Exit(1)
	}
}
