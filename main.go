package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gridpets/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

func main() {
	debug := flag.Bool("debug", false, "enable the debug overlay and config hot reload")
	seed := flag.Int64("seed", 0, "override the wander seed (0 = config, then clock)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("gridpets")
	ebiten.SetTPS(60)

	game, err := NewGame(cfg, *debug, *seed, baseWidth, baseHeight)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
