package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/gridpets/assets"
	"github.com/milk9111/gridpets/render"
)

// sheetcheck validates the embedded character manifests against their sprite
// sheets without opening a window: frame geometry, duration counts, and the
// animations the pets require.
func main() {
	verbose := flag.Bool("v", false, "print every animation, not just failures")
	flag.Parse()

	ids := flag.Args()
	if len(ids) == 0 {
		var err error
		ids, err = assets.Characters()
		if err != nil {
			log.Fatal(err)
		}
	}

	required := []string{"Idle", "Walk", "Pickup"}
	failed := false
	for _, id := range ids {
		m, err := render.LoadManifest(id)
		if err != nil {
			log.Printf("%s: %v", id, err)
			failed = true
			continue
		}

		have := make(map[string]bool, len(m.Animations))
		for _, a := range m.Animations {
			have[a.Name] = true
			path := assets.SheetPath(id, a.Sheet)
			cfg, err := assets.ImageConfig(path)
			if err != nil {
				log.Printf("%s: %s: %v", id, path, err)
				failed = true
				continue
			}
			rows, cols, err := a.SheetGrid(cfg.Width, cfg.Height)
			if err != nil {
				log.Printf("%s: %s: %v", id, path, err)
				failed = true
				continue
			}
			if *verbose {
				total := 0
				for _, d := range a.Durations {
					total += d
				}
				fmt.Printf("%s %-8s %dx%d frames of %dx%d, %d ticks/cycle\n",
					id, a.Name, rows, cols, a.FrameWidth, a.FrameHeight, total)
			}
		}
		for _, name := range required {
			if !have[name] {
				log.Printf("%s: missing required animation %s", id, name)
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
