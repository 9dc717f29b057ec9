package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blobdrop/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and clear logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for tuning.yaml and scripts before the embedded copies")
	seed := flag.Int64("seed", 0, "simulation seed (0 = time based)")
	scale := flag.Int("scale", 1, "window scale factor")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(tuning, *seed, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	b := tuning.Bounds()
	ebiten.SetWindowSize(int(b.Width())*max(*scale, 1), int(b.Height())*max(*scale, 1))
	ebiten.SetWindowTitle("blobdrop")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
