// Command blobsim runs the drop game without a window, letting the spawn
// script play against no input, and logs every clear.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/milk9111/blobdrop/arena"
	"github.com/milk9111/blobdrop/prefabs"
)

func main() {
	ticks := flag.Int("ticks", 10000, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "simulation seed")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for tuning.yaml and scripts before the embedded copies")
	every := flag.Int("every", 0, "log a body summary every N ticks (0 = off)")
	verbose := flag.Bool("v", false, "log file and line")
	flag.Parse()

	log.SetOutput(os.Stdout)
	if *verbose {
		log.SetFlags(log.Ltime | log.Lshortfile)
	} else {
		log.SetFlags(0)
	}
	prefabs.Dir = *prefabDir

	if err := run(*ticks, *seed, *every); err != nil {
		log.Fatal(err)
	}
}

func run(ticks int, seed int64, every int) error {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	spawner, err := arena.NewScriptSpawner(tuning)
	if err != nil {
		return err
	}
	a, err := arena.New(arena.ConfigFromTuning(tuning), spawner, arena.WithSeed(seed))
	if err != nil {
		return err
	}
	log.Printf("tick order: %s", strings.Join(a.Stages(), " -> "))

	for i := 1; i <= ticks; i++ {
		a.Tick()
		a.DrainEvents()
		if every > 0 && i%every == 0 {
			logSummary(a)
		}
	}

	score := a.Score()
	log.Printf("done: %d ticks, %d bodies on the board, %d cleared, score %d", a.Ticks(), len(a.Bodies()), score.Cleared, score.Points)
	return nil
}

func logSummary(a *arena.Arena) {
	settled := 0
	top := a.Bounds().Bottom
	for _, b := range a.Bodies() {
		if b.Settled {
			settled++
		}
		if y := b.Center.Y - b.Radius; y < top {
			top = y
		}
	}
	log.Printf("tick %d: %d bodies, %d settled, pile top %.1f, score %d", a.Ticks(), len(a.Bodies()), settled, top, a.Score().Points)
}
