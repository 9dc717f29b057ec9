package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/blobdrop/arena"
	"github.com/milk9111/blobdrop/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	arena      *arena.Arena
	tuning     *prefabs.TuningSpec
	colors     map[string]color.Color
	background color.Color

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	face    ebtext.Face
	debug   bool
}

func NewGame(tuning *prefabs.TuningSpec, seed int64, debug bool) (*Game, error) {
	spawner, err := arena.NewScriptSpawner(tuning)
	if err != nil {
		return nil, err
	}
	opts := []arena.Option{}
	if seed != 0 {
		opts = append(opts, arena.WithSeed(seed))
	}
	a, err := arena.New(arena.ConfigFromTuning(tuning), spawner, opts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		arena: a,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
		debug: debug,
	}
	g.applyLook(tuning)

	b := a.Bounds()
	g.pauseUI = NewPauseUI(g, int(b.Width()), int(b.Height()))

	w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *Game) applyLook(tuning *prefabs.TuningSpec) {
	g.tuning = tuning
	g.colors = tuning.Colors()
	g.background = colornames.Black
	if tuning.Background != nil {
		g.background = tuning.Background.Color
	}
}

func (g *Game) Update() error {
	g.pollReload()

	if restartPressed() {
		g.restart()
	}
	if pausePressed() {
		if g.arena.Paused() {
			g.resume()
		} else {
			g.arena.SetPaused(true)
		}
	}
	if g.arena.Paused() {
		g.pauseUI.Update()
		return nil
	}

	g.arena.SetIntent(readIntent())
	g.arena.Tick()
	for _, evt := range g.arena.DrainEvents() {
		if g.debug {
			log.Printf("cleared %d bodies (+%d)", evt.Count, evt.Points)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	for _, body := range g.arena.Bodies() {
		clr, ok := g.colors[body.Color]
		if !ok {
			clr = colornames.Magenta
		}
		drawBody(screen, body, clr, g.debug && body.Active)
	}
	drawScore(screen, g.face, g.arena.Score().Points)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  bodies: %d  tick: %d", ebiten.ActualTPS(), len(g.arena.Bodies()), g.arena.Ticks()))
	}
	if g.arena.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.arena.Bounds()
	return int(b.Width()), int(b.Height())
}

func (g *Game) resume() {
	g.arena.SetPaused(false)
}

func (g *Game) restart() {
	if err := g.arena.Reset(); err != nil {
		log.Printf("restart: %v", err)
	}
}

// pollReload applies edited tuning or spawn scripts between ticks.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("hot reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	name := filepath.Base(change.Path)
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("reload %s: %v", name, err)
		return
	}
	if change.Kind == prefabs.ChangeScript || tuning.Spawn != g.tuning.Spawn {
		spawner, err := arena.NewScriptSpawner(tuning)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.arena.SetSpawner(spawner)
	}
	if err := g.arena.SetTuning(tuning.Params(), tuning.GameRules()); err != nil {
		log.Printf("reload %s: %v", name, err)
		return
	}
	if tuning.Bounds() != g.arena.Bounds() {
		log.Printf("reload %s: arena size changes apply on restart", name)
	}
	g.applyLook(tuning)
	log.Printf("reloaded %s %s", change.Kind, name)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
