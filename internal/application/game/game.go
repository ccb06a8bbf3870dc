// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/lionheart/internal/application/scene"
)

// referenceTPS is the tick rate the per-frame tuning values are written for
const referenceTPS = 60

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	extrp   float64

	changes <-chan string
}

// New creates a new Game with the given initial scene running at tps ticks
// per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = referenceTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		extrp:   float64(referenceTPS) / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// WatchChanges makes the game reload the current scene whenever a path is
// received on changes
func (g *Game) WatchChanges(changes <-chan string) {
	g.changes = changes
}

// Update reloads changed configuration, updates the current scene and
// handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.reload()

	next, err := g.current.Update(g.extrp)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

func (g *Game) reload() {
	changed := g.drainChanges()
	if changed == "" {
		return
	}

	r, ok := g.current.(scene.Reloadable)
	if !ok {
		return
	}
	if err := r.Reload(); err != nil {
		log.Printf("Failed to reload after %s changed: %v", changed, err)
		return
	}
	log.Printf("Reloaded after %s changed", changed)
}

// drainChanges returns the last path pending on the change channel
func (g *Game) drainChanges() string {
	changed := ""
	for {
		select {
		case path, ok := <-g.changes:
			if !ok {
				g.changes = nil
				return changed
			}
			changed = path
		default:
			return changed
		}
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Extrapolation returns the factor passed to the scenes each tick
func (g *Game) Extrapolation() float64 {
	return g.extrp
}
