// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/scene"
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = colornames.Midnightblue
	colorGround  = colornames.Slategray
	colorSlope   = colornames.Darkkhaki
	colorSteep   = colornames.Sienna
	colorProbeX  = colornames.Cyan
	colorProbeY  = colornames.Yellow
	colorBox     = color.RGBA{255, 255, 255, 96}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Options configures a Playing scene
type Options struct {
	Stage  string // stage file name without extension
	Player string // entity kind driven by the input

	// RecordPath enables input recording to this file
	RecordPath string
	// Replay drives the player from recorded input instead of the keyboard
	Replay *replay.ReplayData
	// Trace logs every state switch
	Trace bool
}

// Playing is the main gameplay scene
type Playing struct {
	loader *config.Loader
	opts   Options

	cfg        *config.GameConfig
	stageCfg   *config.StageConfig
	stage      *entity.Stage
	world      *ecs.World
	locomotion *ecs.LocomotionSystem

	keyboard *system.InputSystem
	replayer *replay.Replayer
	recorder *replay.Recorder
	input    system.InputState // read by the player's states through a pointer

	paused     bool
	showProbes bool
	finished   bool
	frame      int
	screenW    int
	screenH    int
}

// New creates a new Playing scene loading its configuration through loader
func New(loader *config.Loader, opts Options) (*Playing, error) {
	if opts.Player == "" {
		opts.Player = "player"
	}
	p := &Playing{
		loader:   loader,
		opts:     opts,
		keyboard: system.NewInputSystem(),
	}
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
	}
	if err := p.build(); err != nil {
		return nil, err
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Stage, opts.Player)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}
	return p, nil
}

// build loads the configuration and spawns the stage actors
func (p *Playing) build() error {
	cfg, err := p.loader.LoadAll()
	if err != nil {
		return err
	}
	stageCfg, err := p.loader.LoadStage(p.opts.Stage)
	if err != nil {
		return err
	}
	table, err := cfg.Collisions.Table()
	if err != nil {
		return err
	}
	stage, err := system.LoadStage(stageCfg, table)
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	spawner := ecs.NewSpawner(cfg, table, stage)
	if err := spawner.SpawnStage(world, stageCfg, p.opts.Player, &p.input); err != nil {
		return fmt.Errorf("failed to spawn stage %s: %w", stageCfg.ID, err)
	}
	if p.opts.Trace {
		for _, id := range world.IDs() {
			traceStates(world, id)
		}
	}

	p.cfg = cfg
	p.stageCfg = stageCfg
	p.stage = stage
	p.world = world
	p.locomotion = ecs.NewLocomotionSystem(
		system.NewPhysicsSystem(cfg.Physics, stage),
		system.NewContactSystem(),
		cfg.Physics.Drown.End,
	)
	p.screenW = cfg.Physics.Display.ScreenWidth
	p.screenH = cfg.Physics.Display.ScreenHeight
	return nil
}

func traceStates(w *ecs.World, id ecs.EntityID) {
	kind := w.Actor[id].Kind
	w.Handler[id].AddListener(func(from, to state.ID) {
		log.Printf("%s#%d: %s -> %s", kind, id, from, to)
	})
}

// Reload rebuilds the stage and its actors from the configuration files.
// A running replay starts over and a running recording is restarted, since
// the inputs so far were played against the old world. On failure the
// running world is kept.
func (p *Playing) Reload() error {
	if err := p.build(); err != nil {
		return err
	}
	p.frame = 0
	p.finished = false
	p.input = system.InputState{}
	if p.replayer != nil {
		p.replayer.Reset()
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Restart()
		log.Printf("Recording restarted after reload")
	}
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(extrp float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.showProbes = !p.showProbes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if p.paused || p.finished {
		return nil, nil
	}

	return nil, p.step(extrp)
}

// step advances the world by one frame of input
func (p *Playing) step(extrp float64) error {
	if p.replayer != nil {
		input, ok := p.replayer.GetInput()
		if !ok {
			p.finished = true
			log.Printf("Replay finished after %d frames", p.frame)
			return nil
		}
		p.input = input
	} else {
		p.input = system.NextInput(p.input, p.keyboard.GetInput())
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(p.input)
	}

	if err := p.locomotion.Update(p.world, extrp); err != nil {
		return err
	}
	p.frame++
	return nil
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
}

// Frame returns the number of simulated frames
func (p *Playing) Frame() int {
	return p.frame
}

// Display returns the display settings of the loaded configuration
func (p *Playing) Display() config.DisplayConfig {
	return p.cfg.Physics.Display
}

// World returns the simulated world
func (p *Playing) World() *ecs.World {
	return p.world
}

// camera returns the world position of the bottom-left screen corner
func (p *Playing) camera() (float64, float64) {
	var px, py float64
	if model, _, ok := p.world.Player(); ok {
		px, py = model.Transform.X, model.Transform.Y
	}
	size := float64(p.stage.TileSize)
	maxX := float64(p.stage.Width)*size - float64(p.screenW)
	maxY := float64(p.stage.Height)*size - float64(p.screenH)

	camX := math.Max(0, math.Min(px-float64(p.screenW)/2, maxX))
	camY := math.Max(0, math.Min(py-float64(p.screenH)/2, maxY))
	return camX, camY
}

// toScreen maps a world point (Y up) to screen pixels (Y down)
func (p *Playing) toScreen(camX, camY, x, y float64) (float32, float32) {
	return float32(x - camX), float32(float64(p.screenH) - (y - camY))
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	bg := color.Color(colorBG)
	if c, ok := colornames.Map[p.stageCfg.Background]; ok {
		bg = c
	}
	screen.Fill(bg)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	for _, id := range p.world.IDs() {
		p.drawActor(screen, camX, camY, id)
	}
	p.drawUI(screen)

	if p.paused {
		vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	size := float64(p.stage.TileSize)
	startX := int(camX / size)
	startY := int(camY / size)
	endX := int((camX+float64(p.screenW))/size) + 1
	endY := int((camY+float64(p.screenH))/size) + 1

	for ty := startY; ty <= endY; ty++ {
		for tx := startX; tx <= endX; tx++ {
			tile := p.stage.GetTile(tx, ty)
			if !tile.Exists() {
				continue
			}
			c := colorGround
			switch {
			case tile.Profile.IsSlope() && tile.Profile != collision.ProfileSlope:
				c = colorSlope
			case tile.Profile.IsSteep() && tile.Profile != collision.ProfileSteep:
				c = colorSteep
			}

			// Surfaces are drawn as 2 px columns of the profile height
			for lx := 0.0; lx < size; lx += 2 {
				h := tile.Profile.Height(lx+1, size)
				x, y := p.toScreen(camX, camY, float64(tx)*size+lx, float64(ty)*size+h)
				vector.DrawFilledRect(screen, x, y, 2, float32(h), c, false)
			}
		}
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, camX, camY float64, id ecs.EntityID) {
	actor := p.world.Actor[id]
	model := p.world.Model[id]

	c := color.Color(color.White)
	if named, ok := colornames.Map[actor.Color]; ok {
		c = named
	}
	x, y := p.toScreen(camX, camY, model.Transform.X-actor.Width/2, model.Transform.Y+actor.Height)
	vector.DrawFilledRect(screen, x, y, float32(actor.Width), float32(actor.Height), c, false)

	// Facing marker on the front edge
	fx := model.Transform.X + model.Mirror.Sign()*actor.Width/2
	mx, my := p.toScreen(camX, camY, fx, model.Transform.Y+actor.Height*0.75)
	vector.StrokeLine(screen, mx, my, mx-float32(model.Mirror.Sign())*3, my, 1, colornames.Black, false)

	if !p.showProbes {
		return
	}
	for _, b := range model.Boxes {
		bx := model.Transform.X + b.OffsetX
		if model.Mirror == entity.MirrorHorizontal {
			bx = model.Transform.X - b.OffsetX - b.Width
		}
		sx, sy := p.toScreen(camX, camY, bx, model.Transform.Y+b.OffsetY+b.Height)
		vector.StrokeRect(screen, sx, sy, float32(b.Width), float32(b.Height), 1, colorBox, false)
	}
	for _, cat := range model.Categories {
		pc := colorProbeY
		if cat.Axis == collision.AxisX {
			pc = colorProbeX
		}
		sx, sy := p.toScreen(camX, camY, model.Transform.X+cat.OffsetX, model.Transform.Y+cat.OffsetY)
		vector.DrawFilledRect(screen, sx-1, sy-1, 2, 2, pc, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := "no player"
	if model, handler, ok := p.world.Player(); ok {
		status = fmt.Sprintf("%s  x=%.1f y=%.1f", handler.Current(), model.Transform.X, model.Transform.Y)
	}
	if p.replayer != nil {
		status += fmt.Sprintf("  replay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	if p.recorder != nil {
		status += fmt.Sprintf("  REC %d", p.recorder.FrameCount())
	}

	help := "Arrows/WASD: Move | Ctrl/Space: Fire | Tab: Probes | ESC: Pause"
	ebitenutil.DebugPrint(screen, status+"\n"+help)
}
