package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// simulation steps a stage frame by frame without rendering
type simulation struct {
	world      *ecs.World
	locomotion *ecs.LocomotionSystem
	replayer   *replay.Replayer
	input      system.InputState
	frame      int
}

func newSimulation(loader *config.Loader, stageName, player string, data *replay.ReplayData) (*simulation, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	stageCfg, err := loader.LoadStage(stageName)
	if err != nil {
		return nil, err
	}
	table, err := cfg.Collisions.Table()
	if err != nil {
		return nil, err
	}
	stage, err := system.LoadStage(stageCfg, table)
	if err != nil {
		return nil, err
	}

	s := &simulation{
		world: ecs.NewWorld(),
		locomotion: ecs.NewLocomotionSystem(
			system.NewPhysicsSystem(cfg.Physics, stage),
			system.NewContactSystem(),
			cfg.Physics.Drown.End,
		),
	}
	if data != nil {
		s.replayer = replay.NewReplayer(*data)
	}
	spawner := ecs.NewSpawner(cfg, table, stage)
	if err := spawner.SpawnStage(s.world, stageCfg, player, &s.input); err != nil {
		return nil, fmt.Errorf("failed to spawn stage %s: %w", stageName, err)
	}
	return s, nil
}

// step advances one frame. It reports false once the replay ran out.
func (s *simulation) step() (bool, error) {
	if s.replayer != nil {
		input, ok := s.replayer.GetInput()
		if !ok {
			return false, nil
		}
		s.input = input
	}
	if err := s.locomotion.Update(s.world, 1); err != nil {
		return false, err
	}
	s.frame++
	return true, nil
}

// onTransition calls fn for every state switch of every actor
func (s *simulation) onTransition(fn func(id ecs.EntityID, from, to state.ID)) {
	for _, id := range s.world.IDs() {
		id := id
		s.world.Handler[id].AddListener(func(from, to state.ID) {
			fn(id, from, to)
		})
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	stageName := cmd.String("stage")
	player := cmd.String("player")
	frames := int(cmd.Int("frames"))

	var data *replay.ReplayData
	if path := cmd.Args().First(); path != "" {
		var err error
		if data, err = replay.LoadReplay(path); err != nil {
			return err
		}
		if data.Stage != "" {
			stageName = data.Stage
		}
		if data.Player != "" {
			player = data.Player
		}
		frames = data.FrameTotal()
	}

	sim, err := newSimulation(config.NewLoader(cmd.String("configs")), stageName, player, data)
	if err != nil {
		return err
	}
	if cmd.Bool("transitions") {
		sim.onTransition(func(id ecs.EntityID, from, to state.ID) {
			_, _ = fmt.Fprintf(out, "%5d %s#%d %s -> %s\n", sim.frame, sim.world.Actor[id].Kind, id, from, to)
		})
	}

	for sim.frame < frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := sim.step()
		if err != nil {
			return fmt.Errorf("frame %d: %w", sim.frame, err)
		}
		if !ok {
			break
		}
		if cmd.Bool("trace") {
			tracePlayer(out, sim)
		}
	}

	return summarize(out, sim)
}

func tracePlayer(out io.Writer, sim *simulation) {
	model, handler, ok := sim.world.Player()
	if !ok {
		return
	}
	_, _ = fmt.Fprintf(out, "%5d %-22s x=%8.2f y=%8.2f\n", sim.frame, handler.Current(), model.Transform.X, model.Transform.Y)
}

func summarize(out io.Writer, sim *simulation) error {
	if _, err := fmt.Fprintf(out, "%d frames\n", sim.frame); err != nil {
		return err
	}
	for _, id := range sim.world.IDs() {
		model := sim.world.Model[id]
		_, err := fmt.Fprintf(out, "%s#%d %s x=%.2f y=%.2f\n",
			sim.world.Actor[id].Kind, id, sim.world.Handler[id].Current(), model.Transform.X, model.Transform.Y)
		if err != nil {
			return err
		}
	}
	return nil
}
