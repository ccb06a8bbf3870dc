package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// printStates writes one line per state listing its transition targets in
// the order their guards are evaluated
func printStates(out io.Writer) error {
	model, err := entity.NewModel(entity.ModelConfig{
		Kind:     "table",
		Animator: entity.NewAnimationPlayer(),
		Input:    entity.NoInput{},
		Map:      &entity.Stage{TileSize: 16},
	})
	if err != nil {
		return err
	}
	states := state.NewStates(model, state.DefaultConfig(), nil)

	for _, id := range state.IDs() {
		s, ok := states[id]
		if !ok {
			continue
		}
		targets := state.Targets(s)
		names := make([]string, len(targets))
		for i, t := range targets {
			names[i] = t.String()
		}
		if _, err := fmt.Fprintf(out, "%-22s -> %s\n", id, strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}
