// Command locosim runs the locomotion simulation without a window.
//
// It replays recorded input on a stage and prints where every actor ends
// up, or prints the transition table of the state machine.
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "locosim",
		Usage: "headless locomotion simulator",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "simulate a stage, optionally driven by a replay file",
				ArgsUsage: "[replay.json]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "configs", Value: "cmd/game/configs", Usage: "config directory"},
					&cli.StringFlag{Name: "stage", Value: "demo", Usage: "stage to load when no replay names one"},
					&cli.StringFlag{Name: "player", Value: "player", Usage: "entity kind driven by the input"},
					&cli.IntFlag{Name: "frames", Value: 600, Usage: "frames to simulate without a replay"},
					&cli.BoolFlag{Name: "trace", Usage: "print the player position every frame"},
					&cli.BoolFlag{Name: "transitions", Usage: "print every state switch"},
				},
				Action: runAction,
			},
			{
				Name:  "states",
				Usage: "print the transition targets of every state in guard order",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return printStates(cmd.Root().Writer)
				},
			},
		},
	}
}
