package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/minaorangina/klondike/terminal"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "klondike",
		Usage: "play Klondike solitaire in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "seed",
				Usage: "shuffle seed, for replaying a deal",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "print cards without colour",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every gesture to stderr",
			},
		},
		Action: play,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("no-color") {
		pterm.DisableColor()
	}

	seed := cmd.Int("seed")
	if !cmd.IsSet("seed") {
		seed = time.Now().UnixNano()
	}

	logger := zap.NewNop()
	if cmd.Bool("debug") {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}
	logger.Info("dealing", zap.Int64("seed", seed))

	player := terminal.NewPlayer(os.Stdin, os.Stdout, rand.New(rand.NewSource(seed)), logger)
	return player.Run(ctx)
}
