//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"minesweeper/internal/app"
	"minesweeper/pkg/minesweeper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	gameCfg, err := cfg.GameConfig(flag.CommandLine)
	if err != nil {
		log.WithError(err).Fatal("invalid board settings")
	}
	game, err := minesweeper.NewGameFromConfig(gameCfg, minesweeper.WithLogger(log))
	if err != nil {
		log.WithError(err).Fatal("create game")
	}
	log.WithFields(logrus.Fields{
		"w":     gameCfg.Width,
		"h":     gameCfg.Height,
		"mines": gameCfg.Mines,
		"round": game.Round().String(),
	}).Info("starting minesweeper")

	host := app.New(game, cfg, log)

	ebiten.SetWindowTitle("minesweeper")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(host.ScreenSize())

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game loop failed")
	}
}
