//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.Default()
	}
	clock := core.NewFrameClock(time.Now())
	session, err := app.NewSession(cfg, clock, logger)
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	game := app.New(session, clock, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
