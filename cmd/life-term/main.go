package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append playback logs to this file")
	flag.Parse()

	// The screen owns stdout, so logs only go to a file.
	var logger *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life-term ", log.LstdFlags)
	}

	session, err := app.NewSession(cfg, core.WallClock{}, logger)
	if err != nil {
		log.Fatalf("life-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	err = term.New(screen, session, logger).Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
