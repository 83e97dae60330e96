package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("gens", 10, "number of generations to run")
	every := flag.Int("print", 0, "print the grid every N generations (0 = only first and last)")
	flag.Parse()

	logger := log.New(os.Stderr, "life-run ", 0)
	if !cfg.Verbose {
		logger = nil
	}
	clock := core.NewFrameClock(time.Unix(0, 0))
	session, err := app.NewSession(cfg, clock, logger)
	if err != nil {
		log.Fatalf("life-run: %v", err)
	}
	sim := session.Sim

	show := func() {
		fmt.Printf("generation %d, population %d\n%s\n", sim.Generation(), sim.Population(), sim)
	}
	show()

	// Drive playback on a virtual clock so runs are as fast as the CPU allows
	// yet follow the same tick path as the interactive front ends.
	session.Ctrl.Start()
	interval := session.Ctrl.Interval()
	for i := 1; i <= *generations; i++ {
		clock.Step(interval)
		if *every > 0 && i%*every == 0 && i != *generations {
			show()
		}
	}
	session.Ctrl.Stop()
	show()
}
