package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"sandfall/internal/logger"
	"sandfall/internal/sims/sand"
)

func main() {
	scenarioPath := flag.String("scenario", "scenarios/hourglass.yaml", "YAML scenario to replay")
	ticks := flag.Int("steps", 0, "ticks per run (0 uses the scenario's tick count)")
	firstSeed := flag.Int64("seed", 1, "first seed")
	seeds := flag.Int("seeds", 8, "number of consecutive seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	logger.Init()

	sc, err := sand.LoadScenario(*scenarioPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load scenario")
	}
	steps := *ticks
	if steps <= 0 {
		steps = sc.Ticks
	}

	fmt.Printf("Replaying %q on %dx%d for %d ticks (%d seeds, %d workers)\n",
		sc.Name, sc.Width, sc.Height, steps, *seeds, *workers)

	start := time.Now()
	results, err := runAll(sc, seedRange(*firstSeed, *seeds), steps, *workers)
	if err != nil {
		logger.Log.WithError(err).Fatal("run failed")
	}

	for _, res := range results {
		fields := logrus.Fields{"seed": res.seed, "elapsed": res.elapsed}
		for _, m := range sand.Paintable() {
			if n := res.census[m]; n > 0 {
				fields[m.String()] = n
			}
		}
		logger.Log.WithFields(fields).Info("run complete")
	}

	fmt.Printf("\n%-8s", "seed")
	for _, m := range sand.Paintable() {
		fmt.Printf(" %7s", m)
	}
	fmt.Println()
	for _, res := range results {
		fmt.Printf("%-8d", res.seed)
		for _, m := range sand.Paintable() {
			fmt.Printf(" %7d", res.census[m])
		}
		fmt.Println()
	}
	fmt.Printf("\nCompleted %d runs in %s\n", len(results), time.Since(start).Round(time.Millisecond))
}
