package main

import (
	"sort"
	"sync"
	"time"

	"sandfall/internal/sims/sand"
)

type runResult struct {
	seed    int64
	ticks   int
	elapsed time.Duration
	census  map[sand.Material]int
}

// runScenario paints sc onto a fresh world seeded with seed and advances it
// ticks steps.
func runScenario(sc sand.Scenario, seed int64, ticks int) (runResult, error) {
	world := sand.NewWithConfig(sc.Config())
	world.Reset(seed)
	if err := sc.Apply(world); err != nil {
		return runResult{}, err
	}
	start := time.Now()
	for i := 0; i < ticks; i++ {
		world.Step()
	}
	return runResult{
		seed:    seed,
		ticks:   ticks,
		elapsed: time.Since(start),
		census:  world.Census(),
	}, nil
}

// runAll fans the seeds out to workers goroutines and returns the results
// ordered by seed.
func runAll(sc sand.Scenario, seeds []int64, ticks, workers int) ([]runResult, error) {
	if workers <= 0 {
		workers = 1
	}
	type outcome struct {
		res runResult
		err error
	}
	jobs := make(chan int64)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runScenario(sc, seed, ticks)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var all []runResult
	var firstErr error
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		all = append(all, out.res)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all, nil
}

// seedRange returns count consecutive seeds starting at first.
func seedRange(first int64, count int) []int64 {
	seeds := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		seeds = append(seeds, first+int64(i))
	}
	return seeds
}
