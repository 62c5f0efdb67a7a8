// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"guardwalk/internal/engine"
	"guardwalk/internal/grid"
)

// Config controls the obstruction search.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Candidate is one evaluated obstruction position.
type Candidate struct {
	Pos     grid.Position
	Outcome engine.Outcome
}

func (c Candidate) Looping() bool { return c.Outcome.Result == engine.Cycled }

// FindVisitedPositions returns the distinct cells of the unobstructed walk.
func FindVisitedPositions(sim Simulator) (grid.PositionSet, error) {
	w, err := sim.RunToCompletion()
	if err != nil {
		return nil, err
	}
	return w.Visited, nil
}

// Candidates lists the obstruction candidates of a baseline walk: every
// visited cell except the start, in first-visit order.
func Candidates(w engine.Walk, start grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(w.Path))
	for _, p := range w.Path {
		if p != start {
			out = append(out, p)
		}
	}
	return out
}

// FindCyclicObstructions returns every candidate whose obstruction makes the
// guard loop forever.
func FindCyclicObstructions(ctx context.Context, cfg Config, sim Simulator) (grid.PositionSet, error) {
	found := make(grid.PositionSet)
	err := ForEachCandidate(ctx, cfg, sim, func(c Candidate) error {
		if c.Looping() {
			found.Add(c.Pos)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForEachCandidate runs the baseline walk, then evaluates each candidate on
// cfg.Threads workers. visit is called once per candidate, never concurrently,
// in no particular order. It returns the first error encountered (including
// context cancellation).
func ForEachCandidate(ctx context.Context, cfg Config, sim Simulator, visit func(Candidate) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	w, err := sim.RunToCompletion()
	if err != nil {
		return err
	}
	cands := Candidates(w, sim.Start().Pos)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan grid.Position, cfg.Threads*2)
	results := make(chan Candidate, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		for _, p := range cands {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case jobs <- p:
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for i := 0; i < cfg.Threads; i++ {
		g.Go(func() error {
			defer wg.Done()
			for p := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := sim.RunDetectingCycle(&p)
				if err != nil {
					return err
				}
				select {
				case results <- Candidate{Pos: p, Outcome: out}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector
	var verr error
	for c := range results {
		if verr != nil {
			continue
		}
		if err := visit(c); err != nil {
			verr = err
			cancel()
		}
	}

	werr := g.Wait()
	switch {
	case verr != nil:
		return verr
	case werr != nil:
		return werr
	}
	return ctx.Err()
}

// Simulate runs the unobstructed walk for g and start.
func Simulate(g *grid.Grid, start grid.AgentState) (engine.Walk, error) {
	sim, err := engine.New(g, start)
	if err != nil {
		return engine.Walk{}, err
	}
	return sim.RunToCompletion()
}

// LoopingObstructions is FindCyclicObstructions on a single worker.
func LoopingObstructions(g *grid.Grid, start grid.AgentState) (grid.PositionSet, error) {
	sim, err := engine.New(g, start)
	if err != nil {
		return nil, err
	}
	return FindCyclicObstructions(context.Background(), Config{Threads: 1}, sim)
}
