package cmdutil

import (
	"context"

	"guardwalk/internal/pipeline"
)

// RunStream runs the obstruction search, maps every candidate through visit
// and streams the kept values via send. It returns the number of looping
// candidates and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	sim pipeline.Simulator,
	visit func(pipeline.Candidate) (bool, T),
	send func(T) error,
) (int, error) {
	loops := 0
	err := pipeline.ForEachCandidate(ctx, cfg, sim, func(c pipeline.Candidate) error {
		if c.Looping() {
			loops++
		}
		keep, out := visit(c)
		if !keep {
			return nil
		}
		return send(out)
	})
	return loops, err
}
