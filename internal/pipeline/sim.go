// internal/pipeline/sim.go
package pipeline

import (
	"guardwalk/internal/engine"
	"guardwalk/internal/grid"
)

// Simulator is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Simulator interface {
	Start() grid.AgentState
	RunToCompletion() (engine.Walk, error)
	RunDetectingCycle(alsoBlock *grid.Position) (engine.Outcome, error)
}
