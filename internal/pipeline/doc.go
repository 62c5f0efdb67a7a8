// Package pipeline runs the obstruction search: it takes the baseline walk from
// a Simulator, fans the obstruction candidates out to workers, and hands every
// classified candidate to a visit callback from a single goroutine.
//
// The only contract to implement is Simulator (RunToCompletion/RunDetectingCycle).
// This keeps the pipeline swappable and testable.
package pipeline
