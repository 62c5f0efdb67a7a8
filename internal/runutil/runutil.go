// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the --threads value: 0 (or less) means one
// worker per CPU. The search never needs more workers than candidates, so
// a positive candidates caps the result.
func EffectiveThreads(threads, candidates int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if candidates > 0 && threads > candidates {
		threads = candidates
	}
	return threads
}

// WriterBuffer sizes the report channel between the maps loop and the writer.
func WriterBuffer(threads int) int {
	if threads < 1 {
		return 4
	}
	return threads * 4
}
