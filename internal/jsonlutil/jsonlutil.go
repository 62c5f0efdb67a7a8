// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL streams to avoid per-stream mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream drains in and writes one JSON line per value produced by expand.
// A single input may expand to zero or more lines.
//   - isBroken: recognizer for broken/closed pipe errors to suppress on flush
func Stream[T any](out io.Writer, in <-chan T, expand func(T) []any, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for v := range in {
		for _, line := range expand(v) {
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
