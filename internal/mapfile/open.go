// internal/mapfile/open.go
package mapfile

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"guardwalk/internal/grid"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path, "-" meaning stdin. Gzip input is detected
// by magic number (1F 8B) or a .gz suffix.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Map is one loaded guard map.
type Map struct {
	Source string
	Grid   *grid.Grid
	Start  grid.AgentState
}

// Load opens and parses path. Parse failures wrap grid.ErrConfig and carry the path.
func Load(path string, stdin io.Reader) (Map, error) {
	rc, err := Open(path, stdin)
	if err != nil {
		return Map{}, err
	}
	defer rc.Close()

	g, start, err := grid.Parse(rc)
	if err != nil {
		return Map{}, fmt.Errorf("%s: %w", displayName(path), err)
	}
	return Map{Source: displayName(path), Grid: g, Start: start}, nil
}

func displayName(path string) string {
	if path == Stdin {
		return "stdin"
	}
	return path
}
