package integration

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"guardwalk/internal/app"
)

func TestCanceledBeforeStart_Exit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContextIO(ctx, []string{"-"}, strings.NewReader(sampleMap), io.Discard, io.Discard)
	assert.Equal(t, 130, code)
}

func TestCtrlC_MidSearch_Exit130(t *testing.T) {
	// The context dies once the map is read, so the obstruction search
	// starts on a cancelled context and must stop without output.
	var b strings.Builder
	for y := 0; y < 64; y++ {
		row := strings.Repeat(".", 64)
		if y == 63 {
			row = "^" + row[1:]
		}
		b.WriteString(row + "\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	code := app.RunContextIO(ctx, []string{"-t", "2", "-"}, cancelOnRead{strings.NewReader(b.String()), cancel}, io.Discard, io.Discard)
	assert.Equal(t, 130, code)
}

// cancelOnRead cancels once the map has been fully read.
type cancelOnRead struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c cancelOnRead) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if err == io.EOF {
		c.cancel()
	}
	return n, err
}
