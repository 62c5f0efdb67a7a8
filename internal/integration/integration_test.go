// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardwalk/internal/app"
	"guardwalk/pkg/api"
)

const sampleMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func run(t *testing.T, stdin string, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.RunContextIO(context.Background(), argv, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	fn := write(t, "lab.txt", sampleMap)

	code, out, errOut := run(t, "", fn)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "source\twidth\theight\tvisited\tloop_obstructions\n"+fn+"\t10\t10\t41\t6\n", out)
}

func TestStdinVisitedOnly(t *testing.T) {
	code, out, errOut := run(t, sampleMap, "--part", "visited", "--no-header", "-")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "stdin\t10\t10\t41\t-\n", out)
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	fn := write(t, "par.txt", sampleMap)

	decode := func(threads int) []api.ReportV1 {
		code, out, errOut := run(t, "", "--threads", fmt.Sprint(threads), "--output", "json", "--positions", fn)
		require.Equal(t, 0, code, errOut)
		var reps []api.ReportV1
		require.NoError(t, json.Unmarshal([]byte(out), &reps))
		for i := range reps {
			require.NotEmpty(t, reps[i].RunID)
			reps[i].RunID = ""
		}
		return reps
	}

	serial := decode(1)
	require.Len(t, serial, 1)
	require.NotNil(t, serial[0].LoopObstructions)
	assert.Equal(t, 6, *serial[0].LoopObstructions)
	assert.Len(t, serial[0].VisitedPositions, 41)
	assert.Equal(t, []api.PositionV1{{X: 3, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7}, {X: 1, Y: 8}, {X: 3, Y: 8}, {X: 7, Y: 9}},
		serial[0].Obstructions)
	assert.Equal(t, serial, decode(8))
}

func TestJSONLFromGzip(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(sampleMap))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	fn := write(t, "lab.txt.gz", gz.String())

	code, out, errOut := run(t, "", "-o", "jsonl", "-t", "4", fn)
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 40, "every visited cell but the start")
	looping := 0
	for _, l := range lines {
		var c api.CandidateV1
		require.NoError(t, json.Unmarshal([]byte(l), &c))
		assert.Equal(t, fn, c.Source)
		if c.Looping {
			looping++
		}
	}
	assert.Equal(t, 6, looping)
}

func TestMultipleMapsWithGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(sampleMap), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("...\n.^.\n"), 0o644))

	code, out, errOut := run(t, "", "--no-header", filepath.Join(dir, "*.txt"))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t,
		filepath.Join(dir, "a.txt")+"\t10\t10\t41\t6\n"+
			filepath.Join(dir, "b.txt")+"\t3\t2\t2\t0\n", out)
}

func TestExitCodes(t *testing.T) {
	straight := write(t, "straight.txt", ".\n.\n^\n")
	twoGuards := write(t, "two.txt", "^.\n.^\n")
	looping := write(t, "loop.txt", ".#..\n.^.#\n#...\n..#.\n")

	cases := []struct {
		name string
		argv []string
		want int
	}{
		{"help", []string{"-h"}, 0},
		{"version", []string{"--version"}, 0},
		{"examples", []string{"--examples"}, 0},
		{"unknown flag", []string{"--nope", straight}, 2},
		{"no maps", []string{"--part", "loops"}, 2},
		{"bad map", []string{twoGuards}, 2},
		{"looping base walk", []string{looping}, 2},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.txt")}, 3},
		{"no loops default", []string{straight}, 0},
		{"no loops custom code", []string{"--no-loop-exit-code", "1", straight}, 1},
		{"visited part ignores loop code", []string{"--part", "visited", "--no-loop-exit-code", "1", straight}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, _ := run(t, "", tc.argv...)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestConfigFile(t *testing.T) {
	fn := write(t, "lab.txt", sampleMap)
	cfg := write(t, "run.yaml", "maps: [\""+fn+"\"]\npart: visited\nheader: false\n")

	code, out, errOut := run(t, "", "--config", cfg)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, fn+"\t10\t10\t41\t-\n", out)
}

func TestPrettyOverlay(t *testing.T) {
	code, out, errOut := run(t, ".#..\n#..#\n#...\n.^..\n", "--no-header", "--pretty", "-")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "stdin\t4\t4\t6\t2\n# .#..\n# #XX#\n# #XO.\n# .^O.\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	code, _, errOut := run(t, sampleMap, "--verbose", "-")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "map simulated")
	assert.Contains(t, errOut, "visited=41")
}
