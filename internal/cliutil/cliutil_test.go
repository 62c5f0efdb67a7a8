package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("pretty", false, "")
	fs.String("part", "", "")
	fs.Int("t", 0, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	cases := []struct {
		name      string
		argv      []string
		wantFlags []string
		wantPos   []string
	}{
		{"bool then positionals", []string{"--pretty", "a.txt", "--", "--b.txt"}, []string{"--pretty"}, []string{"a.txt", "--b.txt"}},
		{"value flag after map", []string{"a.txt", "--part", "loops"}, []string{"--part", "loops"}, []string{"a.txt"}},
		{"inline value", []string{"-t=4", "-"}, []string{"-t=4"}, []string{"-"}},
		{"dangling value flag", []string{"a.txt", "-t"}, []string{"-t"}, []string{"a.txt"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flags, pos := SplitFlagsAndPositionals(testFlagSet(), tc.argv)
			assert.Equal(t, tc.wantFlags, flags)
			assert.Equal(t, tc.wantPos, pos)
		})
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("^\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("^\n"), 0o644))

	got, err := ExpandPositionals([]string{b, filepath.Join(dir, "*.txt"), "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a, "-"}, got)
}

func TestExpandPositionalsErrors(t *testing.T) {
	_, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.txt")})
	assert.ErrorContains(t, err, "no input matched")

	_, err = ExpandPositionals([]string{"-", "-"})
	assert.ErrorContains(t, err, "more than once")
}
