// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"guardwalk/internal/cliutil"
	"guardwalk/internal/config"
	"guardwalk/internal/writers"
)

// What to compute per map.
const (
	PartVisited = "visited"
	PartLoops   = "loops"
	PartBoth    = "both"
)

// Common holds the CLI fields of guardwalk.
type Common struct {
	// Input
	Maps   []string
	Config string

	// Simulation
	Part    string
	Threads int

	// Output
	Output         string // text|json|jsonl
	Positions      bool
	Pretty         bool
	Header         bool
	NoLoopExitCode int

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// Search reports whether the obstruction search runs.
func (c Common) Search() bool { return c.Part != PartVisited }

// sliceValue appends each value to a *[]string (for --map/-m)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	mapVal := &sliceValue{dst: &c.Maps}
	fs.Var(mapVal, "map", "map file(s) (repeatable) or '-'")
	fs.Var(mapVal, "m", "alias of --map")
	fs.StringVar(&c.Config, "config", "", "YAML run config")

	// Simulation
	fs.StringVar(&c.Part, "part", PartBoth, "visited | loops | both [both]")
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Positions, "positions", false, "list individual positions [false]")
	fs.BoolVar(&c.Pretty, "pretty", false, "ASCII map overlay (text) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoLoopExitCode, "no-loop-exit-code", 0, "exit code when no loop obstruction exists [0]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging on stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, merges the run config, expands positionals,
// then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader
	c.Maps = append(c.Maps, posArgs...)

	if c.Config != "" {
		f, err := config.LoadFile(c.Config)
		if err != nil {
			return err
		}
		ApplyConfig(c, f, explicitFlags(fs))
	}

	exp, err := cliutil.ExpandPositionals(c.Maps)
	if err != nil {
		return err
	}
	c.Maps = exp
	return Validate(c)
}

// explicitFlags returns the names of flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// ApplyConfig copies values from f into c unless the matching flag (or its
// alias) is in set. Config maps are used only when no map was named, either
// by --map or positionally.
func ApplyConfig(c *Common, f *config.File, set map[string]bool) {
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
	if len(c.Maps) == 0 {
		c.Maps = append(c.Maps, f.Maps...)
	}
	if f.Part != "" && !given("part") {
		c.Part = f.Part
	}
	if f.Threads != nil && !given("threads", "t") {
		c.Threads = *f.Threads
	}
	if f.Output != "" && !given("output", "o") {
		c.Output = f.Output
	}
	if f.Positions != nil && !given("positions") {
		c.Positions = *f.Positions
	}
	if f.Pretty != nil && !given("pretty") {
		c.Pretty = *f.Pretty
	}
	if f.Header != nil && !given("no-header") {
		c.Header = *f.Header
	}
	if f.NoLoopExitCode != nil && !given("no-loop-exit-code") {
		c.NoLoopExitCode = *f.NoLoopExitCode
	}
	if f.Quiet != nil && !given("quiet", "q") {
		c.Quiet = *f.Quiet
	}
	if f.Verbose != nil && !given("verbose") {
		c.Verbose = *f.Verbose
	}
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	if len(c.Maps) == 0 {
		return errors.New("at least one map file is required")
	}
	switch c.Part {
	case PartVisited, PartLoops, PartBoth:
	default:
		return fmt.Errorf("invalid --part %q", c.Part)
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if !slices.Contains(writers.Formats(), c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(writers.Formats(), " | "))
	}
	if c.Output == "jsonl" && !c.Search() {
		return errors.New("--output jsonl lists obstruction candidates; it needs --part loops or both")
	}
	if c.NoLoopExitCode < 0 || c.NoLoopExitCode > 255 {
		return errors.New("--no-loop-exit-code must be between 0 and 255")
	}
	return nil
}
