// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guardwalk/internal/cmdutil"
	"guardwalk/internal/engine"
	"guardwalk/internal/grid"
	"guardwalk/internal/mapfile"
	"guardwalk/internal/output"
	"guardwalk/internal/pipeline"
	"guardwalk/internal/runutil"
	"guardwalk/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	Maps   []string
	Search bool // run the obstruction search (--part loops|both)

	Threads int

	RunID          string // generated when empty
	Quiet          bool
	NoLoopExitCode int
}

type WriterFactory interface {
	NeedCandidates() bool
	Start(out io.Writer, bufSize int) (chan<- output.Report, <-chan error)
}

// Run simulates every map in o.Maps, streams one report per map to the
// writer and returns the process exit code. The first failing map stops the
// run.
func Run(
	parent context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
	log *slog.Logger,
	o Options,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	log = log.With("run_id", o.RunID)

	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(runutil.EffectiveThreads(o.Threads, 0)))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	loops := 0
	var perr error
	for _, path := range o.Maps {
		if perr = ctx.Err(); perr != nil {
			break
		}
		var rep output.Report
		rep, perr = simulateMap(ctx, stdin, log, o, wf.NeedCandidates(), path)
		if perr != nil {
			break
		}
		loops += rep.Loops.Len()
		select {
		case inCh <- rep:
		case <-ctx.Done():
			perr = ctx.Err()
		}
		if perr != nil {
			break
		}
	}

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}

	if perr != nil {
		return exitCode(stderr, perr)
	}
	if o.Search && loops == 0 {
		if o.NoLoopExitCode != ExitOK {
			cmdutil.Warnf(stderr, o.Quiet, "no loop obstruction found in %d map(s)", len(o.Maps))
		}
		return o.NoLoopExitCode
	}
	return ExitOK
}

func exitCode(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, grid.ErrConfig):
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	default:
		fmt.Fprintln(stderr, "error:", err)
		return ExitIO
	}
}

// simulateMap loads one map, walks it and, when o.Search is set, evaluates
// every obstruction candidate.
func simulateMap(ctx context.Context, stdin io.Reader, log *slog.Logger, o Options, keepCandidates bool, path string) (output.Report, error) {
	t0 := time.Now()
	m, err := mapfile.Load(path, stdin)
	if err != nil {
		return output.Report{}, err
	}
	sim, err := engine.New(m.Grid, m.Start)
	if err != nil {
		return output.Report{}, fmt.Errorf("%s: %w", m.Source, err)
	}
	w, err := sim.RunToCompletion()
	if err != nil {
		return output.Report{}, fmt.Errorf("%s: %w", m.Source, err)
	}
	rep := output.Report{
		RunID:  o.RunID,
		Source: m.Source,
		Grid:   m.Grid,
		Start:  m.Start,
		Walk:   w,
	}

	if o.Search {
		rep.Searched = true
		rep.Loops = make(grid.PositionSet)
		cands := w.Visited.Len() - 1
		thr := runutil.EffectiveThreads(o.Threads, cands)
		var found int
		found, err = cmdutil.RunStream(ctx, pipeline.Config{Threads: thr}, sim,
			func(c pipeline.Candidate) (bool, output.Candidate) {
				if c.Looping() {
					rep.Loops.Add(c.Pos)
				}
				return keepCandidates, output.Candidate{Pos: c.Pos, Looping: c.Looping(), Steps: c.Outcome.Steps}
			},
			func(c output.Candidate) error {
				rep.Candidates = append(rep.Candidates, c)
				return nil
			},
		)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return output.Report{}, err
			}
			return output.Report{}, fmt.Errorf("%s: %w", m.Source, err)
		}
		log.Debug("obstruction search done", "source", m.Source, "candidates", cands, "threads", thr, "loops", found)
	}

	log.Debug("map simulated",
		"source", m.Source,
		"width", m.Grid.Width(),
		"height", m.Grid.Height(),
		"visited", w.Visited.Len(),
		"steps", w.Steps,
		"elapsed", time.Since(t0),
	)
	return rep, nil
}
