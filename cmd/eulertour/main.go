// eulertour reads a graph in the exchange format and writes an Eulerian
// circuit of it, one vertex per line, or "Not Eulerian!" when none exists.
//
// Usage:
//
//	eulertour <graph-file>
//
// The result always goes to output.txt in the working directory; the circuit
// starts at vertex 0 and is verified before it is written. There are no flags
// and no environment overrides.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eulertour/analysis"
	"github.com/katalvlaran/eulertour/config"
	"github.com/katalvlaran/eulertour/euler"
	"github.com/katalvlaran/eulertour/graphio"
)

const usage = "usage: eulertour <graph-file>"

func main() {
	os.Exit(run(os.Args[1:], config.New(), os.Stderr))
}

// run returns the process exit code: 0 on any written result, 1 on failure,
// 2 on bad usage.
func run(args []string, cfg *config.Config, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := cfg.NewLogger(stderr, "eulertour")

	if err := solve(args[0], cfg, log); err != nil {
		log.Error().Err(err).Str("input", args[0]).Msg("failed")
		return 1
	}

	return 0
}

// solve runs read, analyze, find, verify and write for one input file.
func solve(input string, cfg *config.Config, log zerolog.Logger) error {
	g, err := graphio.ReadFile(input)
	if err != nil {
		return err
	}

	rep := analysis.Analyze(g)
	log.Info().
		Int("vertices", rep.Vertices).
		Int("edges", rep.Edges).
		Int("loops", rep.SelfLoops).
		Int("parallel", rep.ParallelEdges).
		Int("components", len(rep.Components)).
		Int("odd", len(rep.OddVertices)).
		Msg("graph loaded")

	s, err := g.Store()
	if err != nil {
		return err
	}
	res, err := euler.Circuit(s, euler.WithStart(cfg.Start()), euler.WithLogger(log))
	if err != nil {
		return err
	}

	if res.HasCircuit() {
		if cfg.Verify() {
			if err := euler.Verify(s, res.Tour); err != nil {
				return fmt.Errorf("tour rejected: %w", err)
			}
		}
		log.Info().Int("length", len(res.Tour)).Int("cycles", res.Cycles).Msg("eulerian circuit found")
	} else {
		ev := log.Info().Stringer("status", res.Status)
		switch res.Status {
		case euler.StatusOddDegree:
			ev = ev.Ints("odd", res.OddVertices)
		case euler.StatusDisconnected:
			ev = ev.Int("components", len(rep.Components))
		}
		ev.Msg("no eulerian circuit")
		if rep.EulerianFrom(cfg.Start()) {
			return errors.New("analysis reports a circuit the search did not find")
		}
	}

	return graphio.WriteTourFile(cfg.OutputFile(), res.Tour)
}
