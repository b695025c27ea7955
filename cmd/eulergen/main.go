// eulergen writes a random even-degree multigraph in the exchange format, to
// graph.txt in the working directory.
//
// Usage:
//
//	eulergen
//
// The generator runs with its default knobs and a time-based seed.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/eulertour/config"
	"github.com/katalvlaran/eulertour/generator"
	"github.com/katalvlaran/eulertour/graphio"
)

func main() {
	os.Exit(run(os.Args[1:], config.New(), time.Now().UnixNano(), os.Stderr))
}

// run returns the process exit code; seed is used when generator.seed is 0.
func run(args []string, cfg *config.Config, seed int64, stderr io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(stderr, "usage: eulergen")
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := cfg.NewLogger(stderr, "eulergen")

	g, err := generator.Generate(cfg.GeneratorOptions(seed)...)
	if err != nil {
		log.Error().Err(err).Msg("generate")
		return 1
	}
	if err := graphio.WriteFile(cfg.GraphFile(), g); err != nil {
		log.Error().Err(err).Msg("write")
		return 1
	}
	log.Info().
		Str("file", cfg.GraphFile()).
		Int("vertices", g.V).
		Int("edges", len(g.Edges)).
		Msg("graph written")

	return 0
}
