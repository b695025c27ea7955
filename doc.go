// Package eulertour finds Eulerian circuits in undirected multigraphs:
// closed walks that use every edge exactly once, self-loops and parallel
// edges included.
//
// What is inside?
//
//	multigraph/  edge-consuming adjacency store with multiplicities and degrees
//	euler/       iterative Hierholzer: loop peel, parallel peel, DFS cycles, tour assembly
//	graphio/     plain-text graph and tour formats
//	generator/   random even-degree multigraphs for tests and benchmarks
//	analysis/    parity and connectivity report (gonum) used as an oracle
//	config/      viper configuration and the zerolog console logger
//	cmd/         eulergen (write graph.txt) and eulertour (solve a graph file)
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// yields the circuit 0 1 2 3 0. Odd degrees and edges unreachable from the
// start vertex are reported as a status, never as an error.
//
// Every search is iterative, so depth is bounded by memory, not by the
// goroutine stack.
//
//	go get github.com/katalvlaran/eulertour
package eulertour
