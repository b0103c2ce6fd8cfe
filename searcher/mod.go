package searcher

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"math"
)

// Window bounds; any evaluator score lies strictly inside them
const (
	Inf    = math.MaxInt32
	NegInf = -Inf
)

type Result struct {
	Board  game.Board // best successor, or the root itself when nothing was searched
	Score  int
	Leaves int
	Metric metrics.SearchMetric
}

type Searcher interface {
	FindBestMove(board game.Board, depth int) Result
}
