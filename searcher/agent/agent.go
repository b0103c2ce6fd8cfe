package agent

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
)

type Agent interface {
	// FindMove returns the chosen successor of board for side and search metrics (if collected)
	FindMove(board game.Board, side game.Side) (game.Board, metrics.SearchMetric, error)
}
