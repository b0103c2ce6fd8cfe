package agent

import (
	"errors"
	"fmt"
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"leapfrog/searcher"
)

var ErrNoMove = errors.New("no legal move")

type searchAgent struct {
	minimax *searcher.Minimax
	depth   int
}

// NewSearchAgent returns an agent that plays the minimax choice at a fixed depth.
// Depth below one would return the unchanged board, so it is raised to one.
func NewSearchAgent(minimax *searcher.Minimax, depth int) Agent {
	return searchAgent{minimax: minimax, depth: max(depth, 1)}
}

func (a searchAgent) FindMove(board game.Board, side game.Side) (game.Board, metrics.SearchMetric, error) {
	if side != a.minimax.Side() {
		return board, metrics.SearchMetric{}, fmt.Errorf("agent searches for %s, asked to move %s", a.minimax.Side(), side)
	}
	result := a.minimax.FindBestMove(board, a.depth)
	if result.Board == board {
		return board, result.Metric, ErrNoMove
	}
	return result.Board, result.Metric, nil
}
