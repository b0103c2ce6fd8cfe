package agent

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"leapfrog/searcher/mcts"
)

type mctsAgent struct {
	mcts *mcts.MCTS
}

// NewMCTSAgent returns an agent that plays the most visited root move of a
// fresh search tree each turn.
func NewMCTSAgent(m *mcts.MCTS) Agent {
	return mctsAgent{mcts: m}
}

func (a mctsAgent) FindMove(board game.Board, side game.Side) (game.Board, metrics.SearchMetric, error) {
	move, metric := a.mcts.Simulate(board, side)
	if move == board {
		return board, metric, ErrNoMove
	}
	return move, metric, nil
}
