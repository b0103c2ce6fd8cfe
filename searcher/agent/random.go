package agent

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents built with the same seed play the same moves.
func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	return &randomAgent{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(board game.Board, side game.Side) (game.Board, metrics.SearchMetric, error) {
	moves := a.rules.Successors(board, side)
	if len(moves) == 0 {
		return board, metrics.SearchMetric{}, ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{RootMoves: len(moves)}, nil
}
