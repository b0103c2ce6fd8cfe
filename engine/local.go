package engine

import (
	"errors"
	"fmt"
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"leapfrog/meta"
	"leapfrog/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrIllegalMove = errors.New("illegal move")

type Local struct {
	Board    game.Board
	Rules    game.Rules
	Agents   [2]agent.Agent // indexed by game.Side
	Side     game.Side      // side to move
	MaxTurns int
}

// LocalEngine sets up a game between a White agent and a Black agent.
// White moves first.
func LocalEngine(agents []agent.Agent, rules game.Rules, start game.Board) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Local{
		Board:    start,
		Rules:    rules,
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		Side:     game.White,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop. A side without a legal move ends the game
// without a winner.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingSide: e.Side,
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting from %s", e.Side, e.Board)

	turnCount := 1
	for !e.Rules.IsTerminal(e.Board) && turnCount <= e.MaxTurns {
		legal := e.Rules.Successors(e.Board, e.Side)
		if len(legal) == 0 {
			log.Info().Msgf("%s has no legal move on %s", e.Side, e.Board)
			break
		}

		move, searchMetric, err := e.Agents[e.Side].FindMove(e.Board, e.Side)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s agent failed on %s: %w", e.Side, e.Board, err)
		}
		if slices.Index(legal, move) < 0 {
			return "", gameMetric, moveMetrics, fmt.Errorf("%w: %s played %s on %s", ErrIllegalMove, e.Side, move, e.Board)
		}

		log.Debug().Msgf("turn %d: %s plays %s -> %s", turnCount, e.Side, e.Board, move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Side:         e.Side,
			Board:        move.String(),
			SearchMetric: searchMetric,
		})

		e.Board = move
		e.Side = e.Side.Opponent()
		turnCount++
	}

	winner := ""
	if side, over := e.Rules.Winner(e.Board); over {
		winner = side.String()
		log.Info().Msgf("game over on %s, winner: %s", e.Board, winner)
	} else {
		log.Info().Msgf("stopped on %s after %d plies without a winner", e.Board, turnCount-1)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics, nil
}
