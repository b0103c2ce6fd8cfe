package searcher

import (
	"fmt"
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"sync"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-bounded minimax search, with alpha-beta pruning unless
// disabled. A Minimax holds no state between searches apart from its metrics
// collector, so FindBestMove must not be called concurrently when metrics
// are enabled.
type Minimax struct {
	rules          game.Rules
	evaluate       game.Evaluate
	pruning        bool
	goroutines     int
	terminalCutoff bool
	side           game.Side
	metrics        metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		rules:      game.NewStandardRules(),
		pruning:    true,
		goroutines: 1,
		side:       game.White,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if err := m.rules.Validate(); err != nil {
		panic(fmt.Sprintf("invalid search rules: %v", err))
	}
	if m.evaluate == nil {
		m.evaluate = m.rules.Advancement()
	}
	return m
}

func (m *Minimax) Rules() game.Rules {
	return m.rules
}

func (m *Minimax) Side() game.Side {
	return m.side
}

// FindBestMove picks the root side's best successor of board. Each successor
// is searched to depth-1 with a full window; ties keep the first successor in
// generation order. With depth 0, or no legal move, the root board itself is
// evaluated and returned.
func (m *Minimax) FindBestMove(board game.Board, depth int) Result {
	m.metrics.Start(m.goroutines, depth, m.pruning)

	result := m.root(board, depth)
	result.Metric = m.metrics.Complete()
	result.Metric.Score = result.Score

	log.Info().
		Str("root", board.String()).
		Str("board", result.Board.String()).
		Int("score", result.Score).
		Int("leaves", result.Leaves).
		Dur("duration", result.Metric.Duration).
		Msg("search complete")
	return result
}

// Search returns the minimax value of board with side to move and the
// number of leaves evaluated below it.
func (m *Minimax) Search(board game.Board, depth, alpha, beta int, side game.Side) (score, leaves int) {
	if m.pruning {
		score = m.alphaBeta(board, depth, alpha, beta, side, &leaves)
	} else {
		score = m.minimax(board, depth, side, &leaves)
	}
	return score, leaves
}

func (m *Minimax) root(board game.Board, depth int) Result {
	children := m.children(board, depth, m.side)
	if len(children) == 0 {
		m.metrics.AddLeaves(1)
		return Result{Board: board, Score: m.evaluate(board), Leaves: 1}
	}

	scores := make([]int, len(children))
	leaves := make([]int, len(children))
	m.searchChildren(children, depth-1, scores, leaves)

	result := Result{Board: children[0], Score: scores[0]}
	for i, child := range children {
		log.Debug().
			Str("move", child.String()).
			Int("score", scores[i]).
			Int("leaves", leaves[i]).
			Msg("root move searched")

		result.Leaves += leaves[i]
		if m.improves(scores[i], result.Score) {
			result.Board = child
			result.Score = scores[i]
		}
	}
	return result
}

func (m *Minimax) searchChildren(children []game.Board, depth int, scores, leaves []int) {
	opponent := m.side.Opponent()
	search := func(i int) {
		scores[i], leaves[i] = m.Search(children[i], depth, NegInf, Inf, opponent)
		m.metrics.AddLeaves(leaves[i])
		m.metrics.AddRootMove()
	}

	if m.goroutines <= 1 {
		for i := range children {
			search(i)
		}
		return
	}

	task := make(chan int, len(children))
	for i := range children {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(m.goroutines, len(children)); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				search(i)
			}
		}()
	}

	wg.Wait()
}

// children returns nil when board is a leaf: depth exhausted, a won board
// under terminal cutoff, or no legal move for side.
func (m *Minimax) children(board game.Board, depth int, side game.Side) []game.Board {
	if depth <= 0 {
		return nil
	}
	if m.terminalCutoff && m.rules.IsTerminal(board) {
		return nil
	}
	return m.rules.Successors(board, side)
}

// improves reports whether score is strictly better than best for the root side
func (m *Minimax) improves(score, best int) bool {
	if m.side == game.White {
		return score > best
	}
	return score < best
}
