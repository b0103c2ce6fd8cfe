package searcher

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
)

type Option func(m *Minimax)

func WithRules(rules game.Rules) Option {
	return func(m *Minimax) {
		m.rules = rules
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithPruning(pruning bool) Option {
	return func(m *Minimax) {
		m.pruning = pruning
	}
}

// WithGoroutines searches root moves in parallel. Every root move is searched
// with a full window, so the result does not depend on the worker count.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithTerminalCutoff stops the search on boards the rules consider won
func WithTerminalCutoff() Option {
	return func(m *Minimax) {
		m.terminalCutoff = true
	}
}

// WithSide sets the side that picks the root move. Black picks the lowest score.
func WithSide(side game.Side) Option {
	return func(m *Minimax) {
		m.side = side
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}
