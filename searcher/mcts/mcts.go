package mcts

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxCutoff bounds a rollout in plies when no cutoff is set
const MaxCutoff = 200

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	rules      game.Rules
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithCutoff ends rollouts after depth plies; the evaluator then decides
// which side is credited.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(m *MCTS) {
		m.rules = rules
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed seeds rollouts. Worker i uses seed+i.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		rules:      game.NewStandardRules(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	if err := m.rules.Validate(); err != nil {
		panic(err)
	}
	if m.evaluate == nil {
		m.evaluate = m.rules.Advancement()
	}
	return m
}

// Simulate grows a fresh tree from board with side to move and returns the
// most visited successor. The board itself is returned when side has no move.
// Leaves in the metric count rollouts; depth is the rollout cutoff.
func (m *MCTS) Simulate(board game.Board, side game.Side) (game.Board, metrics.SearchMetric) {
	root := newNode(nil, m.rules, board, side)

	m.metrics.Start(m.goroutines, m.cutoff, false)
	if m.episodes > 0 {
		m.iterate(root)
	} else {
		m.countdown(root)
	}
	metric := m.metrics.Complete()
	metric.RootMoves = len(root.moves)

	move, _ := root.bestMove()
	log.Debug().Msgf("mcts picked %s from %s after %d rollouts", move, board, metric.Leaves)
	return move, metric
}

func (m *MCTS) iterate(root *node) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, rng)
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *node) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, rng)
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *node, rng *rand.Rand) {
	leaf := selectThenExpand(root, m.rules)
	reward := m.rollout(leaf.board, leaf.side, rng)
	backup(leaf, reward)
	m.metrics.AddLeaves(1)
}

func selectThenExpand(root *node, rules game.Rules) *node {
	parent := root
	child, expanded := parent.selectOrExpand(rules)
	for !expanded && child != parent {
		parent = child
		child, expanded = parent.selectOrExpand(rules)
	}
	return child
}

// rollout plays random moves from board and returns the outcome from White's
// perspective: Win, Loss, or 0 for a blocked side. At the cutoff the side the
// evaluator favours is credited with the win.
func (m *MCTS) rollout(board game.Board, side game.Side, rng *rand.Rand) float64 {
	for depth := 0; ; depth++ {
		if winner, over := m.rules.Winner(board); over {
			return reward(winner)
		}
		if depth >= m.cutoff {
			break
		}
		moves := m.rules.Successors(board, side)
		if len(moves) == 0 {
			return 0
		}
		board = moves[rng.Intn(len(moves))] // Random rollout policy
		side = side.Opponent()
	}

	switch score := m.evaluate(board); {
	case score > 0:
		return Win
	case score < 0:
		return Loss
	}
	return 0
}

func reward(winner game.Side) float64 {
	if winner == game.White {
		return Win
	}
	return Loss
}

func backup(leaf *node, reward float64) {
	for n := leaf; n != nil; {
		n = n.backup(reward)
	}
}
