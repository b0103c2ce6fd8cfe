package metrics

import (
	"leapfrog/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Pruning    bool
	Duration   time.Duration
	Leaves     int
	RootMoves  int
	Score      int
}

type MoveMetric struct {
	Step  int
	Side  game.Side
	Board string // board after the move
	SearchMetric
}

type GameMetric struct {
	StartingSide game.Side
	Winner       string // "white", "black" or empty for an unfinished game
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start(goroutines, depth int, pruning bool)
	AddLeaves(n int)
	AddRootMove()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	pruning    bool
	startTime  time.Time
	leaves     atomic.Int64
	rootMoves  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.pruning = pruning
	m.leaves.Store(0)
	m.rootMoves.Store(0)
}

func (m *collector) AddLeaves(n int) {
	m.leaves.Add(int64(n))
}

func (m *collector) AddRootMove() {
	m.rootMoves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Leaves:     int(m.leaves.Load()),
		RootMoves:  int(m.rootMoves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, pruning bool) {}
func (m *dummyCollector) AddLeaves(n int)                            {}
func (m *dummyCollector) AddRootMove()                               {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
