package engine

import "leapfrog/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner, a side cannot move or a max number of plies is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
