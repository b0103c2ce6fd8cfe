package experiments

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"leapfrog/meta"
)

// RunPruningExperiment pits pruned and unpruned search of equal depth against
// each other. Both pick the same moves, so the move records compare leaves
// evaluated per move.
func RunPruningExperiment(root string, rules game.Rules, games int) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 4, Pruning: true, Goroutines: meta.GO_ROUTINES},
		{ID: 2, Depth: 4, Pruning: false, Goroutines: meta.GO_ROUTINES},
		{ID: 3, Depth: 8, Pruning: true, Goroutines: meta.GO_ROUTINES},
		{ID: 4, Depth: 8, Pruning: false, Goroutines: meta.GO_ROUTINES},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
		{configs[2], configs[3]},
		{configs[3], configs[2]},
	}

	return Run(root, "pruning", rules, configs, matchUps, games)
}
