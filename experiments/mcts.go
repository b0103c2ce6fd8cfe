package experiments

import (
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"leapfrog/meta"
)

// RunMCTSExperiment plays rollout search with growing budgets against
// fixed-depth alpha-beta.
func RunMCTSExperiment(root string, rules game.Rules, games int) (string, error) {
	minimax := metrics.AgentConfig{ID: 1, Depth: 4, Pruning: true, Goroutines: meta.GO_ROUTINES}
	configs := []metrics.AgentConfig{
		minimax,
		{ID: 2, Depth: 40, Goroutines: meta.GO_ROUTINES, Episodes: 100},
		{ID: 3, Depth: 40, Goroutines: meta.GO_ROUTINES, Episodes: 1000},
		{ID: 4, Depth: 40, Goroutines: meta.GO_ROUTINES, Episodes: 5000},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{config, minimax})
		matchUps = append(matchUps, []metrics.AgentConfig{minimax, config})
	}

	return Run(root, "mcts", rules, configs, matchUps, games)
}
