package experiments

import (
	"fmt"
	"leapfrog/engine"
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"leapfrog/meta"
	"leapfrog/searcher"
	"leapfrog/searcher/agent"
	"leapfrog/searcher/mcts"

	"github.com/rs/zerolog/log"
)

var baseline = metrics.AgentConfig{ID: 0, Random: true}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1, Pruning: true, Goroutines: meta.GO_ROUTINES},
	{ID: 2, Depth: 2, Pruning: true, Goroutines: meta.GO_ROUTINES},
	{ID: 3, Depth: 4, Pruning: true, Goroutines: meta.GO_ROUTINES},
	{ID: 4, Depth: 6, Pruning: true, Goroutines: meta.GO_ROUTINES},
	{ID: 5, Depth: 4, Pruning: true, Goroutines: meta.GO_ROUTINES, Evaluator: "quadratic"},
	{ID: 6, Depth: 40, Goroutines: meta.GO_ROUTINES, Episodes: 500},
}

// RunDepthExperiment pairs every search depth against the random baseline,
// alternating which agent plays White.
func RunDepthExperiment(root string, rules game.Rules, games int) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return Run(root, "depth", rules, append(depthConfigs, baseline), matchUps, games)
}

// Run plays games for each match-up (White config first) from the standard
// start position and writes the records under root/name.
func Run(root, name string, rules game.Rules, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	start := game.MustParseBoard("1188")
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		white := matchUp[0]
		black := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(matchUps), white, black)

		for i := 0; i < games; i++ {
			count++
			agents, err := createAgents(white, black, rules, uint64(meta.SEED+count))
			if err != nil {
				return "", err
			}

			winner, gameMetric, moveMetrics, err := engine.LocalEngine(agents, rules, start).Run()
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

func createAgents(white, black metrics.AgentConfig, rules game.Rules, seed uint64) ([]agent.Agent, error) {
	whiteAgent, err := createAgent(white, game.White, rules, seed)
	if err != nil {
		return nil, err
	}
	blackAgent, err := createAgent(black, game.Black, rules, seed+1)
	if err != nil {
		return nil, err
	}
	return []agent.Agent{whiteAgent, blackAgent}, nil
}

func createAgent(config metrics.AgentConfig, side game.Side, rules game.Rules, seed uint64) (agent.Agent, error) {
	if config.Random {
		return agent.NewRandomAgent(rules, seed), nil
	}

	evaluate, err := rules.Evaluator(config.Evaluator)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	if config.Episodes > 0 {
		return agent.NewMCTSAgent(mcts.NewMCTS(config.Goroutines,
			mcts.WithRules(rules),
			mcts.WithEvaluationFn(evaluate),
			mcts.WithEpisodes(config.Episodes),
			mcts.WithCutoff(config.Depth),
			mcts.WithSeed(seed),
			mcts.WithMetrics(),
		)), nil
	}

	options := []searcher.Option{
		searcher.WithRules(rules),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithPruning(config.Pruning),
		searcher.WithSide(side),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return agent.NewSearchAgent(searcher.NewMinimax(options...), config.Depth), nil
}
