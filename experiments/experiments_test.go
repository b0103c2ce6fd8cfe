package experiments

import (
	"encoding/csv"
	"leapfrog/experiments/metrics"
	"leapfrog/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func countRows(t *testing.T, path string) int {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1 // header
}

func TestRun(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Pruning: true},
		{ID: 2, Random: true},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}

	dir, err := Run(t.TempDir(), "smoke", game.NewStandardRules(), configs, matchUps, 2)
	require.NoError(t, err)

	require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")))
	require.Positive(t, countRows(t, filepath.Join(dir, "move_records.csv")))
}

func TestRunRejectsUnknownEvaluator(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1, Depth: 1, Evaluator: "material"}, {ID: 2, Random: true}}
	_, err := Run(t.TempDir(), "bad", game.NewStandardRules(), configs, [][]metrics.AgentConfig{configs}, 1)
	require.Error(t, err)
}

func TestRunPruningExperiment(t *testing.T) {
	dir, err := RunPruningExperiment(t.TempDir(), game.NewStandardRules(), 1)
	require.NoError(t, err)
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")))
}

func TestRunWithMCTS(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 30, Goroutines: 2, Episodes: 50},
		{ID: 2, Random: true},
	}
	dir, err := Run(t.TempDir(), "mcts", game.NewStandardRules(), configs, [][]metrics.AgentConfig{configs}, 1)
	require.NoError(t, err)

	require.Equal(t, 1, countRows(t, filepath.Join(dir, "game_records.csv")))
	require.Positive(t, countRows(t, filepath.Join(dir, "move_records.csv")))
}
