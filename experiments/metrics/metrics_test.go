package metrics

import (
	"encoding/csv"
	"leapfrog/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(4, 6, true)
	c.AddLeaves(10)
	c.AddLeaves(5)
	c.AddRootMove()
	c.AddRootMove()

	metric := c.Complete()
	require.Equal(t, 15, metric.Leaves)
	require.Equal(t, 2, metric.RootMoves)
	require.Equal(t, 4, metric.Goroutines)
	require.Equal(t, 6, metric.Depth)
	require.True(t, metric.Pruning)

	c.Start(1, 2, false)
	require.Zero(t, c.Complete().Leaves, "Start should reset the counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Depth: 4, Pruning: true, Goroutines: 2, Evaluator: "advancement"},
		{ID: 2, Random: true},
		{ID: 3, Depth: 20, Goroutines: 1, Episodes: 300},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 4)
	require.Equal(t, []string{"1", "false", "4", "true", "2", "advancement", "0"}, rows[1])
	require.Equal(t, []string{"3", "false", "20", "false", "1", "", "300"}, rows[3])

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, White: 1, Black: 2,
		GameMetric: GameMetric{StartingSide: game.White, Winner: "white", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 9},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Equal(t, []string{"1", "1", "2", "white", "white", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "9"}, rows[1])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Side: game.Black, Board: "1178", SearchMetric: SearchMetric{Depth: 2, Leaves: 4, RootMoves: 2, Score: -1}},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "black", "1178", "-1", "2", "false", "4", "2", "0s"}, rows[1])
}
