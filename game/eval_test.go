package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateAdvancement(t *testing.T) {
	cases := []struct {
		board string
		want  int
	}{
		{"1188", 0},
		{"2178", 0},
		{"5186", 2},
		{"8811", 0},
		{"7623", 0},
		{"9188", WinScore},
		{"9180", WinScore}, // both sides exited: White is checked first
		{"1180", -WinScore},
		{"1108", -WinScore},
	}
	for _, c := range cases {
		require.Equal(t, c.want, EvaluateAdvancement(MustParseBoard(c.board)), c.board)
	}
}

func TestEvaluateMagnitude(t *testing.T) {
	variants := []Rules{
		NewStandardRules(),
		{MaxHop: 5, Displacement: DisplaceHome, Terminal: BothTokensExit},
	}
	for _, rules := range variants {
		evaluate := rules.Advancement()
		for _, b := range validBoards() {
			score := evaluate(b)
			if rules.IsTerminal(b) {
				require.Equal(t, WinScore, abs(score), "%s under %s", b, rules)
			} else {
				require.Less(t, abs(score), WinScore, "%s under %s", b, rules)
			}
		}
	}
}

func TestBothTokensExitEvaluation(t *testing.T) {
	evaluate := Rules{MaxHop: 5, Terminal: BothTokensExit}.Advancement()

	require.Equal(t, 8, evaluate(MustParseBoard("9188")), "one exited token is not yet a win")
	require.Equal(t, WinScore, evaluate(MustParseBoard("9988")))
	require.Equal(t, -WinScore, evaluate(MustParseBoard("1200")))
}

func TestEvaluateQuadratic(t *testing.T) {
	evaluate := NewStandardRules().Quadratic()

	require.Equal(t, 2, evaluate(MustParseBoard("1188")))
	require.Equal(t, 4+1-1, evaluate(MustParseBoard("2178")))
	require.Equal(t, QuadraticWinScore, evaluate(MustParseBoard("9188")))
	require.Equal(t, -QuadraticWinScore, evaluate(MustParseBoard("1180")))

	for _, b := range validBoards() {
		if !b.IsTerminal() {
			require.Less(t, abs(evaluate(b)), QuadraticWinScore, b.String())
		}
	}
}

func TestEvaluatorByName(t *testing.T) {
	rules := NewStandardRules()

	evaluate, err := rules.Evaluator("quadratic")
	require.NoError(t, err)
	require.Equal(t, 2, evaluate(MustParseBoard("1188")))

	evaluate, err = rules.Evaluator("")
	require.NoError(t, err)
	require.Equal(t, 0, evaluate(MustParseBoard("1188")))

	_, err = rules.Evaluator("material")
	require.Error(t, err)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
