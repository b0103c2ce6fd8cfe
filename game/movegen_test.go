package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardStrings(boards []Board) []string {
	s := make([]string, len(boards))
	for i, b := range boards {
		s[i] = b.String()
	}
	return s
}

func TestGenerateMoves(t *testing.T) {
	cases := []struct {
		name  string
		board string
		side  Side
		want  []string
	}{
		{"white steps from the start", "1188", White, []string{"2188", "1288"}},
		{"black steps from the start", "1188", Black, []string{"1178", "1187"}},
		{"exit is always available from the last square", "8245", White, []string{"9245", "8345"}},
		{"black exits from square one", "5612", Black, []string{"5602", "5610"}},
		{"hop over black displaces it home", "3146", White, []string{"5186", "3246"}},
		{"displacement cascades past an occupied refuge", "3148", White, []string{"5178", "3248"}},
		{"displaced token may stay on its own square", "5168", White, []string{"7168", "5268"}},
		{"blocked two-square hop falls through to longer hop", "6178", White, []string{"9178", "6278"}},
		{"hop over own token does not displace", "2356", White, []string{"4356", "2456"}},
		{"ladder reaches a four-square hop", "1234", White, []string{"5234", "1534"}},
		{"hop over white displaces it home", "5364", Black, []string{"5324", "5162"}},
		{"black falls through to longer hops", "2354", Black, []string{"2314", "2351"}},
		{"black bumps prefer square one", "7458", Black, []string{"7138", "1456"}},
		{"exited tokens do not move", "9188", White, []string{"9288"}},
		{"no moves once both tokens exited", "9988", White, []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := GenerateMoves(MustParseBoard(c.board), c.side)
			require.Equal(t, c.want, boardStrings(got))
		})
	}
}

func TestMovesDescribeTheRuleApplied(t *testing.T) {
	rules := NewStandardRules()

	t.Run("bump records the displaced token", func(t *testing.T) {
		moves := rules.Moves(MustParseBoard("3146"), White)
		require.Len(t, moves, 2)

		bump := moves[0]
		require.Equal(t, BumpMove, bump.Kind)
		require.Equal(t, 0, bump.Token)
		require.Equal(t, 3, bump.From)
		require.Equal(t, 5, bump.To)
		require.Equal(t, 2, bump.Bumped)
		require.Equal(t, 4, bump.BumpedFrom)
		require.Equal(t, 8, bump.BumpedTo)
		require.Equal(t, "white bump 3->5 bumps 4->8", bump.String())

		step := moves[1]
		require.Equal(t, StepMove, step.Kind)
		require.Equal(t, -1, step.Bumped)
	})

	t.Run("exit and hop kinds", func(t *testing.T) {
		moves := rules.Moves(MustParseBoard("8234"), White)
		require.Equal(t, ExitMove, moves[0].Kind)
		require.Equal(t, HopMove, moves[1].Kind)
		require.Equal(t, "8534", moves[1].Board.String())
	})
}

func TestRuleVariants(t *testing.T) {
	t.Run("two-square hop limit drops longer hops", func(t *testing.T) {
		rules := NewStandardRules()
		rules.MaxHop = 2

		require.Empty(t, rules.Successors(MustParseBoard("1234"), White))
		require.Equal(t, []string{"6278"}, boardStrings(rules.Successors(MustParseBoard("6178"), White)))
	})

	t.Run("scan displacement walks back from the hopped square", func(t *testing.T) {
		rules := NewStandardRules()
		rules.Displacement = DisplaceScan

		require.Equal(t, []string{"5176", "3246"}, boardStrings(rules.Successors(MustParseBoard("3146"), White)))
		require.Equal(t, []string{"7238", "3456"}, boardStrings(rules.Successors(MustParseBoard("7458"), Black)))
	})

	t.Run("scan displacement stays put without a free square", func(t *testing.T) {
		rules := NewStandardRules()
		rules.Displacement = DisplaceScan

		moves := rules.Moves(MustParseBoard("6173"), White)
		require.Equal(t, BumpMove, moves[0].Kind)
		require.Equal(t, 7, moves[0].BumpedTo)
		require.Equal(t, "8173", moves[0].Board.String())
	})
}

func TestMovesPreserveInvariant(t *testing.T) {
	variants := []Rules{
		NewStandardRules(),
		{MaxHop: 2, Displacement: DisplaceHome, Terminal: AnyTokenExits},
		{MaxHop: 5, Displacement: DisplaceScan, Terminal: BothTokensExit},
	}
	for _, rules := range variants {
		for _, b := range validBoards() {
			for _, side := range []Side{White, Black} {
				moves := rules.Moves(b, side)
				require.LessOrEqual(t, len(moves), 2, "each token makes at most one move")
				if len(moves) == 2 {
					require.Less(t, moves[0].Token, moves[1].Token, "first token moves first")
				}
				for _, m := range moves {
					require.NoError(t, m.Board.CheckInvariant(), "%s %s on %s", rules, m, b)
					require.NotEqual(t, b, m.Board, "a move always changes the board")
					require.Equal(t, side, m.Side)
				}
			}
		}
	}
}
